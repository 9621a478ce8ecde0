//go:generate mockgen -source=../address_repository.go    -destination=./mock_address_repository.go    -package=mocks
//go:generate mockgen -source=../address_cache.go         -destination=./mock_address_cache.go         -package=mocks
//go:generate mockgen -source=../geocode.go               -destination=./mock_geocode.go               -package=mocks
//go:generate mockgen -source=../order_repository.go      -destination=./mock_order_repository.go      -package=mocks
//go:generate mockgen -source=../restaurant_repository.go -destination=./mock_restaurant_repository.go -package=mocks
//go:generate mockgen -source=../order_validator.go       -destination=./mock_order_validator.go       -package=mocks
//go:generate mockgen -source=../order_board.go           -destination=./mock_order_board.go           -package=mocks
//go:generate mockgen -source=../logger.go                -destination=./mock_logger.go                -package=mocks
//go:generate mockgen -source=../message_consumer.go      -destination=./mock_message_consumer.go      -package=mocks

package mocks
