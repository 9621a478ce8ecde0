//go:generate mockgen -source=../consumer.go -destination=./mock_consumer.go -package=mocks

// Package mocks содержит сгенерированные моки внутренних интерфейсов consumer'а.
package mocks
