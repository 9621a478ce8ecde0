package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что AddressRepository удовлетворяет интерфейсу AddressRepository.
var _ ports.AddressRepository = (*AddressRepository)(nil)

// AddressRepository — постоянный геокэш на Postgres (pgxpool).
// Одна строка на точную строку адреса; координаты NULL, пока адрес не разрешён.
type AddressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository - конструктор AddressRepository.
func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

// GetByRaw — запись по точному совпадению строки адреса. Если не нашли, возвращает (nil, nil).
func (r *AddressRepository) GetByRaw(ctx context.Context, rawAddress string) (*domain.Address, error) {
	var addr domain.Address
	err := r.pool.QueryRow(ctx, `
		SELECT raw_address, latitude, longitude, last_updated
		FROM addresses WHERE raw_address = $1
	`, rawAddress).Scan(&addr.RawAddress, &addr.Latitude, &addr.Longitude, &addr.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select address: %w", err)
	}
	return &addr, nil
}

// Upsert — создать или обновить запись целиком (последняя запись побеждает).
func (r *AddressRepository) Upsert(ctx context.Context, addr *domain.Address) error {
	if addr == nil || addr.RawAddress == "" {
		return errors.New("address is empty or raw_address is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO addresses (raw_address, latitude, longitude, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (raw_address) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			last_updated = EXCLUDED.last_updated
	`, addr.RawAddress, addr.Latitude, addr.Longitude, addr.LastUpdated); err != nil {
		return fmt.Errorf("upsert address: %w", err)
	}
	return nil
}
