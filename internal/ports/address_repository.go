package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// AddressRepository — постоянное хранилище геокэша.
// Ключ — точная строка адреса; записи независимы и идемпотентны,
// поэтому конкурентные Upsert одного ключа безопасны (последняя запись побеждает).
type AddressRepository interface {
	// GetByRaw — запись по точному совпадению строки; (nil, nil), если записи нет.
	GetByRaw(ctx context.Context, rawAddress string) (*domain.Address, error)

	// Upsert — создать или обновить запись целиком.
	Upsert(ctx context.Context, addr *domain.Address) error
}
