package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// OrderRepository — хранилище заказов.
type OrderRepository interface {
	// Save — транзакционно сохраняет заказ из канала приёма (идемпотентный upsert).
	Save(ctx context.Context, order *domain.Order) error

	// GetByID — заказ по id с позициями; (nil, nil), если записи нет.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// ListWithTotals — все заказы с позициями, стоимостью и именем назначенного
	// ресторана, в стабильном порядке (по дате создания).
	ListWithTotals(ctx context.Context) ([]*domain.Order, error)
}
