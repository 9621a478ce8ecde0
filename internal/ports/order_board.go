package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// OrderBoardService — сервис менеджерской панели заказов.
type OrderBoardService interface {
	// OrderBoard — очередь заказов для оператора: без выполненных,
	// отсортированная по срочности статуса, с информацией о ресторанах.
	OrderBoard(ctx context.Context) ([]domain.OrderSummary, error)
}
