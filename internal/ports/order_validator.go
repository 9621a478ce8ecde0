package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
