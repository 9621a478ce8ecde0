package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// RestaurantRepository — справочник ресторанов и их меню.
type RestaurantRepository interface {
	// List — все рестораны, отсортированные по имени.
	List(ctx context.Context) ([]domain.Restaurant, error)

	// ListMenuItems — пункты меню всех ресторанов (включая недоступные —
	// фильтрация по availability происходит при построении индекса).
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
}
