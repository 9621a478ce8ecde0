package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что RestaurantRepository удовлетворяет интерфейсу RestaurantRepository.
var _ ports.RestaurantRepository = (*RestaurantRepository)(nil)

// RestaurantRepository — справочник ресторанов и меню на Postgres (pgxpool).
type RestaurantRepository struct {
	pool *pgxpool.Pool
}

// NewRestaurantRepository - конструктор RestaurantRepository.
func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

// List — все рестораны по имени (порядок важен: имя — разрешение ничьих при ранжировании).
func (r *RestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, address, COALESCE(contact_phone, '')
		FROM restaurants
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("select restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restaurants rows: %w", err)
	}
	return restaurants, nil
}

// ListMenuItems — пункты меню всех ресторанов, включая недоступные.
// Имя продукта подтягивается из справочника products.
func (r *RestaurantRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT mi.restaurant_id, mi.product_id, p.name, mi.availability, mi.price
		FROM menu_items mi
		JOIN products p ON p.id = mi.product_id
	`)
	if err != nil {
		return nil, fmt.Errorf("select menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.RestaurantID, &item.ProductID, &item.ProductName, &item.Availability, &item.Price); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("menu rows: %w", err)
	}
	return items, nil
}
