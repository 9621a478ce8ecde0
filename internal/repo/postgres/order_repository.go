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

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
// Позиции хранятся денормализованно (имя и цена фиксируются в момент заказа),
// поэтому последующие правки справочника продуктов заказ не меняют.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Save — транзакционно сохраняет заказ (идемпотентный upsert всех частей).
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == 0 {
		return errors.New("order is empty or id is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) orders — upsert по id (PRIMARY KEY).
	if _, err = transaction.Exec(ctx, `
		INSERT INTO orders (
			id, firstname, lastname, phonenumber, address, status, payment_method,
			comment, created_at, called_at, delivered_at, restaurant_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			firstname = EXCLUDED.firstname,
			lastname = EXCLUDED.lastname,
			phonenumber = EXCLUDED.phonenumber,
			address = EXCLUDED.address,
			status = EXCLUDED.status,
			payment_method = EXCLUDED.payment_method,
			comment = EXCLUDED.comment,
			created_at = EXCLUDED.created_at,
			called_at = EXCLUDED.called_at,
			delivered_at = EXCLUDED.delivered_at,
			restaurant_id = EXCLUDED.restaurant_id
	`,
		order.ID, order.FirstName, order.LastName, order.Phone, order.Address,
		string(order.Status), string(order.PaymentMethod), order.Comment,
		order.CreatedAt, order.CalledAt, order.DeliveredAt, order.RestaurantID,
	); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}

	// 2) order_items — replace: удаляем и вставляем список заново.
	if _, err = transaction.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if len(order.Items) > 0 {
		if err = copyOrderItems(ctx, transaction, order.ID, order.Items); err != nil {
			return err
		}
	}

	// Завершаем транзакцию
	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID — заказ по id с позициями, стоимостью и именем назначенного ресторана.
// Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	var restaurantName *string

	err := r.pool.QueryRow(ctx, `
		SELECT
			o.id, o.firstname, o.lastname, o.phonenumber, o.address, o.status,
			o.payment_method, o.comment, o.created_at, o.called_at, o.delivered_at,
			o.restaurant_id, r.name,
			COALESCE((SELECT SUM(oi.quantity * oi.price) FROM order_items oi WHERE oi.order_id = o.id), 0)
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1
	`, id).Scan(
		&order.ID, &order.FirstName, &order.LastName, &order.Phone, &order.Address, &order.Status,
		&order.PaymentMethod, &order.Comment, &order.CreatedAt, &order.CalledAt, &order.DeliveredAt,
		&order.RestaurantID, &restaurantName, &order.TotalPrice,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	if restaurantName != nil {
		order.RestaurantName = *restaurantName
	}

	// items (0..N)
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, product_name, quantity, price
		FROM order_items WHERE order_id = $1
		ORDER BY product_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order items rows: %w", err)
	}

	return &order, nil
}

// ListWithTotals — все заказы в стабильном порядке (по дате создания, затем id).
// Два запроса на проход: база со стоимостью (SUM в БД) + все позиции одним
// запросом, склейка в памяти с сохранением порядка.
func (r *OrderRepository) ListWithTotals(ctx context.Context) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			o.id, o.firstname, o.lastname, o.phonenumber, o.address, o.status,
			o.payment_method, o.comment, o.created_at, o.called_at, o.delivered_at,
			o.restaurant_id, r.name,
			COALESCE(SUM(oi.quantity * oi.price), 0)
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		GROUP BY o.id, r.name
		ORDER BY o.created_at, o.id
	`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	byID := make(map[int64]*domain.Order)
	ids := make([]int64, 0)

	for rows.Next() {
		order := &domain.Order{}
		var restaurantName *string
		if err := rows.Scan(
			&order.ID, &order.FirstName, &order.LastName, &order.Phone, &order.Address, &order.Status,
			&order.PaymentMethod, &order.Comment, &order.CreatedAt, &order.CalledAt, &order.DeliveredAt,
			&order.RestaurantID, &restaurantName, &order.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("scan order base: %w", err)
		}
		if restaurantName != nil {
			order.RestaurantName = *restaurantName
		}
		orders = append(orders, order)
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	// Позиции для всех заказов одним запросом.
	iRows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id, product_name, quantity, price
		FROM order_items
		WHERE order_id = ANY($1::bigint[])
		ORDER BY order_id, product_id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer iRows.Close()

	for iRows.Next() {
		var orderID int64
		var item domain.OrderItem
		if err := iRows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if order := byID[orderID]; order != nil {
			order.Items = append(order.Items, item)
		}
	}
	if err := iRows.Err(); err != nil {
		return nil, fmt.Errorf("order items rows: %w", err)
	}

	return orders, nil
}

// copyOrderItems — вставка позиций через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyOrderItems(ctx context.Context, tx pgx.Tx, orderID int64, items []domain.OrderItem) error {
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{orderID, item.ProductID, item.ProductName, item.Quantity, item.Price})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "product_id", "product_name", "quantity", "price"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy order items: %w", err)
	}
	return nil
}
