package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/Gunvolt24/foodcart/pkg/metrics"
)

// Проверка, что OrderBoardService удовлетворяет интерфейсу.
var _ ports.OrderBoardService = (*OrderBoardService)(nil)

// OrderBoardService — менеджерская панель: очередь заказов с информацией о
// ресторанах. Единственная блокирующая операция внутри прохода — внешний
// геокодер (через resolver); всё остальное — в памяти.
type OrderBoardService struct {
	orders      ports.OrderRepository
	restaurants ports.RestaurantRepository
	matcher     *RestaurantMatcher
	log         ports.Logger
}

// NewOrderBoardService — DI-конструктор.
func NewOrderBoardService(
	orders ports.OrderRepository,
	restaurants ports.RestaurantRepository,
	matcher *RestaurantMatcher,
	log ports.Logger,
) *OrderBoardService {
	return &OrderBoardService{
		orders:      orders,
		restaurants: restaurants,
		matcher:     matcher,
		log:         log,
	}
}

// OrderBoard — один проход подбора по всем заказам.
// Выполненные заказы исключаются; остальные сортируются по срочности статуса
// (стабильно: внутри статуса сохраняется порядок из репозитория).
// Индекс доступности строится один раз на проход.
func (s *OrderBoardService) OrderBoard(ctx context.Context) ([]domain.OrderSummary, error) {
	start := time.Now()

	orders, err := s.orders.ListWithTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	menu, err := s.restaurants.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	index := BuildCapabilityIndex(menu)

	summaries := make([]domain.OrderSummary, 0, len(orders))
	for _, order := range orders {
		if order.Status == domain.StatusFulfilled {
			continue
		}
		if !order.Status.Known() {
			// Нарушение контракта данных: фиксируем инцидент, заказ уходит
			// в конец очереди, остальные результаты не затрагиваются.
			s.log.Errorf(ctx, "order with unknown status order_id=%d status=%q", order.ID, order.Status)
		}

		result := s.matcher.Match(ctx, order, restaurants, index)

		summaries = append(summaries, domain.OrderSummary{
			ID:             order.ID,
			Status:         order.Status.Display(),
			PaymentMethod:  order.PaymentMethod.Display(),
			Client:         order.Client(),
			Phone:          order.Phone,
			Address:        order.Address,
			TotalPrice:     order.TotalPrice,
			Comment:        order.Comment,
			RestaurantInfo: result.Format(),
		})
	}

	// SliceStable: заказы с равным приоритетом остаются в исходном порядке.
	ranks := make(map[int64]int, len(summaries))
	for _, order := range orders {
		ranks[order.ID] = order.Status.QueueRank()
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return ranks[summaries[i].ID] < ranks[summaries[j].ID]
	})

	metrics.OrderBoardPasses.Inc()
	metrics.OrderBoardPassDuration.Observe(time.Since(start).Seconds())
	return summaries, nil
}
