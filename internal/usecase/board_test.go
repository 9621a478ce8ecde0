package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports/mocks"
	"github.com/Gunvolt24/foodcart/internal/usecase"
	"github.com/golang/mock/gomock"
)

func newBoard(t *testing.T) (*usecase.OrderBoardService, *mocks.MockOrderRepository, *mocks.MockRestaurantRepository, *mocks.MockGeocodeResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	restaurants := mocks.NewMockRestaurantRepository(ctrl)
	resolver := mocks.NewMockGeocodeResolver(ctrl)
	matcher := usecase.NewRestaurantMatcher(resolver, noopLogger{})
	svc := usecase.NewOrderBoardService(orders, restaurants, matcher, noopLogger{})
	return svc, orders, restaurants, resolver
}

func assigned(id int64, status domain.OrderStatus, restaurant string) *domain.Order {
	rid := id * 10
	return &domain.Order{
		ID:             id,
		FirstName:      "Иван",
		LastName:       "Петров",
		Phone:          "+79991234567",
		Address:        deliveryAddress,
		Status:         status,
		PaymentMethod:  domain.PaymentCash,
		RestaurantID:   &rid,
		RestaurantName: restaurant,
		TotalPrice:     900,
	}
}

// Выполненные заказы не попадают в панель; остальные — по срочности статуса.
func TestOrderBoard_ExcludesFulfilled_SortsByStatus(t *testing.T) {
	svc, orders, restaurants, resolver := newBoard(t)

	inTransit := assigned(4, domain.StatusInTransit, "Арлекино")
	inTransit.RestaurantID = nil // "в пути" короткий путь срабатывает до проверки назначения

	orders.EXPECT().ListWithTotals(gomock.Any()).Return([]*domain.Order{
		assigned(1, domain.StatusPreparing, "Арлекино"),
		assigned(2, domain.StatusFulfilled, "Арлекино"),
		assigned(3, domain.StatusUnprocessed, "Барракуда"),
		inTransit,
	}, nil)
	restaurants.EXPECT().List(gomock.Any()).Return(nil, nil)
	restaurants.EXPECT().ListMenuItems(gomock.Any()).Return(nil, nil)
	// Назначенные и едущие заказы не требуют геокодирования.
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.OrderBoard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantIDs := []int64{3, 1, 4} // Необработанный < Готовится < В пути
	if len(got) != len(wantIDs) {
		t.Fatalf("want %d summaries, got %d", len(wantIDs), len(got))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("position %d: want order %d, got %d", i, id, got[i].ID)
		}
	}
}

// Заказы с равным статусом сохраняют порядок репозитория (стабильная сортировка).
func TestOrderBoard_StableWithinStatus(t *testing.T) {
	svc, orders, restaurants, resolver := newBoard(t)

	orders.EXPECT().ListWithTotals(gomock.Any()).Return([]*domain.Order{
		assigned(7, domain.StatusPreparing, "Арлекино"),
		assigned(2, domain.StatusPreparing, "Барракуда"),
		assigned(5, domain.StatusPreparing, "Карусель"),
	}, nil)
	restaurants.EXPECT().List(gomock.Any()).Return(nil, nil)
	restaurants.EXPECT().ListMenuItems(gomock.Any()).Return(nil, nil)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.OrderBoard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, id := range []int64{7, 2, 5} {
		if got[i].ID != id {
			t.Fatalf("position %d: want order %d, got %d", i, id, got[i].ID)
		}
	}
}

// Заказ с неизвестным статусом не теряется — уходит в конец очереди.
func TestOrderBoard_UnknownStatusLast(t *testing.T) {
	svc, orders, restaurants, resolver := newBoard(t)

	broken := assigned(9, domain.OrderStatus("X"), "Арлекино")

	orders.EXPECT().ListWithTotals(gomock.Any()).Return([]*domain.Order{
		broken,
		assigned(1, domain.StatusInTransit, ""),
	}, nil)
	restaurants.EXPECT().List(gomock.Any()).Return(nil, nil)
	restaurants.EXPECT().ListMenuItems(gomock.Any()).Return(nil, nil)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.OrderBoard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].ID != 9 {
		t.Fatalf("broken order must be last, got %+v", got)
	}
	// Неизвестный код показывается как есть.
	if got[1].Status != "X" {
		t.Fatalf("want raw status code, got %q", got[1].Status)
	}
}

// Неизвестный статус фиксируется в логе как инцидент (ровно один Errorf за проход).
func TestOrderBoard_UnknownStatusLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	restaurants := mocks.NewMockRestaurantRepository(ctrl)
	resolver := mocks.NewMockGeocodeResolver(ctrl)
	logg := mocks.NewMockLogger(ctrl)

	matcher := usecase.NewRestaurantMatcher(resolver, logg)
	svc := usecase.NewOrderBoardService(orders, restaurants, matcher, logg)

	orders.EXPECT().ListWithTotals(gomock.Any()).Return([]*domain.Order{
		assigned(9, domain.OrderStatus("X"), "Арлекино"),
	}, nil)
	restaurants.EXPECT().List(gomock.Any()).Return(nil, nil)
	restaurants.EXPECT().ListMenuItems(gomock.Any()).Return(nil, nil)
	logg.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	got, err := svc.OrderBoard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 9 {
		t.Fatalf("order must stay on the board, got %+v", got)
	}
}

// Поля строки панели: клиент, статус, оплата, стоимость, инфо о ресторане.
func TestOrderBoard_SummaryFields(t *testing.T) {
	svc, orders, restaurants, resolver := newBoard(t)

	order := &domain.Order{
		ID:            1,
		FirstName:     "Иван",
		LastName:      "Петров",
		Phone:         "+79991234567",
		Address:       deliveryAddress,
		Status:        domain.StatusUnprocessed,
		PaymentMethod: domain.PaymentElectronic,
		Comment:       "без лука",
		TotalPrice:    1200.50,
		Items:         []domain.OrderItem{{ProductID: 1, ProductName: "Пицца", Quantity: 2, Price: 600.25}},
	}

	orders.EXPECT().ListWithTotals(gomock.Any()).Return([]*domain.Order{order}, nil)
	restaurants.EXPECT().List(gomock.Any()).Return([]domain.Restaurant{
		{ID: 1, Name: "Арлекино", Address: "Москва, Арбат 10"},
	}, nil)
	restaurants.EXPECT().ListMenuItems(gomock.Any()).Return([]domain.MenuItem{
		menuItem(1, "Пицца", true),
	}, nil)

	resolver.EXPECT().Resolve(gomock.Any(), deliveryAddress).Return(coords(55.754, 37.621), nil)
	resolver.EXPECT().Resolve(gomock.Any(), "Москва, Арбат 10").Return(coords(55.7747, 37.621), nil)

	got, err := svc.OrderBoard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 summary, got %d", len(got))
	}

	s := got[0]
	if s.Client != "Иван Петров" {
		t.Fatalf("client: got %q", s.Client)
	}
	if s.Status != "Необработанный" {
		t.Fatalf("status: got %q", s.Status)
	}
	if s.PaymentMethod != "Электронный" {
		t.Fatalf("payment: got %q", s.PaymentMethod)
	}
	if s.TotalPrice != 1200.50 {
		t.Fatalf("total: got %v", s.TotalPrice)
	}
	if s.Comment != "без лука" {
		t.Fatalf("comment: got %q", s.Comment)
	}
	want := "Рестораны которые могут приготовить заказ: Арлекино - 2.30 км"
	if s.RestaurantInfo != want {
		t.Fatalf("restaurant info: want %q, got %q", want, s.RestaurantInfo)
	}
}

func TestOrderBoard_RepoError(t *testing.T) {
	svc, orders, _, _ := newBoard(t)

	orders.EXPECT().ListWithTotals(gomock.Any()).Return(nil, errors.New("db down"))

	if _, err := svc.OrderBoard(context.Background()); err == nil {
		t.Fatalf("want error from repository")
	}
}
