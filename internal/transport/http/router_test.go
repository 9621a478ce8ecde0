package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports/mocks"
	rest "github.com/Gunvolt24/foodcart/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockOrderBoardService, *mocks.MockOrderRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	board := mocks.NewMockOrderBoardService(ctrl)
	orders := mocks.NewMockOrderRepository(ctrl)
	h := rest.NewHandler(board, orders, noopLogger{}, 0)
	return rest.NewRouter(h, "test"), board, orders
}

func TestManagerOrders_OK(t *testing.T) {
	r, board, _ := newRouter(t)

	want := []domain.OrderSummary{
		{ID: 3, Status: "Необработанный", Client: "Иван Петров", RestaurantInfo: "Рестораны которые могут приготовить заказ: Арлекино - 2.30 км"},
		{ID: 1, Status: "Готовится", Client: "Пётр Иванов", RestaurantInfo: "Готовится в: Арлекино"},
	}
	board.EXPECT().OrderBoard(gomock.Any()).Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/manager/orders", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []domain.OrderSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got[0].RestaurantInfo != want[0].RestaurantInfo {
		t.Fatalf("restaurant info lost: %+v", got[0])
	}
}

// limit/offset режут уже отранжированную очередь; offset за пределами — пустая страница.
func TestManagerOrders_Pagination(t *testing.T) {
	r, board, _ := newRouter(t)

	full := []domain.OrderSummary{
		{ID: 3, Status: "Необработанный"},
		{ID: 1, Status: "Готовится"},
		{ID: 4, Status: "В пути"},
	}
	board.EXPECT().OrderBoard(gomock.Any()).Return(full, nil).Times(2)

	req := httptest.NewRequest(http.MethodGet, "/manager/orders?limit=1&offset=1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []domain.OrderSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("want page [order 1], got %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/manager/orders?offset=10", http.NoBody)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	got = got[:0]
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty page, got %+v", got)
	}
}

func TestManagerOrders_InternalError(t *testing.T) {
	r, board, _ := newRouter(t)

	board.EXPECT().OrderBoard(gomock.Any()).Return(nil, errors.New("db error"))

	req := httptest.NewRequest(http.MethodGet, "/manager/orders", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetOrder_Found(t *testing.T) {
	r, _, orders := newRouter(t)

	want := &domain.Order{ID: 42, FirstName: "Иван", Items: []domain.OrderItem{{ProductName: "Пицца"}}}
	orders.EXPECT().GetByID(gomock.Any(), int64(42)).Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/order/42", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != 42 {
		t.Fatalf("wrong order id: %v", got)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	r, _, orders := newRouter(t)

	orders.EXPECT().GetByID(gomock.Any(), int64(777)).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/order/777", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetOrder_BadID(t *testing.T) {
	r, _, _ := newRouter(t)

	for _, id := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/order/"+id, http.NoBody)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("id=%q: want 400, got %d, body=%s", id, w.Code, w.Body.String())
		}
	}
}

func TestGetOrder_InternalError(t *testing.T) {
	r, _, orders := newRouter(t)

	orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

	req := httptest.NewRequest(http.MethodGet, "/order/1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestNoRoute_404(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/order/123", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow != "GET" {
		t.Fatalf("want Allow: GET, got %q", allow)
	}
}

func TestPing_200(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}

func TestMetrics_200(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
