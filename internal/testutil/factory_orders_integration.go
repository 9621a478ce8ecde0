//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// UniqID — случайный положительный id для изоляции параллельных тестов.
func UniqID() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	id := int64(binary.BigEndian.Uint64(b[:]) & 0x7fffffffffff)
	if id == 0 {
		id = 1
	}
	return id
}

// MakeOrder — мини-генератор валидного заказа.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.Order{
		ID:            UniqID(),
		FirstName:     "Иван",
		LastName:      "Петров",
		Phone:         "+79991234567",
		Address:       "Москва, Тверская 1",
		Status:        domain.StatusUnprocessed,
		PaymentMethod: domain.PaymentCash,
		CreatedAt:     now,
		Items: []domain.OrderItem{
			{ProductID: 1, ProductName: "Пицца", Quantity: 2, Price: 450},
			{ProductID: 2, ProductName: "Кола", Quantity: 1, Price: 100},
		},
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithStatus — переопределяет статус заказа в тесте.
func WithStatus(s domain.OrderStatus) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = s }
}

// WithAddress — переопределяет адрес доставки.
func WithAddress(addr string) func(*domain.Order) {
	return func(o *domain.Order) { o.Address = addr }
}
