package validate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — структура для валидации входящего заказа.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if err := v.validateCore(order); err != nil {
		return err
	}
	return v.validateItems(order.Items)
}

// validateCore — валидация основных полей заказа.
func (v *OrderValidator) validateCore(order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.FirstName) == "" {
		return fmt.Errorf("%w: firstname обязателен", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.LastName) == "" {
		return fmt.Errorf("%w: lastname обязателен", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.Address) == "" {
		return fmt.Errorf("%w: address (адрес доставки) обязателен", ErrInvalidOrder)
	}
	if err := v.validatePhone(order.Phone); err != nil {
		return err
	}
	if !order.Status.Known() {
		return fmt.Errorf("%w: неизвестный статус %q", ErrInvalidOrder, order.Status)
	}
	if order.PaymentMethod != "" && order.PaymentMethod.Display() == string(order.PaymentMethod) {
		return fmt.Errorf("%w: неизвестный способ оплаты %q", ErrInvalidOrder, order.PaymentMethod)
	}
	return nil
}

// validatePhone — телефон в международном формате: "+" и 10–15 цифр.
func (v *OrderValidator) validatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: phonenumber обязателен", ErrInvalidOrder)
	}
	if !strings.HasPrefix(phone, "+") {
		return fmt.Errorf("%w: phonenumber должен начинаться с '+'", ErrInvalidOrder)
	}
	digits := 0
	for _, r := range phone[1:] {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: phonenumber содержит недопустимый символ %q", ErrInvalidOrder, r)
		}
		digits++
	}
	if digits < 10 || digits > 15 {
		return fmt.Errorf("%w: phonenumber должен содержать 10–15 цифр", ErrInvalidOrder)
	}
	return nil
}

// validateItems — валидация позиций заказа.
func (v *OrderValidator) validateItems(items []domain.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items не должен быть пустым", ErrInvalidOrder)
	}

	for i := range items {
		item := &items[i]
		idx := strconv.Itoa(i)

		if item.ProductName == "" {
			return fmt.Errorf("%w: items[%s].product_name обязателен", ErrInvalidOrder, idx)
		}
		if item.Quantity < 1 || item.Quantity > 10000 {
			return fmt.Errorf("%w: items[%s].quantity должен быть в [1, 10000]", ErrInvalidOrder, idx)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: items[%s].price должен быть неотрицательным", ErrInvalidOrder, idx)
		}
	}
	return nil
}
