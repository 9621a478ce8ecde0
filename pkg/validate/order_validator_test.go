package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/pkg/validate"
)

func validOrder() *domain.Order {
	return &domain.Order{
		ID:            1,
		FirstName:     "Иван",
		LastName:      "Петров",
		Phone:         "+79991234567",
		Address:       "Москва, Тверская 1",
		Status:        domain.StatusUnprocessed,
		PaymentMethod: domain.PaymentCash,
		Items: []domain.OrderItem{
			{ProductID: 1, ProductName: "Пицца", Quantity: 2, Price: 450},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	v := validate.NewOrderValidator()
	if err := v.Validate(context.Background(), validOrder()); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	t.Parallel()

	v := validate.NewOrderValidator()

	mutations := map[string]func(*domain.Order){
		"no firstname": func(o *domain.Order) { o.FirstName = "" },
		"no lastname":  func(o *domain.Order) { o.LastName = " " },
		"no address":   func(o *domain.Order) { o.Address = "" },
		"no phone":     func(o *domain.Order) { o.Phone = "" },
		"no items":     func(o *domain.Order) { o.Items = nil },
	}

	for name, mutate := range mutations {
		o := validOrder()
		mutate(o)
		if err := v.Validate(context.Background(), o); !errors.Is(err, validate.ErrInvalidOrder) {
			t.Fatalf("%s: want ErrInvalidOrder, got %v", name, err)
		}
	}
}

func TestValidate_Phone(t *testing.T) {
	t.Parallel()

	v := validate.NewOrderValidator()

	bad := []string{"79991234567", "+7999", "+7999123456789012345", "+7999abc4567"}
	for _, phone := range bad {
		o := validOrder()
		o.Phone = phone
		if err := v.Validate(context.Background(), o); !errors.Is(err, validate.ErrInvalidOrder) {
			t.Fatalf("phone %q: want ErrInvalidOrder, got %v", phone, err)
		}
	}
}

func TestValidate_ItemBounds(t *testing.T) {
	t.Parallel()

	v := validate.NewOrderValidator()

	o := validOrder()
	o.Items[0].Quantity = 0
	if err := v.Validate(context.Background(), o); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("quantity 0: want ErrInvalidOrder, got %v", err)
	}

	o = validOrder()
	o.Items[0].Quantity = 10001
	if err := v.Validate(context.Background(), o); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("quantity 10001: want ErrInvalidOrder, got %v", err)
	}

	o = validOrder()
	o.Items[0].Price = -1
	if err := v.Validate(context.Background(), o); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("negative price: want ErrInvalidOrder, got %v", err)
	}
}

func TestValidate_UnknownStatusAndPayment(t *testing.T) {
	t.Parallel()

	v := validate.NewOrderValidator()

	o := validOrder()
	o.Status = "X"
	if err := v.Validate(context.Background(), o); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("unknown status: want ErrInvalidOrder, got %v", err)
	}

	o = validOrder()
	o.PaymentMethod = "Z"
	if err := v.Validate(context.Background(), o); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("unknown payment method: want ErrInvalidOrder, got %v", err)
	}
}
