package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/Gunvolt24/foodcart/pkg/validate"
)

// OrderIntakeService — приём заказов из канала сообщений (без знаний о транспорте).
type OrderIntakeService struct {
	repo      ports.OrderRepository // прямой доступ к хранилищу
	log       ports.Logger          // прямой доступ к логгеру
	validator ports.OrderValidator  // прямой доступ к валидатору
}

// NewOrderIntakeService — DI-конструктор.
func NewOrderIntakeService(
	repo ports.OrderRepository,
	log ports.Logger,
	validator ports.OrderValidator,
) *OrderIntakeService {
	return &OrderIntakeService{
		repo:      repo,
		log:       log,
		validator: validator,
	}
}

// SaveFromMessage — сохранить заказ, пришедший из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация;
//  3. транзакционное сохранение в БД (идемпотентные upsert).
//
// Парсинг и валидация возвращают validate.ErrInvalidOrder: такие сообщения
// consumer коммитит и пропускает навсегда, ретраится только шаг сохранения.
func (s *OrderIntakeService) SaveFromMessage(ctx context.Context, raw []byte) error {
	// Строгое декодирование: запрещаем неизвестные поля.
	var order domain.Order
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&order); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidOrder, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidOrder)
	}

	// Новые заказы всегда входят необработанными и без ресторана.
	if order.Status == "" {
		order.Status = domain.StatusUnprocessed
	}

	// Доменная валидация (обязательные поля, телефон, позиции и т.д.).
	if err := s.validator.Validate(ctx, &order); err != nil {
		s.log.Warnf(ctx, "validation failed order_id=%d err=%v", order.ID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	// Сохранение в БД в транзакции.
	if err := s.repo.Save(ctx, &order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order_id=%d err=%v", order.ID, err)
		return fmt.Errorf("failed to save order: %w", err)
	}

	s.log.Infof(ctx, "order saved id=%d items=%d", order.ID, len(order.Items))
	return nil
}
