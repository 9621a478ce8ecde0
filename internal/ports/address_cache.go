package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// AddressCache — горячий слой геокэша (in-memory) поверх постоянного хранилища.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type AddressCache interface {
	// Get — запись по строке адреса; (addr, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, rawAddress string) (*domain.Address, bool)

	// Set — сохранить/обновить запись в кэше.
	Set(ctx context.Context, addr *domain.Address) error
}
