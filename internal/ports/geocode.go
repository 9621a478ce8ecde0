package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// GeocodeProvider — внешний геокодер (HTTP).
// Возвращает (nil, nil), если провайдер не нашёл ни одного геообъекта.
type GeocodeProvider interface {
	Fetch(ctx context.Context, rawAddress string) (*domain.Coordinates, error)
}

// GeocodeResolver — разрешение адреса в координаты через кэш.
// "Не найдено" — штатный результат (nil, nil), а не ошибка:
// для подбора ресторанов отсутствие координат лишь понижает ранжирование.
type GeocodeResolver interface {
	Resolve(ctx context.Context, rawAddress string) (*domain.Coordinates, error)
}
