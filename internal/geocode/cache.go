package geocode

import (
	"context"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
)

// Проверка, что Cache удовлетворяет интерфейсу GeocodeResolver.
var _ ports.GeocodeResolver = (*Cache)(nil)

// Cache — разрешение адресов с двумя слоями кэша:
// горячий in-memory слой и постоянное хранилище, с ленивым обращением к провайдеру.
//
// Разрешённая запись неизменяема и больше никогда не запрашивается у провайдера.
// Неудача (ноль результатов или сбой сети) тоже мемоизируется, но с retryTTL:
// по его истечении следующий проход повторит запрос. Конкурентные разрешения
// одного нового адреса — допустимая гонка: upsert идемпотентен, последняя
// успешная запись побеждает, блокировок нет.
type Cache struct {
	mem      ports.AddressCache
	repo     ports.AddressRepository
	provider ports.GeocodeProvider
	log      ports.Logger
	retryTTL time.Duration
}

// NewCache — DI-конструктор.
func NewCache(
	mem ports.AddressCache,
	repo ports.AddressRepository,
	provider ports.GeocodeProvider,
	log ports.Logger,
	retryTTL time.Duration,
) *Cache {
	if retryTTL <= 0 {
		retryTTL = 15 * time.Minute
	}
	return &Cache{
		mem:      mem,
		repo:     repo,
		provider: provider,
		log:      log,
		retryTTL: retryTTL,
	}
}

// Resolve — координаты адреса; (nil, nil) = не найдено (штатный результат).
// Ошибки провайдера/хранилища не фатальны: вызывающий трактует их как
// отсутствие координат.
func (c *Cache) Resolve(ctx context.Context, rawAddress string) (*domain.Coordinates, error) {
	if rawAddress == "" {
		return nil, nil
	}

	// 1) Горячий слой.
	if cached, ok := c.mem.Get(ctx, rawAddress); ok {
		if cached.Resolved() {
			return cached.Coordinates(), nil
		}
		if c.failureFresh(cached) {
			return nil, nil // мемоизированная неудача ещё действует
		}
	}

	// 2) Постоянное хранилище.
	stored, err := c.repo.GetByRaw(ctx, rawAddress)
	if err != nil {
		c.log.Warnf(ctx, "geocode cache read failed address=%q err=%v", rawAddress, err)
		return nil, err
	}
	if stored != nil {
		if setErr := c.mem.Set(ctx, stored); setErr != nil {
			c.log.Warnf(ctx, "memory cache set failed address=%q err=%v", rawAddress, setErr)
		}
		if stored.Resolved() {
			return stored.Coordinates(), nil
		}
		if c.failureFresh(stored) {
			return nil, nil
		}
		// Запись о неудаче устарела — пробуем провайдера повторно.
	}

	// 3) Провайдер.
	coords, err := c.provider.Fetch(ctx, rawAddress)
	if err != nil {
		c.log.Warnf(ctx, "geocode lookup failed address=%q err=%v", rawAddress, err)
		return nil, err
	}

	entry := &domain.Address{RawAddress: rawAddress, LastUpdated: time.Now()}
	if coords != nil {
		entry.Latitude = &coords.Lat
		entry.Longitude = &coords.Lon
	} else {
		c.log.Warnf(ctx, "no geo objects for address=%q (failure memoized for %s)", rawAddress, c.retryTTL)
	}

	// Неудача upsert'а не отменяет результат разрешения.
	if err := c.repo.Upsert(ctx, entry); err != nil {
		c.log.Warnf(ctx, "geocode cache upsert failed address=%q err=%v", rawAddress, err)
	}
	if err := c.mem.Set(ctx, entry); err != nil {
		c.log.Warnf(ctx, "memory cache set failed address=%q err=%v", rawAddress, err)
	}

	return coords, nil
}

// failureFresh — действует ли ещё мемоизированная неудача для записи без координат.
func (c *Cache) failureFresh(addr *domain.Address) bool {
	return time.Since(addr.LastUpdated) < c.retryTTL
}
