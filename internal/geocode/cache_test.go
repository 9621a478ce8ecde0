package geocode_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/geocode"
	"github.com/Gunvolt24/foodcart/internal/ports/mocks"
	"github.com/golang/mock/gomock"
)

const rawMoscow = "Москва, Красная площадь"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func resolved(raw string, lat, lon float64) *domain.Address {
	return &domain.Address{RawAddress: raw, Latitude: &lat, Longitude: &lon, LastUpdated: time.Now()}
}

func TestResolve_MemoryHit_NoStoreNoNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)

	mem := mocks.NewMockAddressCache(ctrl)
	repo := mocks.NewMockAddressRepository(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	mem.EXPECT().Get(gomock.Any(), rawMoscow).Return(resolved(rawMoscow, 55.754, 37.621), true)
	repo.EXPECT().GetByRaw(gomock.Any(), gomock.Any()).Times(0)
	provider.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)

	c := geocode.NewCache(mem, repo, provider, noopLogger{}, time.Minute)

	coords, err := c.Resolve(context.Background(), rawMoscow)
	if err != nil || coords == nil {
		t.Fatalf("want hit, got coords=%v err=%v", coords, err)
	}
	if coords.Lat != 55.754 || coords.Lon != 37.621 {
		t.Fatalf("wrong coords: %+v", coords)
	}
}

func TestResolve_StoreHit_WarmsMemory(t *testing.T) {
	ctrl := gomock.NewController(t)

	mem := mocks.NewMockAddressCache(ctrl)
	repo := mocks.NewMockAddressRepository(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	gomock.InOrder(
		mem.EXPECT().Get(gomock.Any(), rawMoscow).Return(nil, false),
		repo.EXPECT().GetByRaw(gomock.Any(), rawMoscow).Return(resolved(rawMoscow, 55.754, 37.621), nil),
		mem.EXPECT().Set(gomock.Any(), gomock.AssignableToTypeOf(&domain.Address{})).Return(nil),
	)
	provider.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)

	c := geocode.NewCache(mem, repo, provider, noopLogger{}, time.Minute)

	coords, err := c.Resolve(context.Background(), rawMoscow)
	if err != nil || coords == nil || coords.Lat != 55.754 {
		t.Fatalf("want store hit, got coords=%v err=%v", coords, err)
	}
}

func TestResolve_Miss_FetchesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)

	mem := mocks.NewMockAddressCache(ctrl)
	repo := mocks.NewMockAddressRepository(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	var persisted *domain.Address

	gomock.InOrder(
		mem.EXPECT().Get(gomock.Any(), rawMoscow).Return(nil, false),
		repo.EXPECT().GetByRaw(gomock.Any(), rawMoscow).Return(nil, nil),
		provider.EXPECT().Fetch(gomock.Any(), rawMoscow).
			Return(&domain.Coordinates{Lat: 55.754, Lon: 37.621}, nil),
		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(&domain.Address{})).
			DoAndReturn(func(_ context.Context, a *domain.Address) error {
				persisted = a
				return nil
			}),
		mem.EXPECT().Set(gomock.Any(), gomock.AssignableToTypeOf(&domain.Address{})).Return(nil),
	)

	c := geocode.NewCache(mem, repo, provider, noopLogger{}, time.Minute)

	coords, err := c.Resolve(context.Background(), rawMoscow)
	if err != nil || coords == nil {
		t.Fatalf("want resolved coords, got coords=%v err=%v", coords, err)
	}
	if persisted == nil || !persisted.Resolved() {
		t.Fatalf("resolved entry must be persisted: %+v", persisted)
	}
	if *persisted.Latitude != 55.754 || *persisted.Longitude != 37.621 {
		t.Fatalf("persisted wrong coords: lat=%v lon=%v", *persisted.Latitude, *persisted.Longitude)
	}
}

// Ноль результатов — тоже кэшируется (запись без координат), не ошибка.
func TestResolve_ZeroResults_MemoizedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	mem := mocks.NewMockAddressCache(ctrl)
	repo := mocks.NewMockAddressRepository(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	gomock.InOrder(
		mem.EXPECT().Get(gomock.Any(), "Нигде, дом 0").Return(nil, false),
		repo.EXPECT().GetByRaw(gomock.Any(), "Нигде, дом 0").Return(nil, nil),
		provider.EXPECT().Fetch(gomock.Any(), "Нигде, дом 0").Return(nil, nil),
		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(&domain.Address{})).
			DoAndReturn(func(_ context.Context, a *domain.Address) error {
				if a.Resolved() {
					t.Errorf("failure entry must have no coordinates: %+v", a)
				}
				return nil
			}),
		mem.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
	)

	c := geocode.NewCache(mem, repo, provider, noopLogger{}, time.Minute)

	coords, err := c.Resolve(context.Background(), "Нигде, дом 0")
	if err != nil {
		t.Fatalf("zero results must not be an error: %v", err)
	}
	if coords != nil {
		t.Fatalf("want NotFound, got %+v", coords)
	}
}

// Свежая мемоизированная неудача не даёт второго сетевого вызова.
func TestResolve_FreshFailure_NoRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)

	mem := mocks.NewMockAddressCache(ctrl)
	repo := mocks.NewMockAddressRepository(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	failure := &domain.Address{RawAddress: "Нигде, дом 0", LastUpdated: time.Now()}
	mem.EXPECT().Get(gomock.Any(), "Нигде, дом 0").Return(failure, true)
	repo.EXPECT().GetByRaw(gomock.Any(), gomock.Any()).Times(0)
	provider.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)

	c := geocode.NewCache(mem, repo, provider, noopLogger{}, time.Hour)

	coords, err := c.Resolve(context.Background(), "Нигде, дом 0")
	if err != nil || coords != nil {
		t.Fatalf("want memoized NotFound, got coords=%v err=%v", coords, err)
	}
}

// Устаревшая неудача повторно запрашивается у провайдера.
func TestResolve_StaleFailure_Refetches(t *testing.T) {
	ctrl := gomock.NewController(t)

	mem := mocks.NewMockAddressCache(ctrl)
	repo := mocks.NewMockAddressRepository(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	stale := &domain.Address{RawAddress: rawMoscow, LastUpdated: time.Now().Add(-2 * time.Hour)}

	gomock.InOrder(
		mem.EXPECT().Get(gomock.Any(), rawMoscow).Return(stale, true),
		repo.EXPECT().GetByRaw(gomock.Any(), rawMoscow).Return(stale, nil),
		mem.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
		provider.EXPECT().Fetch(gomock.Any(), rawMoscow).
			Return(&domain.Coordinates{Lat: 55.754, Lon: 37.621}, nil),
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
		mem.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
	)

	c := geocode.NewCache(mem, repo, provider, noopLogger{}, time.Hour)

	coords, err := c.Resolve(context.Background(), rawMoscow)
	if err != nil || coords == nil || coords.Lat != 55.754 {
		t.Fatalf("want refetched coords, got coords=%v err=%v", coords, err)
	}
}

func TestResolve_ProviderError_NotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)

	mem := mocks.NewMockAddressCache(ctrl)
	repo := mocks.NewMockAddressRepository(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	gomock.InOrder(
		mem.EXPECT().Get(gomock.Any(), rawMoscow).Return(nil, false),
		repo.EXPECT().GetByRaw(gomock.Any(), rawMoscow).Return(nil, nil),
		provider.EXPECT().Fetch(gomock.Any(), rawMoscow).Return(nil, errors.New("network down")),
	)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	c := geocode.NewCache(mem, repo, provider, noopLogger{}, time.Minute)

	coords, err := c.Resolve(context.Background(), rawMoscow)
	if err == nil {
		t.Fatalf("want recoverable error")
	}
	if coords != nil {
		t.Fatalf("want nil coords on provider error, got %+v", coords)
	}
}

func TestResolve_EmptyAddress(t *testing.T) {
	ctrl := gomock.NewController(t)

	mem := mocks.NewMockAddressCache(ctrl)
	repo := mocks.NewMockAddressRepository(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	c := geocode.NewCache(mem, repo, provider, noopLogger{}, time.Minute)

	coords, err := c.Resolve(context.Background(), "")
	if err != nil || coords != nil {
		t.Fatalf("empty address: want (nil, nil), got coords=%v err=%v", coords, err)
	}
}
