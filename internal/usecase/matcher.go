package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/geo"
	"github.com/Gunvolt24/foodcart/internal/ports"
)

// Candidate — ресторан-кандидат с опциональным расстоянием до адреса доставки.
// Живёт только внутри одного прохода подбора, никуда не сохраняется.
type Candidate struct {
	Name       string
	DistanceKm *float64
}

// MatchResult — итог подбора для одного заказа.
type MatchResult struct {
	// Note — статическое сообщение ("уже в пути" / "готовится в ...");
	// пусто, если выполнялся подбор кандидатов.
	Note       string
	Candidates []Candidate
}

// RestaurantMatcher — подбор ресторанов, способных приготовить заказ,
// с ранжированием по расстоянию до адреса доставки.
type RestaurantMatcher struct {
	resolver ports.GeocodeResolver
	log      ports.Logger
}

// NewRestaurantMatcher — DI-конструктор.
func NewRestaurantMatcher(resolver ports.GeocodeResolver, log ports.Logger) *RestaurantMatcher {
	return &RestaurantMatcher{resolver: resolver, log: log}
}

// Match — подбор для одного заказа.
// Короткие пути (без геокодирования): заказ в пути; ресторан уже назначен.
// Иначе: фильтр по способности приготовить, затем расстояние для каждого
// кандидата. Неразрешённый адрес не исключает ресторан — он лишь уходит
// в конец ранжирования. Сбой геокодирования одного адреса не прерывает проход.
func (m *RestaurantMatcher) Match(
	ctx context.Context,
	order *domain.Order,
	restaurants []domain.Restaurant,
	index *CapabilityIndex,
) MatchResult {
	if order.Status == domain.StatusInTransit {
		return MatchResult{Note: "Заказ уже в пути"}
	}
	if order.Assigned() {
		return MatchResult{Note: fmt.Sprintf("Готовится в: %s", order.RestaurantName)}
	}

	required := order.RequiredProducts()

	// Адрес доставки разрешаем один раз на заказ, не по разу на ресторан.
	var orderCoords *domain.Coordinates
	if order.Address != "" {
		coords, err := m.resolver.Resolve(ctx, order.Address)
		if err != nil {
			m.log.Warnf(ctx, "order delivery address unresolved order_id=%d err=%v", order.ID, err)
		}
		orderCoords = coords
	}

	candidates := make([]Candidate, 0, len(restaurants))
	for _, r := range restaurants {
		if !index.CanPrepare(r.ID, required) {
			continue
		}
		candidates = append(candidates, Candidate{
			Name:       r.Name,
			DistanceKm: m.distanceTo(ctx, r, orderCoords),
		})
	}

	sortCandidates(candidates)
	return MatchResult{Candidates: candidates}
}

// distanceTo — расстояние от ресторана до адреса доставки; nil, если
// какой-либо из адресов не разрешён или расстояние не посчиталось.
func (m *RestaurantMatcher) distanceTo(
	ctx context.Context,
	r domain.Restaurant,
	orderCoords *domain.Coordinates,
) *float64 {
	if orderCoords == nil || r.Address == "" {
		return nil
	}

	restCoords, err := m.resolver.Resolve(ctx, r.Address)
	if err != nil {
		m.log.Warnf(ctx, "restaurant address unresolved restaurant=%q err=%v", r.Name, err)
		return nil
	}
	if restCoords == nil {
		return nil
	}

	d, err := geo.DistanceKm(*restCoords, *orderCoords)
	if err != nil {
		// Испорченные координаты в кэше — считаем адрес неразрешённым.
		m.log.Warnf(ctx, "distance failed restaurant=%q err=%v", r.Name, err)
		return nil
	}
	return &d
}

// sortCandidates — сортировка по паре (расстояние, имя) по возрастанию;
// отсутствующее расстояние больше любого числового, имя — разрешение ничьих.
func sortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		di, dj := candidates[i].DistanceKm, candidates[j].DistanceKm
		switch {
		case di == nil && dj == nil:
			return candidates[i].Name < candidates[j].Name
		case di == nil:
			return false
		case dj == nil:
			return true
		case *di != *dj:
			return *di < *dj
		default:
			return candidates[i].Name < candidates[j].Name
		}
	})
}

// Format — строка для панели менеджера.
// "<имя> - <расстояние> км" для разрешённых адресов, просто "<имя>" — для
// неразрешённых; пустой список кандидатов — отдельное явное сообщение.
func (r MatchResult) Format() string {
	if r.Note != "" {
		return r.Note
	}
	if len(r.Candidates) == 0 {
		return "Нет ресторанов, которые могут приготовить заказ"
	}

	parts := make([]string, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		if c.DistanceKm != nil {
			parts = append(parts, fmt.Sprintf("%s - %.2f км", c.Name, *c.DistanceKm))
		} else {
			parts = append(parts, c.Name)
		}
	}
	return "Рестораны которые могут приготовить заказ: " + strings.Join(parts, ", ")
}
