package usecase

import "github.com/Gunvolt24/foodcart/internal/domain"

// CapabilityIndex — доступные к продаже продукты по ресторанам.
// Строится заново на каждый проход подбора; ничего не кэширует между проходами.
type CapabilityIndex struct {
	byRestaurant map[int64]map[string]struct{}
}

// BuildCapabilityIndex — собирает индекс из пунктов меню:
// продукт попадает в множество ресторана, только если availability = true.
func BuildCapabilityIndex(menu []domain.MenuItem) *CapabilityIndex {
	idx := &CapabilityIndex{byRestaurant: make(map[int64]map[string]struct{})}
	for _, item := range menu {
		if !item.Availability {
			continue
		}
		products, ok := idx.byRestaurant[item.RestaurantID]
		if !ok {
			products = make(map[string]struct{})
			idx.byRestaurant[item.RestaurantID] = products
		}
		products[item.ProductName] = struct{}{}
	}
	return idx
}

// AvailableProducts — множество доступных продуктов ресторана (может быть nil).
func (i *CapabilityIndex) AvailableProducts(restaurantID int64) map[string]struct{} {
	return i.byRestaurant[restaurantID]
}

// CanPrepare — является ли required подмножеством доступных продуктов ресторана.
func (i *CapabilityIndex) CanPrepare(restaurantID int64, required map[string]struct{}) bool {
	available := i.byRestaurant[restaurantID]
	if len(required) > len(available) {
		return false
	}
	for name := range required {
		if _, ok := available[name]; !ok {
			return false
		}
	}
	return true
}
