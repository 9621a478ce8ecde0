package domain

// Restaurant — ресторан из справочника.
type Restaurant struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// MenuItem — пункт меню ресторана. Продукт участвует в подборе,
// только если availability = true.
type MenuItem struct {
	RestaurantID int64   `json:"restaurant_id"`
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Availability bool    `json:"availability"`
	Price        float64 `json:"price"`
}
