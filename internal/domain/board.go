package domain

// OrderSummary — строка менеджерской панели: отображаемые поля заказа
// плюс готовая строка о ресторанах (назначенный / кандидаты / в пути).
type OrderSummary struct {
	ID             int64   `json:"id"`
	Status         string  `json:"status"`
	PaymentMethod  string  `json:"payment_method"`
	Client         string  `json:"client"`
	Phone          string  `json:"phonenumber"`
	Address        string  `json:"address"`
	TotalPrice     float64 `json:"order_cost"`
	Comment        string  `json:"comment"`
	RestaurantInfo string  `json:"restaurant"`
}
