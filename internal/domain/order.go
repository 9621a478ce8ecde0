package domain

import "time"

// OrderStatus — однобуквенный код статуса заказа (как хранится в БД).
type OrderStatus string

const (
	StatusUnprocessed OrderStatus = "U" // Необработанный
	StatusPreparing   OrderStatus = "S" // Готовится
	StatusInTransit   OrderStatus = "D" // В пути
	StatusFulfilled   OrderStatus = "V" // Выполнен
)

// statusDisplay — человекочитаемые названия статусов для менеджерской панели.
var statusDisplay = map[OrderStatus]string{
	StatusUnprocessed: "Необработанный",
	StatusPreparing:   "Готовится",
	StatusInTransit:   "В пути",
	StatusFulfilled:   "Выполнен",
}

// queueRank — порядок отображения в очереди менеджера.
// Выполненные заказы исключаются из панели до сортировки.
var queueRank = map[OrderStatus]int{
	StatusFulfilled:   1,
	StatusUnprocessed: 2,
	StatusPreparing:   3,
	StatusInTransit:   4,
}

// Display — название статуса; для неизвестного кода возвращает сам код.
func (s OrderStatus) Display() string {
	if d, ok := statusDisplay[s]; ok {
		return d
	}
	return string(s)
}

// QueueRank — приоритет в очереди; неизвестные статусы уходят в конец.
func (s OrderStatus) QueueRank() int {
	if r, ok := queueRank[s]; ok {
		return r
	}
	return 999
}

// Known — известен ли код статуса.
func (s OrderStatus) Known() bool {
	_, ok := statusDisplay[s]
	return ok
}

// PaymentMethod — однобуквенный код способа оплаты.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "C" // Наличными
	PaymentElectronic PaymentMethod = "E" // Электронный
	PaymentCard       PaymentMethod = "K" // Картой
)

var paymentDisplay = map[PaymentMethod]string{
	PaymentCash:       "Наличными",
	PaymentElectronic: "Электронный",
	PaymentCard:       "Картой",
}

// Display — название способа оплаты; для неизвестного кода возвращает сам код.
func (p PaymentMethod) Display() string {
	if d, ok := paymentDisplay[p]; ok {
		return d
	}
	return string(p)
}

// Order — заказ клиента.
type Order struct {
	ID            int64         `json:"id"`
	FirstName     string        `json:"firstname"`
	LastName      string        `json:"lastname"`
	Phone         string        `json:"phonenumber"`
	Address       string        `json:"address"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Comment       string        `json:"comment,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	CalledAt      *time.Time    `json:"called_at,omitempty"`
	DeliveredAt   *time.Time    `json:"delivered_at,omitempty"`

	// RestaurantID/RestaurantName — назначенный ресторан (nil/пусто, если не назначен).
	RestaurantID   *int64 `json:"restaurant_id,omitempty"`
	RestaurantName string `json:"restaurant_name,omitempty"`

	// TotalPrice — сумма заказа; считается в БД (SUM(quantity * price)).
	TotalPrice float64 `json:"total_price"`

	Items []OrderItem `json:"items"`
}

// OrderItem — позиция заказа. Для подбора ресторана важно только имя продукта,
// количество участвует лишь в стоимости.
type OrderItem struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// RequiredProducts — множество имён продуктов заказа.
func (o *Order) RequiredProducts() map[string]struct{} {
	required := make(map[string]struct{}, len(o.Items))
	for _, item := range o.Items {
		required[item.ProductName] = struct{}{}
	}
	return required
}

// Client — имя клиента для панели менеджера.
func (o *Order) Client() string {
	return o.FirstName + " " + o.LastName
}

// Assigned — назначен ли ресторан.
func (o *Order) Assigned() bool { return o.RestaurantID != nil }
