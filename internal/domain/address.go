package domain

import "time"

// Address — запись геокэша. Ключ — исходная строка адреса без нормализации:
// две текстуально разные строки одного места — две разные записи.
// Координаты отсутствуют, пока адрес не разрешён (или провайдер ничего не нашёл).
type Address struct {
	RawAddress  string
	Latitude    *float64
	Longitude   *float64
	LastUpdated time.Time
}

// Resolved — есть ли у записи обе координаты.
func (a *Address) Resolved() bool {
	return a != nil && a.Latitude != nil && a.Longitude != nil
}

// Coordinates — координаты записи; (nil), если адрес не разрешён.
func (a *Address) Coordinates() *Coordinates {
	if !a.Resolved() {
		return nil
	}
	return &Coordinates{Lat: *a.Latitude, Lon: *a.Longitude}
}

// Coordinates — типизированная пара широта/долгота.
type Coordinates struct {
	Lat float64
	Lon float64
}
