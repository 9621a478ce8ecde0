package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// ErrInvalidCoordinate — координата вне допустимого диапазона.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

const earthRadiusKm = 6371.0

// DistanceKm — расстояние по дуге большого круга (гаверсинус) в километрах.
// Чистая функция: единственный сбой — некорректные входные координаты.
func DistanceKm(a, b domain.Coordinates) (float64, error) {
	if err := validate(a); err != nil {
		return 0, err
	}
	if err := validate(b); err != nil {
		return 0, err
	}

	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, nil
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func validate(c domain.Coordinates) error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return fmt.Errorf("%w: NaN", ErrInvalidCoordinate)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v вне [-90, 90]", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v вне [-180, 180]", ErrInvalidCoordinate, c.Lon)
	}
	return nil
}
