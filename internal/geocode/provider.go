package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/pkg/metrics"
)

// providerResponse — формат ответа геокодера:
// response.GeoObjectCollection.featureMember[].GeoObject.Point.pos,
// где pos — строка "долгота широта" (долгота первой!).
type providerResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Provider — HTTP-клиент внешнего геокодера.
type Provider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewProvider — конструктор. timeout — таймаут одного запроса к геокодеру;
// его истечение — штатная неудача разрешения, а не остановка прохода.
func NewProvider(baseURL, apiKey string, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch — запрашивает геообъекты для адреса.
// Возвращает координаты первого результата; (nil, nil), если ничего не найдено.
func (p *Provider) Fetch(ctx context.Context, rawAddress string) (*domain.Coordinates, error) {
	q := url.Values{}
	q.Set("geocode", rawAddress)
	q.Set("apikey", p.apiKey)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		metrics.GeocodeProviderCalls.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("geocode request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		metrics.GeocodeProviderCalls.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("geocode call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GeocodeProviderCalls.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("geocode call: unexpected status %d", resp.StatusCode)
	}

	var decoded providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		metrics.GeocodeProviderCalls.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("geocode decode: %w", err)
	}

	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		metrics.GeocodeProviderCalls.WithLabelValues("empty").Inc()
		return nil, nil
	}

	coords, err := parsePos(members[0].GeoObject.Point.Pos)
	if err != nil {
		metrics.GeocodeProviderCalls.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("geocode point %q: %w", members[0].GeoObject.Point.Pos, err)
	}

	metrics.GeocodeProviderCalls.WithLabelValues("ok").Inc()
	return coords, nil
}

// parsePos — разбирает "долгота широта" и меняет оси местами.
func parsePos(pos string) (*domain.Coordinates, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return nil, fmt.Errorf("want two fields, got %d", len(parts))
	}
	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("longitude: %w", err)
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("latitude: %w", err)
	}
	return &domain.Coordinates{Lat: lat, Lon: lon}, nil
}
