// server/internal/geo/locate.go
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"food-bridge-api-server/internal/models"
)

// Locator resolves the caller's approximate coordinates from an IP
// geolocation endpoint (ip-api.com JSON format). One request, one answer:
// either a coordinate or an error, no ongoing subscription.
type Locator struct {
	Endpoint string
	Client   *http.Client
}

func NewLocator(endpoint string) *Locator {
	return &Locator{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Locate fetches the coordinate for the given IP. An empty ip resolves the
// server's own public address, which the endpoint handles as a fallback.
func (l *Locator) Locate(ctx context.Context, ip string) (*models.GeoPoint, error) {
	url := l.Endpoint
	if ip != "" {
		url = fmt.Sprintf("%s/%s", l.Endpoint, ip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode geolocation response: %w", err)
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", body.Message)
	}

	return &models.GeoPoint{Latitude: body.Lat, Longitude: body.Lon}, nil
}
