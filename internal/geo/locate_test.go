package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/1.2.3.4":
			w.Write([]byte(`{"status":"success","lat":12.97,"lon":77.59}`))
		default:
			w.Write([]byte(`{"status":"fail","message":"reserved range"}`))
		}
	}))
	defer server.Close()

	locator := NewLocator(server.URL)

	point, err := locator.Locate(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if point.Latitude != 12.97 || point.Longitude != 77.59 {
		t.Errorf("unexpected point: %+v", point)
	}

	if _, err := locator.Locate(context.Background(), "10.0.0.1"); err == nil {
		t.Error("expected failure status to surface as an error")
	}
}
