package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetRouteRequiresTwoPoints(t *testing.T) {
	rs := NewRoutingService()
	if _, err := rs.GetRoute([][]float64{{75.6, 35.3}}); err == nil {
		t.Fatal("expected an error for a single coordinate")
	}
	if _, err := rs.GetRoute(nil); err == nil {
		t.Fatal("expected an error for no coordinates")
	}
}

func TestGetRouteParsesSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Coordinates [][]float64 `json:"coordinates"`
			Radiuses    []int       `json:"radiuses"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Coordinates) != 2 {
			t.Errorf("expected 2 coordinates, got %d", len(req.Coordinates))
		}
		for _, radius := range req.Radiuses {
			if radius != -1 {
				t.Errorf("radius = %d, want -1 (unlimited road snap)", radius)
			}
		}

		w.Write([]byte(`{"features":[{"geometry":{"coordinates":[[75.60,35.30],[75.62,35.29]]},` +
			`"properties":{"summary":{"distance":12345,"duration":5400}}}]}`))
	}))
	defer server.Close()

	rs := NewRoutingService()
	rs.baseURL = server.URL

	route, err := rs.GetRoute([][]float64{{75.60, 35.30}, {75.62, 35.29}})
	if err != nil {
		t.Fatalf("GetRoute: %v", err)
	}
	if route.TotalDistanceKm != 12.35 {
		t.Errorf("distance = %v km, want 12.35", route.TotalDistanceKm)
	}
	if route.TotalDurationHours != 1.5 {
		t.Errorf("duration = %v h, want 1.5", route.TotalDurationHours)
	}
	if len(route.RouteGeometry) != 2 {
		t.Errorf("geometry has %d points, want 2", len(route.RouteGeometry))
	}
}

func TestGetRouteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid key"}`))
	}))
	defer server.Close()

	rs := NewRoutingService()
	rs.baseURL = server.URL

	if _, err := rs.GetRoute([][]float64{{75.60, 35.30}, {75.62, 35.29}}); err == nil {
		t.Fatal("expected an error when the upstream rejects the request")
	}
}
