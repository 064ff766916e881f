package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"
)

// RoutingService fetches driving routes from OpenRouteService.
type RoutingService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewRoutingService() *RoutingService {
	return &RoutingService{
		apiKey:  os.Getenv("OPENROUTESERVICE_API_KEY"),
		baseURL: "https://api.openrouteservice.org/v2/directions/driving-car/geojson",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type RouteSummary struct {
	// GeoJSON LineString coordinates ([lon, lat] pairs), ready for mapping
	// libraries like Leaflet.
	RouteGeometry      [][]float64 `json:"route_geometry"`
	TotalDistanceKm    float64     `json:"total_distance_km"`
	TotalDurationHours float64     `json:"total_duration_hours"`
}

// GetRoute requests a driving route connecting the given [lon, lat]
// coordinates in order. A failed upstream call fails the whole request: a
// route is meaningless if any segment is missing.
func (rs *RoutingService) GetRoute(coordinates [][]float64) (*RouteSummary, error) {
	if len(coordinates) < 2 {
		return nil, fmt.Errorf("at least two destinations are required to calculate a route")
	}

	// radiuses of -1 let ORS snap each point to the nearest road without a
	// distance cap.
	radiuses := make([]int, len(coordinates))
	for i := range radiuses {
		radiuses[i] = -1
	}

	payload, err := json.Marshal(map[string]interface{}{
		"coordinates": coordinates,
		"radiuses":    radiuses,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, rs.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", rs.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := rs.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get route from ORS: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get route from ORS: %s", string(body))
	}

	var data struct {
		Features []struct {
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties struct {
				Summary struct {
					Distance float64 `json:"distance"` // meters
					Duration float64 `json:"duration"` // seconds
				} `json:"summary"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(body, &data); err != nil || len(data.Features) == 0 {
		return nil, fmt.Errorf("could not parse ORS response")
	}

	route := data.Features[0]
	return &RouteSummary{
		RouteGeometry:      route.Geometry.Coordinates,
		TotalDistanceKm:    round2(route.Properties.Summary.Distance / 1000),
		TotalDurationHours: round2(route.Properties.Summary.Duration / 3600),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
