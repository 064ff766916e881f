package services

import (
	"math"
	"sort"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
)

// CalculateDistance returns the great-circle distance in kilometers between
// two points using the Haversine formula.
func CalculateDistance(lat1, lng1, lat2, lng2 float64) float64 {
	const R = 6371 // Earth's radius in kilometers

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

// DestinationDistance pairs a destination with its distance from a query
// point.
type DestinationDistance struct {
	Destination models.Destination `json:"destination"`
	DistanceKm  float64            `json:"distanceKm"`
}

// NearestDestinations ranks destinations by distance from (lat, lng) and
// returns at most limit entries within radiusKm.
func NearestDestinations(destinations []models.Destination, lat, lng, radiusKm float64, limit int) []DestinationDistance {
	var nearby []DestinationDistance
	for _, d := range destinations {
		dist := CalculateDistance(lat, lng, d.Latitude, d.Longitude)
		if dist <= radiusKm {
			nearby = append(nearby, DestinationDistance{Destination: d, DistanceKm: math.Round(dist*100) / 100})
		}
	}
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby
}
