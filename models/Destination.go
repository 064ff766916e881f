package models

import "gorm.io/gorm"

// Destination type values.
const (
	DestinationTypeLandmark    = "LANDMARK"
	DestinationTypeMuseum      = "MUSEUM"
	DestinationTypeRestaurant  = "RESTAURANT"
	DestinationTypePark        = "PARK"
	DestinationTypeHikingTrail = "HIKING_TRAIL"
	DestinationTypeBeach       = "BEACH"
)

// Destination is a point of interest. It is reference data seeded at
// startup and is not user-owned.
type Destination struct {
	gorm.Model
	Name            string `json:"name" gorm:"size:255;not null"`
	Description     string `json:"description" gorm:"type:text"`
	City            string `json:"city" gorm:"size:100;index"`
	Country         string `json:"country" gorm:"size:100"`
	DestinationType string `json:"destinationType" gorm:"size:20;index"`
	// A simple cost metric used by the recommendation filter.
	AverageCost float64 `json:"averageCost" gorm:"default:50"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
