package models

import (
	"time"

	"gorm.io/gorm"
)

// Itinerary is a tourist-owned trip plan. It is visible and mutable only by
// its owner; deleting it cascades to its items.
type Itinerary struct {
	gorm.Model
	UserID    uint      `json:"userID" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	Items []ItineraryItem `json:"items,omitempty" gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
}

// ItineraryItem schedules a destination on a specific day of a trip.
// Items are ordered by (day number, start time), nulls last.
type ItineraryItem struct {
	gorm.Model
	ItineraryID   uint        `json:"itineraryID" gorm:"not null;index"`
	DestinationID uint        `json:"destinationID" gorm:"not null;index"`
	Destination   Destination `json:"destination" gorm:"foreignKey:DestinationID"`

	DayNumber int `json:"dayNumber" gorm:"not null"` // 1-based day of the trip
	// Clock times within the day, e.g. "09:00". Optional.
	StartTime *string `json:"startTime" gorm:"size:8"`
	EndTime   *string `json:"endTime" gorm:"size:8"`
}
