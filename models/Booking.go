package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking status values.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
)

// Booking records a tourist reserving a service. TotalPrice is snapshotted
// from the service's price at booking time and never recomputed afterwards.
type Booking struct {
	gorm.Model
	UserID    uint    `json:"userID" gorm:"not null;index"`
	User      User    `json:"user" gorm:"foreignKey:UserID"`
	ServiceID uint    `json:"serviceID" gorm:"not null;index"`
	Service   Service `json:"service" gorm:"foreignKey:ServiceID"`

	// The date the service is for (e.g. hotel check-in date). End date is
	// optional for single-day services.
	ServiceStartDate time.Time  `json:"serviceStartDate" gorm:"not null"`
	ServiceEndDate   *time.Time `json:"serviceEndDate"`

	Status     string  `json:"status" gorm:"size:20;default:PENDING;index"`
	TotalPrice float64 `json:"totalPrice" gorm:"not null"`
}

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}
