package models

import "gorm.io/gorm"

// Service type values accepted in Service.ServiceType.
const (
	ServiceTypeHotel     = "HOTEL"
	ServiceTypeGuide     = "GUIDE"
	ServiceTypeTransport = "TRANSPORT"
)

// Service is a specific offering by a vendor, e.g. a hotel room or a guided
// tour. Only the owning vendor may mutate it, and only while verified.
type Service struct {
	gorm.Model
	VendorID    uint    `json:"vendorID" gorm:"not null;index"`
	Vendor      Vendor  `json:"vendor" gorm:"foreignKey:VendorID"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	ServiceType string  `json:"serviceType" gorm:"size:20;not null"`
	Price       float64 `json:"price" gorm:"not null"`
	// Context for the price, e.g. "per night", "per hour".
	PricePer    string `json:"pricePer" gorm:"size:50;default:per person"`
	City        string `json:"city" gorm:"size:100"`
	IsAvailable bool   `json:"isAvailable" gorm:"default:true"`

	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

func ValidServiceType(t string) bool {
	switch t {
	case ServiceTypeHotel, ServiceTypeGuide, ServiceTypeTransport:
		return true
	}
	return false
}
