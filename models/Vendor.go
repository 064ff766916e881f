package models

import "gorm.io/gorm"

// Vendor is a local business applying to sell services. Each vendor is
// linked to exactly one user account; IsVerified is set only through the
// admin surface.
type Vendor struct {
	gorm.Model
	UserID              uint   `json:"userID" gorm:"not null;uniqueIndex"`
	User                User   `json:"user" gorm:"foreignKey:UserID"`
	BusinessName        string `json:"businessName" gorm:"size:255;not null"`
	ContactPhone        string `json:"contactPhone" gorm:"size:20"`
	BusinessDescription string `json:"businessDescription" gorm:"type:text"`
	IsVerified          bool   `json:"isVerified" gorm:"default:false"`

	Services []Service `json:"services,omitempty" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}
