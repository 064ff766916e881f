package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:256;not null"`
	Password string `json:"password"`
	Role     string `json:"role" gorm:"type:varchar(20);default:user;index"` // user, admin, super_admin

	Profile     *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Itineraries []Itinerary  `json:"itineraries,omitempty" gorm:"foreignKey:UserID"`
	Bookings    []Booking    `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}

// Custom JSON marshaling so the password hash never leaves the server,
// even when a handler serializes the struct directly.
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		*Alias
		Password string `json:"password,omitempty"`
	}{
		Alias: (*Alias)(u),
	}
	aux.Password = ""
	return json.Marshal(aux)
}
