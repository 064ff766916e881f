package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Travel style values accepted in UserProfile.TravelStyle.
const (
	TravelStyleAdventure  = "ADVENTURE"
	TravelStyleRelaxation = "RELAXATION"
	TravelStyleCultural   = "CULTURAL"
	TravelStyleFamily     = "FAMILY"
	TravelStyleBudget     = "BUDGET"
)

// UserProfile stores travel preferences. It is separate from the User model
// which handles authentication; exactly one profile exists per user and it
// is created together with the account.
type UserProfile struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"userID" gorm:"not null;uniqueIndex"`

	TravelStyle string `json:"travelStyle" gorm:"size:20;default:RELAXATION"`
	// Approximate budget per day in USD. Nullable: unset means "no limit".
	Budget             *float64       `json:"budget"`
	PreferredLanguages datatypes.JSON `json:"preferredLanguages"`
	AvatarURL          string         `json:"avatarURL" gorm:"size:512"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt" gorm:"index"`
}

func ValidTravelStyle(style string) bool {
	switch style {
	case TravelStyleAdventure, TravelStyleRelaxation, TravelStyleCultural,
		TravelStyleFamily, TravelStyleBudget:
		return true
	}
	return false
}

// Custom JSON marshaling to render the languages JSON column as a string slice.
func (up *UserProfile) MarshalJSON() ([]byte, error) {
	type Alias UserProfile
	aux := &struct {
		PreferredLanguages []string `json:"preferredLanguages"`
		*Alias
	}{
		PreferredLanguages: []string{},
		Alias:              (*Alias)(up),
	}

	if up.PreferredLanguages != nil {
		var languages []string
		if err := json.Unmarshal(up.PreferredLanguages, &languages); err == nil {
			aux.PreferredLanguages = languages
		}
	}

	return json.Marshal(aux)
}
