package models

import (
	"time"

	"gorm.io/gorm"
)

// Cultural event categories.
const (
	EventCategoryFestival   = "FESTIVAL"
	EventCategoryConcert    = "CONCERT"
	EventCategoryExhibition = "EXHIBITION"
	EventCategorySport      = "SPORT"
	EventCategoryFood       = "FOOD"
)

// CulturalEvent is a festival, concert, exhibition or similar happening in
// a city. Seeded reference data, filterable by city and category.
type CulturalEvent struct {
	gorm.Model
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	City        string    `json:"city" gorm:"size:100;index"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Category    string    `json:"category" gorm:"size:20;index"`
}
