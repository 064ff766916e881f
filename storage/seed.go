package storage

import (
	"log"
	"time"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"gorm.io/gorm"
)

// SeedReferenceData inserts the initial destinations and cultural events.
// Idempotent: rows are only created when the tables are empty.
func SeedReferenceData(db *gorm.DB) {
	seedDestinations(db)
	seedCulturalEvents(db)
}

func seedDestinations(db *gorm.DB) {
	var count int64
	db.Model(&models.Destination{}).Count(&count)
	if count > 0 {
		return
	}

	destinations := []models.Destination{
		{
			Name:            "Neelum Valley",
			Description:     "A breathtaking valley with lush greenery, pristine rivers, and scenic views.",
			City:            "Muzaffarabad",
			Country:         "Pakistan",
			DestinationType: models.DestinationTypePark,
			AverageCost:     75.00,
			Latitude:        34.79,
			Longitude:       74.29,
		},
		{
			Name:            "Ratti Gali Lake",
			Description:     "An alpine glacial lake, also known as the 'Jewel of Neelum', accessible via a challenging trek.",
			City:            "Neelum Valley",
			Country:         "Pakistan",
			DestinationType: models.DestinationTypeHikingTrail,
			AverageCost:     40.00,
			Latitude:        34.83,
			Longitude:       74.05,
		},
		{
			Name:            "Banjosa Lake",
			Description:     "A beautiful artificial lake surrounded by dense pine forest and mountains, ideal for relaxation.",
			City:            "Rawalakot",
			Country:         "Pakistan",
			DestinationType: models.DestinationTypePark,
			AverageCost:     30.00,
			Latitude:        33.81,
			Longitude:       73.81,
		},
		{
			Name:            "Hunza Valley",
			Description:     "Famous for its stunning mountain scenery, historic forts, and warm hospitality.",
			City:            "Hunza",
			Country:         "Pakistan",
			DestinationType: models.DestinationTypeLandmark,
			AverageCost:     100.00,
			Latitude:        36.31,
			Longitude:       74.65,
		},
		{
			Name:            "Skardu Fort (Kharpocho)",
			Description:     "A historic fort perched on a hilltop offering panoramic views of Skardu town and the Indus River.",
			City:            "Skardu",
			Country:         "Pakistan",
			DestinationType: models.DestinationTypeMuseum,
			AverageCost:     20.00,
			Latitude:        35.30,
			Longitude:       75.63,
		},
		{
			Name:            "Deosai National Park",
			Description:     "The 'Land of Giants', a high-altitude plateau known for its rich biodiversity and Himalayan brown bears.",
			City:            "Skardu",
			Country:         "Pakistan",
			DestinationType: models.DestinationTypePark,
			AverageCost:     60.00,
			Latitude:        34.96,
			Longitude:       75.42,
		},
		{
			Name:            "Attabad Lake",
			Description:     "A stunning turquoise lake formed after a massive landslide, perfect for boating and sightseeing.",
			City:            "Hunza",
			Country:         "Pakistan",
			DestinationType: models.DestinationTypeBeach,
			AverageCost:     50.00,
			Latitude:        36.31,
			Longitude:       74.86,
		},
	}

	if err := db.Create(&destinations).Error; err != nil {
		log.Println("Warning: could not seed destinations:", err)
	}
}

func seedCulturalEvents(db *gorm.DB) {
	var count int64
	db.Model(&models.CulturalEvent{}).Count(&count)
	if count > 0 {
		return
	}

	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	events := []models.CulturalEvent{
		{
			Name:        "Shandur Polo Festival",
			Description: "An annual polo tournament between teams from Gilgit and Chitral, held at the world's highest polo ground.",
			City:        "Gilgit",
			StartDate:   date(2024, time.July, 7),
			EndDate:     date(2024, time.July, 9),
			Category:    models.EventCategorySport,
		},
		{
			Name:        "Jashn-e-Navroz",
			Description: "A vibrant spring festival celebrating the Persian New Year with music, dance, and traditional food.",
			City:        "Hunza",
			StartDate:   date(2025, time.March, 21),
			EndDate:     date(2025, time.March, 23),
			Category:    models.EventCategoryFestival,
		},
		{
			Name:        "Silk Route Festival",
			Description: "A cultural extravaganza showcasing the traditions, crafts, and cuisines of the entire Gilgit-Baltistan region.",
			City:        "Skardu",
			StartDate:   date(2024, time.September, 15),
			EndDate:     date(2024, time.September, 18),
			Category:    models.EventCategoryFestival,
		},
	}

	if err := db.Create(&events).Error; err != nil {
		log.Println("Warning: could not seed cultural events:", err)
	}
}
