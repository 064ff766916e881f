package services

import (
	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
)

// Budget ceiling applied when a profile has no budget set.
const unlimitedBudget = 99999.99

// styleToDestinationTypes maps a travel style to the destination types the
// recommender should prefer. The logic here can be replaced with a real
// model later without changing the API.
var styleToDestinationTypes = map[string][]string{
	models.TravelStyleAdventure:  {models.DestinationTypeHikingTrail, models.DestinationTypePark},
	models.TravelStyleRelaxation: {models.DestinationTypePark, models.DestinationTypeBeach, models.DestinationTypeLandmark},
	models.TravelStyleCultural:   {models.DestinationTypeMuseum, models.DestinationTypeLandmark},
	models.TravelStyleFamily:     {models.DestinationTypePark, models.DestinationTypeMuseum},
	models.TravelStyleBudget:     {models.DestinationTypePark, models.DestinationTypeMuseum},
}

// GetRecommendations suggests up to five destinations matching the
// profile's travel style and budget, in random order.
func GetRecommendations(profile *models.UserProfile) ([]models.Destination, error) {
	budget := unlimitedBudget
	if profile.Budget != nil {
		budget = *profile.Budget
	}

	query := storage.DB.Where("average_cost <= ?", budget)
	if preferredTypes, ok := styleToDestinationTypes[profile.TravelStyle]; ok {
		query = query.Where("destination_type IN ?", preferredTypes)
	}

	var recommendations []models.Destination
	err := query.Order("RANDOM()").Limit(5).Find(&recommendations).Error
	return recommendations, err
}
