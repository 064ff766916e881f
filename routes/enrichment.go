package routes

import (
	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/services"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
)

// GET /api/planner/itineraries/{id}/weather — current weather per unique
// city in the itinerary. A failing city is reported inline; the batch
// never fails as a whole.
func GetItineraryWeather(ctx iris.Context) {
	itinerary, ok := ownedItinerary(ctx, false)
	if !ok {
		return
	}

	var items []models.ItineraryItem
	res := storage.DB.Preload("Destination").
		Where("itinerary_id = ?", itinerary.ID).
		Find(&items)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// Dedupe cities to avoid duplicate API calls.
	seen := map[string]bool{}
	var cities []string
	for _, item := range items {
		city := item.Destination.City
		if city != "" && !seen[city] {
			seen[city] = true
			cities = append(cities, city)
		}
	}

	if len(cities) == 0 {
		ctx.JSON(iris.Map{"message": "No destinations in this itinerary to fetch weather for."})
		return
	}

	weatherService := services.NewWeatherService()
	ctx.JSON(weatherService.GetWeatherForCities(cities))
}

// GET /api/planner/itineraries/{id}/route — driving route connecting the
// itinerary's destinations in trip order. Unlike weather, any upstream
// failure fails the request.
func GetItineraryRoute(ctx iris.Context) {
	itinerary, ok := ownedItinerary(ctx, false)
	if !ok {
		return
	}

	var items []models.ItineraryItem
	res := storage.DB.Preload("Destination").
		Where("itinerary_id = ?", itinerary.ID).
		Order(itemOrder).
		Find(&items)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if len(items) < 2 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"At least two destinations are required to calculate a route.", ctx)
		return
	}

	// ORS expects [lon, lat] pairs.
	coordinates := make([][]float64, 0, len(items))
	for _, item := range items {
		coordinates = append(coordinates, []float64{item.Destination.Longitude, item.Destination.Latitude})
	}

	routingService := services.NewRoutingService()
	route, err := routingService.GetRoute(coordinates)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Routing Error", err.Error(), ctx)
		return
	}

	ctx.JSON(route)
}
