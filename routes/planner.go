package routes

import (
	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/services"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// GET /api/planner/destinations — reference data, no ownership.
func GetDestinations(ctx iris.Context) {
	var destinations []models.Destination
	if err := storage.DB.Order("name asc").Find(&destinations).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(destinations)
}

// GET /api/planner/destinations/near?lat=..&lon=..&radius=..
func GetNearbyDestinations(ctx iris.Context) {
	lat, latErr := ctx.URLParamFloat64("lat")
	lon, lonErr := ctx.URLParamFloat64("lon")
	if latErr != nil || lonErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "lat and lon query params are required.", ctx)
		return
	}
	radius := ctx.URLParamFloat64Default("radius", 100)

	var destinations []models.Destination
	if err := storage.DB.Find(&destinations).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	nearby := services.NearestDestinations(destinations, lat, lon, radius, 20)
	ctx.JSON(iris.Map{"results": nearby})
}

// GET /api/planner/events?city=..&category=.. — cultural events by start
// date, optionally filtered.
func GetCulturalEvents(ctx iris.Context) {
	query := storage.DB.Order("start_date asc")
	if city := ctx.URLParam("city"); city != "" {
		query = query.Where("city = ?", city)
	}
	if category := ctx.URLParam("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var events []models.CulturalEvent
	if err := query.Find(&events).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(events)
}

// GET /api/planner/recommendations — destination suggestions from the
// caller's travel style and budget.
func GetRecommendations(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var profile models.UserProfile
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	recommendations, err := services.GetRecommendations(&profile)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if len(recommendations) == 0 {
		ctx.StatusCode(iris.StatusNotFound)
		ctx.JSON(iris.Map{
			"message": "Could not find recommendations matching your profile. Try adjusting your travel style or budget.",
		})
		return
	}

	ctx.JSON(recommendations)
}
