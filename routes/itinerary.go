package routes

import (
	"fmt"
	"time"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/services"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"
)

// Items inside an itinerary are always produced in trip order.
const itemOrder = "day_number asc, start_time asc NULLS LAST"

type CreateItineraryInput struct {
	Name      string    `json:"name" validate:"required,max=255"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

// POST /api/planner/itineraries
func CreateItinerary(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateItineraryInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	itinerary := models.Itinerary{
		UserID:    claims.ID,
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := storage.DB.Create(&itinerary).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(itinerary)
}

// GET /api/planner/itineraries — the caller's itineraries only.
func GetItineraries(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var itineraries []models.Itinerary
	res := storage.DB.Where("user_id = ?", claims.ID).Order("created_at DESC").Find(&itineraries)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(itineraries)
}

// ownedItinerary resolves an itinerary id against the caller. An itinerary
// owned by someone else is reported exactly like a missing one, so ids
// cannot be probed.
func ownedItinerary(ctx iris.Context, preloadItems bool) (*models.Itinerary, bool) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid itinerary id.", ctx)
		return nil, false
	}

	query := storage.DB.Where("id = ? AND user_id = ?", id, claims.ID)
	if preloadItems {
		query = query.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order(itemOrder)
		}).Preload("Items.Destination")
	}

	var itinerary models.Itinerary
	if err := query.First(&itinerary).Error; err != nil {
		utils.CreateNotFound(ctx)
		return nil, false
	}
	return &itinerary, true
}

// GET /api/planner/itineraries/{id} — detail view, items included.
func GetItinerary(ctx iris.Context) {
	itinerary, ok := ownedItinerary(ctx, true)
	if !ok {
		return
	}
	ctx.JSON(itinerary)
}

type UpdateItineraryInput struct {
	Name      *string    `json:"name"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// PATCH /api/planner/itineraries/{id}
func UpdateItinerary(ctx iris.Context) {
	itinerary, ok := ownedItinerary(ctx, false)
	if !ok {
		return
	}

	var input UpdateItineraryInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Name != nil {
		itinerary.Name = *input.Name
	}
	if input.StartDate != nil {
		itinerary.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		itinerary.EndDate = *input.EndDate
	}

	if err := storage.DB.Save(itinerary).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(itinerary)
}

// DELETE /api/planner/itineraries/{id} — cascades to items.
func DeleteItinerary(ctx iris.Context) {
	itinerary, ok := ownedItinerary(ctx, false)
	if !ok {
		return
	}

	if err := storage.DB.Select("Items").Delete(itinerary).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

type CreateItineraryItemInput struct {
	DestinationID uint    `json:"destinationID" validate:"required"`
	DayNumber     int     `json:"dayNumber" validate:"required,gte=1"`
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"`
}

// POST /api/planner/itineraries/{id}/items
func CreateItineraryItem(ctx iris.Context) {
	itinerary, ok := ownedItinerary(ctx, false)
	if !ok {
		return
	}

	var input CreateItineraryItemInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var destination models.Destination
	if err := storage.DB.First(&destination, input.DestinationID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Destination not found.", ctx)
		return
	}

	item := models.ItineraryItem{
		ItineraryID:   itinerary.ID,
		DestinationID: destination.ID,
		DayNumber:     input.DayNumber,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
	}
	if err := storage.DB.Create(&item).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	item.Destination = destination
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(item)
}

// GET /api/planner/itineraries/{id}/items — (day, start time) order,
// missing start times last within their day.
func GetItineraryItems(ctx iris.Context) {
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

	ctx.JSON(items)
}

// DELETE /api/planner/itineraries/{id}/items/{itemID}
func DeleteItineraryItem(ctx iris.Context) {
	itinerary, ok := ownedItinerary(ctx, false)
	if !ok {
		return
	}

	itemID, err := ctx.Params().GetUint("itemID")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid item id.", ctx)
		return
	}

	res := storage.DB.Where("id = ? AND itinerary_id = ?", itemID, itinerary.ID).Delete(&models.ItineraryItem{})
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

// GET /api/planner/itineraries/{id}/export — printable PDF of the trip.
func ExportItineraryPDF(ctx iris.Context) {
	itinerary, ok := ownedItinerary(ctx, true)
	if !ok {
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)
	var owner models.User
	ownerName := "Traveler"
	if err := storage.DB.First(&owner, claims.ID).Error; err == nil {
		ownerName = owner.Username
	}

	pdfBytes, err := services.GenerateItineraryPDF(itinerary, ownerName)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=itinerary-%d.pdf", itinerary.ID))
	ctx.ContentType("application/pdf")
	ctx.Write(pdfBytes)
}
