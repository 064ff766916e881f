package routes

import (
	"time"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type CreateBookingInput struct {
	ServiceID        uint       `json:"serviceID" validate:"required"`
	ServiceStartDate time.Time  `json:"serviceStartDate" validate:"required"`
	ServiceEndDate   *time.Time `json:"serviceEndDate"`
}

// POST /api/bookings — book a service. The total price is snapshotted from
// the service's current price; later price changes never touch existing
// bookings.
func CreateBooking(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var service models.Service
	if err := storage.DB.Preload("Vendor").First(&service, input.ServiceID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Service not found.", ctx)
		return
	}

	booking := models.Booking{
		UserID:           claims.ID,
		ServiceID:        service.ID,
		ServiceStartDate: input.ServiceStartDate,
		ServiceEndDate:   input.ServiceEndDate,
		Status:           models.BookingStatusPending,
		TotalPrice:       service.Price, // flat snapshot, no date-based pricing
	}
	if err := storage.DB.Create(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	booking.Service = service
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(booking)
}

// GET /api/bookings — the caller's own bookings, newest first.
func GetMyBookings(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var bookings []models.Booking
	res := storage.DB.Preload("Service").Preload("Service.Vendor").
		Where("user_id = ?", claims.ID).
		Order("created_at DESC").
		Find(&bookings)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}

// GET /api/bookings/{id} — owner only; anyone else's booking reads as
// missing.
func GetBooking(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid booking id.", ctx)
		return
	}

	var booking models.Booking
	if err := storage.DB.Preload("Service").Preload("Service.Vendor").
		Where("id = ? AND user_id = ?", id, claims.ID).
		First(&booking).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(booking)
}

// GET /api/vendors/my-bookings — bookings for the verified vendor's
// services.
func GetVendorBookings(ctx iris.Context) {
	vendor, ok := getVerifiedVendor(ctx)
	if !ok {
		return
	}

	var bookings []models.Booking
	res := storage.DB.
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("services.vendor_id = ?", vendor.ID).
		Preload("Service").
		Preload("User").
		Order("bookings.created_at DESC").
		Find(&bookings)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}

// GET /api/vendors/my-bookings/{id}
func GetVendorBooking(ctx iris.Context) {
	vendor, ok := getVerifiedVendor(ctx)
	if !ok {
		return
	}

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid booking id.", ctx)
		return
	}

	var booking models.Booking
	res := storage.DB.
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("bookings.id = ? AND services.vendor_id = ?", id, vendor.ID).
		Preload("Service").
		Preload("User").
		First(&booking)
	if res.Error != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(booking)
}
