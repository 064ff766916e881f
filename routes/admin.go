package routes

import (
	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
)

// Admin handlers run behind utils.AdminOnlyMiddleware, so the role
// check already happened by the time any of these execute.

func AdminListVendors(ctx iris.Context) {
	var vendors []models.Vendor
	if err := storage.DB.
		Preload("User").
		Order("is_verified asc, created_at desc").
		Find(&vendors).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(vendors)
}

func AdminGetVendor(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid vendor id.", ctx)
		return
	}

	var vendor models.Vendor
	if err := storage.DB.Preload("User").Preload("Services").First(&vendor, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	ctx.JSON(vendor)
}

func AdminApproveVendor(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid vendor id.", ctx)
		return
	}

	var vendor models.Vendor
	if err := storage.DB.First(&vendor, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if vendor.IsVerified {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Vendor is already verified.", ctx)
		return
	}

	before := vendor
	vendor.IsVerified = true
	if err := storage.DB.Save(&vendor).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "vendor.approve", "vendor", vendor.ID, before, vendor)

	ctx.JSON(vendor)
}

func AdminListFeedback(ctx iris.Context) {
	query := storage.DB.Preload("User").Order("created_at desc")
	if status := ctx.URLParam("status"); status != "" {
		if !models.ValidFeedbackStatus(status) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown feedback status.", ctx)
			return
		}
		query = query.Where("status = ?", status)
	}

	var feedback []models.Feedback
	if err := query.Find(&feedback).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(feedback)
}

type UpdateFeedbackStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// Admins move feedback through its lifecycle; the submitted text itself
// is never editable, by anyone.
func AdminUpdateFeedbackStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid feedback id.", ctx)
		return
	}

	var input UpdateFeedbackStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	if !models.ValidFeedbackStatus(input.Status) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown feedback status.", ctx)
		return
	}

	var feedback models.Feedback
	if err := storage.DB.First(&feedback, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	before := feedback
	feedback.Status = input.Status
	if err := storage.DB.Save(&feedback).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "feedback.status", "feedback", feedback.ID, before, feedback)

	ctx.JSON(feedback)
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" validate:"required"`
}

func AdminUpdateBookingStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid booking id.", ctx)
		return
	}

	var input UpdateBookingStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	if !models.ValidBookingStatus(input.Status) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown booking status.", ctx)
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	before := booking
	booking.Status = input.Status
	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "booking.status", "booking", booking.ID, before, booking)

	ctx.JSON(booking)
}

func AdminListAuditLogs(ctx iris.Context) {
	var logs []models.AuditLog
	if err := storage.DB.Order("created_at desc").Limit(200).Find(&logs).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(logs)
}
