package routes

import (
	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type RegisterVendorInput struct {
	BusinessName        string `json:"businessName" validate:"required,max=255"`
	ContactPhone        string `json:"contactPhone" validate:"required,max=20"`
	BusinessDescription string `json:"businessDescription"`
}

// POST /api/vendors/register — apply to become a vendor. One application
// per account; verification is left to an administrator.
func RegisterVendor(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input RegisterVendorInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existing models.Vendor
	res := storage.DB.Where("user_id = ?", claims.ID).Limit(1).Find(&existing)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected > 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"You have already submitted a vendor application.", ctx)
		return
	}

	vendor := models.Vendor{
		UserID:              claims.ID,
		BusinessName:        input.BusinessName,
		ContactPhone:        input.ContactPhone,
		BusinessDescription: input.BusinessDescription,
		IsVerified:          false,
	}
	if err := storage.DB.Create(&vendor).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(vendor)
}

// GET /api/vendors/me
func GetMyVendor(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var vendor models.Vendor
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&vendor).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(vendor)
}

// getVerifiedVendor loads the caller's vendor profile and enforces the
// verified gate. Unlike ownership checks this failure is a 403, not a 404:
// the account is known, the privilege is missing.
func getVerifiedVendor(ctx iris.Context) (*models.Vendor, bool) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var vendor models.Vendor
	res := storage.DB.Where("user_id = ?", claims.ID).Limit(1).Find(&vendor)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return nil, false
	}
	if res.RowsAffected == 0 {
		utils.CreateForbidden(ctx, "You do not have a vendor account. Please apply to become a vendor first.")
		return nil, false
	}
	if !vendor.IsVerified {
		utils.CreateForbidden(ctx, "Your vendor account is not verified yet. Please wait for admin approval.")
		return nil, false
	}
	return &vendor, true
}
