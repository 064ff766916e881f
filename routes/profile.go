package routes

import (
	"encoding/json"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/datatypes"
)

// GET /api/user/profile
func GetUserProfile(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var profile models.UserProfile
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(profile)
}

type UpdateProfileInput struct {
	TravelStyle        *string  `json:"travelStyle"`
	Budget             *float64 `json:"budget"`
	PreferredLanguages []string `json:"preferredLanguages"`
	AvatarURL          *string  `json:"avatarURL"`
}

// PATCH /api/user/profile
func UpdateUserProfile(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input UpdateProfileInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var profile models.UserProfile
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if input.TravelStyle != nil {
		if !models.ValidTravelStyle(*input.TravelStyle) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error",
				"travelStyle must be one of ADVENTURE, RELAXATION, CULTURAL, FAMILY, BUDGET", ctx)
			return
		}
		profile.TravelStyle = *input.TravelStyle
	}
	if input.Budget != nil {
		profile.Budget = input.Budget
	}
	if input.PreferredLanguages != nil {
		raw, err := json.Marshal(input.PreferredLanguages)
		if err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		profile.PreferredLanguages = datatypes.JSON(raw)
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}

	if err := storage.DB.Save(&profile).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(profile)
}

type UploadAvatarInput struct {
	Image string `json:"image" validate:"required"` // base64-encoded
}

// POST /api/user/profile/avatar
func UploadAvatar(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input UploadAvatarInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var profile models.UserProfile
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	result := storage.UploadBase64Image(input.Image, "avatars/"+uuid.NewString())
	if result["url"] == "" {
		utils.CreateError(iris.StatusBadGateway, "Upload Error", "Could not upload avatar image.", ctx)
		return
	}

	profile.AvatarURL = result["url"]
	if err := storage.DB.Save(&profile).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"avatarURL": profile.AvatarURL})
}
