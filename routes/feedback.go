package routes

import (
	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type CreateFeedbackInput struct {
	Subject string `json:"subject" validate:"required,lt=256"`
	Message string `json:"message" validate:"required"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

func CreateFeedback(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateFeedbackInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	userID := claims.ID
	feedback := models.Feedback{
		UserID:  &userID,
		Subject: input.Subject,
		Message: input.Message,
		Rating:  input.Rating,
		Status:  models.FeedbackStatusNew,
	}

	if err := storage.DB.Create(&feedback).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(feedback)
}

func GetMyFeedback(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var feedback []models.Feedback
	if err := storage.DB.
		Where("user_id = ?", claims.ID).
		Order("created_at desc").
		Find(&feedback).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(feedback)
}
