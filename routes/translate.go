package routes

import (
	"github.com/Hamzabinmaqsood/tourista-backend/services"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
)

type TranslateInput struct {
	Text           string `json:"text" validate:"required"`
	TargetLanguage string `json:"target_language" validate:"required"`
}

// POST /api/utils/translate
func TranslateText(ctx iris.Context) {
	var input TranslateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !services.ValidLanguageCode(input.TargetLanguage) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"Invalid target_language code.", ctx)
		return
	}

	translationService := services.NewTranslationService()
	translation, err := translationService.Translate(input.Text, input.TargetLanguage)
	if err != nil {
		utils.CreateError(iris.StatusBadGateway, "Translation Error", err.Error(), ctx)
		return
	}

	ctx.JSON(translation)
}
