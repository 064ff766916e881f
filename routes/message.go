package routes

import (
	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type SendMessageInput struct {
	Body string `json:"body" validate:"required,lt=5000"`
}

// POST /api/conversations/{id}/messages — append to an existing thread.
// A sender outside the thread gets a 403: the thread's existence is
// already known to its participants, this is purely a privilege failure.
func SendMessage(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid conversation id.", ctx)
		return
	}

	var conversation models.Conversation
	if err := storage.DB.First(&conversation, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if !conversation.IsParticipant(claims.ID) {
		utils.CreateForbidden(ctx, "You are not part of this conversation.")
		return
	}

	var input SendMessageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	message := models.Message{
		ConversationID: conversation.ID,
		SenderID:       claims.ID,
		Body:           input.Body,
	}
	if err := storage.DB.Create(&message).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	storage.DB.Model(&conversation).Update("updated_at", message.CreatedAt)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(message)
}

// POST /api/conversations/{id}/read — mark the other side's messages read.
func MarkMessagesRead(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	conversation, ok := participantConversation(ctx)
	if !ok {
		return
	}

	if err := storage.DB.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversation.ID, claims.ID, false).
		Update("is_read", true).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true})
}
