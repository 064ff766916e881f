package routes

import (
	"errors"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"
)

type StartConversationInput struct {
	ServiceID uint   `json:"service_id" validate:"required"`
	Body      string `json:"body" validate:"required"`
}

// POST /api/conversations — start or continue a thread about a service.
// 201 when the thread is new, 200 when it already existed; the payload is
// the same either way.
func StartConversation(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input StartConversationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var service models.Service
	if err := storage.DB.Preload("Vendor").First(&service, input.ServiceID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Service not found.", ctx)
		return
	}

	if service.Vendor.UserID == claims.ID {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"You cannot start a conversation about your own service.", ctx)
		return
	}

	conversation, created, err := getOrCreateConversation(service.ID, claims.ID, service.Vendor.UserID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
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
	// Bump the thread so conversation lists sort by recent activity.
	storage.DB.Model(conversation).Update("updated_at", message.CreatedAt)

	var out models.Conversation
	storage.DB.Preload("Service").Preload("Tourist").Preload("Vendor").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).Preload("Messages.Sender").
		First(&out, conversation.ID)

	if created {
		ctx.StatusCode(iris.StatusCreated)
	}
	ctx.JSON(iris.Map{"created": created, "conversation": out})
}

// getOrCreateConversation resolves the unique (service, tourist, vendor)
// triple. A losing concurrent insert trips the unique index and falls back
// to the winner's row, so two first-contact requests can never yield two
// threads.
func getOrCreateConversation(serviceID, touristID, vendorID uint) (*models.Conversation, bool, error) {
	lookup := func() (*models.Conversation, error) {
		var c models.Conversation
		err := storage.DB.Where("service_id = ? AND tourist_id = ? AND vendor_id = ?",
			serviceID, touristID, vendorID).First(&c).Error
		if err != nil {
			return nil, err
		}
		return &c, nil
	}

	if c, err := lookup(); err == nil {
		return c, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	c := models.Conversation{
		ServiceID: serviceID,
		TouristID: touristID,
		VendorID:  vendorID,
	}
	if err := storage.DB.Create(&c).Error; err != nil {
		// Unique index violation: someone else created it first.
		if existing, lookupErr := lookup(); lookupErr == nil {
			return existing, false, nil
		}
		return nil, false, err
	}
	return &c, true, nil
}

// GET /api/conversations — threads the caller participates in, most
// recently active first.
func GetConversations(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var conversations []models.Conversation
	res := storage.DB.
		Where("tourist_id = ? OR vendor_id = ?", claims.ID, claims.ID).
		Preload("Service").Preload("Tourist").Preload("Vendor").
		Order("updated_at DESC").
		Find(&conversations)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// Attach a last-message preview per thread.
	out := make([]iris.Map, 0, len(conversations))
	for i := range conversations {
		var last models.Message
		lastBody := ""
		if err := storage.DB.Where("conversation_id = ?", conversations[i].ID).
			Order("created_at DESC").First(&last).Error; err == nil {
			lastBody = last.Body
		}
		out = append(out, iris.Map{
			"conversation": conversations[i],
			"lastMessage":  lastBody,
		})
	}

	ctx.JSON(out)
}

// participantConversation resolves a conversation id against the caller.
// Non-participants get the same 404 a missing id would.
func participantConversation(ctx iris.Context) (*models.Conversation, bool) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid conversation id.", ctx)
		return nil, false
	}

	var conversation models.Conversation
	if err := storage.DB.
		Where("id = ? AND (tourist_id = ? OR vendor_id = ?)", id, claims.ID, claims.ID).
		Preload("Service").Preload("Tourist").Preload("Vendor").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).Preload("Messages.Sender").
		First(&conversation).Error; err != nil {
		utils.CreateNotFound(ctx)
		return nil, false
	}
	return &conversation, true
}

// GET /api/conversations/{id}
func GetConversationByID(ctx iris.Context) {
	conversation, ok := participantConversation(ctx)
	if !ok {
		return
	}
	ctx.JSON(conversation)
}
