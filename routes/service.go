package routes

import (
	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/kataras/iris/v12"
)

type CreateServiceInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	ServiceType string  `json:"serviceType" validate:"required,oneof=HOTEL GUIDE TRANSPORT"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	PricePer    string  `json:"pricePer"`
	City        string  `json:"city" validate:"required,max=100"`
	IsAvailable *bool   `json:"isAvailable"`
}

// POST /api/vendors/services — verified vendors only.
func CreateService(ctx iris.Context) {
	vendor, ok := getVerifiedVendor(ctx)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	service := models.Service{
		VendorID:    vendor.ID,
		Name:        input.Name,
		Description: input.Description,
		ServiceType: input.ServiceType,
		Price:       input.Price,
		PricePer:    input.PricePer,
		City:        input.City,
		IsAvailable: true,
	}
	if service.PricePer == "" {
		service.PricePer = "per person"
	}
	if input.IsAvailable != nil {
		service.IsAvailable = *input.IsAvailable
	}

	if err := storage.DB.Create(&service).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(service)
}

// GET /api/vendors/services — the caller's own services.
func GetMyServices(ctx iris.Context) {
	vendor, ok := getVerifiedVendor(ctx)
	if !ok {
		return
	}

	var services []models.Service
	if err := storage.DB.Where("vendor_id = ?", vendor.ID).Order("created_at DESC").Find(&services).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(services)
}

// ownedService resolves a service id against the vendor. Another vendor's
// service is indistinguishable from a missing one.
func ownedService(ctx iris.Context, vendor *models.Vendor) (*models.Service, bool) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid service id.", ctx)
		return nil, false
	}

	var service models.Service
	if err := storage.DB.Where("id = ? AND vendor_id = ?", id, vendor.ID).First(&service).Error; err != nil {
		utils.CreateNotFound(ctx)
		return nil, false
	}
	return &service, true
}

// GET /api/vendors/services/{id}
func GetMyService(ctx iris.Context) {
	vendor, ok := getVerifiedVendor(ctx)
	if !ok {
		return
	}
	service, ok := ownedService(ctx, vendor)
	if !ok {
		return
	}
	ctx.JSON(service)
}

type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	ServiceType *string  `json:"serviceType"`
	Price       *float64 `json:"price"`
	PricePer    *string  `json:"pricePer"`
	City        *string  `json:"city"`
	IsAvailable *bool    `json:"isAvailable"`
}

// PATCH /api/vendors/services/{id}
func UpdateService(ctx iris.Context) {
	vendor, ok := getVerifiedVendor(ctx)
	if !ok {
		return
	}
	service, ok := ownedService(ctx, vendor)
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.ServiceType != nil {
		if !models.ValidServiceType(*input.ServiceType) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error",
				"serviceType must be one of HOTEL, GUIDE, TRANSPORT", ctx)
			return
		}
		service.ServiceType = *input.ServiceType
	}
	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.PricePer != nil {
		service.PricePer = *input.PricePer
	}
	if input.City != nil {
		service.City = *input.City
	}
	if input.IsAvailable != nil {
		service.IsAvailable = *input.IsAvailable
	}

	if err := storage.DB.Save(service).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(service)
}

// DELETE /api/vendors/services/{id}
func DeleteService(ctx iris.Context) {
	vendor, ok := getVerifiedVendor(ctx)
	if !ok {
		return
	}
	service, ok := ownedService(ctx, vendor)
	if !ok {
		return
	}

	if err := storage.DB.Select("Bookings").Delete(service).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

// GET /api/services — public catalog of services offered by verified
// vendors, filterable by city and type.
func BrowseServices(ctx iris.Context) {
	query := storage.DB.
		Joins("JOIN vendors ON vendors.id = services.vendor_id").
		Where("vendors.is_verified = ? AND services.is_available = ?", true, true).
		Preload("Vendor")

	if city := ctx.URLParam("city"); city != "" {
		query = query.Where("services.city = ?", city)
	}
	if serviceType := ctx.URLParam("type"); serviceType != "" {
		if !models.ValidServiceType(serviceType) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown service type.", ctx)
			return
		}
		query = query.Where("services.service_type = ?", serviceType)
	}

	var services []models.Service
	if err := query.Order("services.created_at desc").Find(&services).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(services)
}

// GET /api/services/{id}
func GetServiceDetails(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid service id.", ctx)
		return
	}

	var service models.Service
	if err := storage.DB.
		Joins("JOIN vendors ON vendors.id = services.vendor_id").
		Where("services.id = ? AND vendors.is_verified = ?", id, true).
		Preload("Vendor").
		First(&service).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(service)
}
