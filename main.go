package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Hamzabinmaqsood/tourista-backend/routes"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	// Initialize services
	storage.InitializeDB()
	storage.InitializeS3()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	// Minimal middleware - compression only
	app.Use(iris.Compression)

	// JWT Verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	// Health check endpoint - CRITICAL for Render
	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	// Routes
	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Post("/logout", refreshTokenVerifierMiddleware, utils.Logout)
		user.Get("/profile", accessTokenVerifierMiddleware, routes.GetUserProfile)
		user.Patch("/profile", accessTokenVerifierMiddleware, routes.UpdateUserProfile)
		user.Post("/profile/avatar", accessTokenVerifierMiddleware, routes.UploadAvatar)
	}

	vendors := app.Party("/api/vendors", accessTokenVerifierMiddleware)
	{
		vendors.Post("/register", routes.RegisterVendor)
		vendors.Get("/me", routes.GetMyVendor)
		vendors.Post("/services", routes.CreateService)
		vendors.Get("/services", routes.GetMyServices)
		vendors.Get("/services/{id:uint}", routes.GetMyService)
		vendors.Patch("/services/{id:uint}", routes.UpdateService)
		vendors.Delete("/services/{id:uint}", routes.DeleteService)
		vendors.Get("/my-bookings", routes.GetVendorBookings)
		vendors.Get("/my-bookings/{id:uint}", routes.GetVendorBooking)
	}

	services := app.Party("/api/services")
	{
		services.Get("/", routes.BrowseServices)
		services.Get("/{id:uint}", routes.GetServiceDetails)
	}

	bookings := app.Party("/api/bookings", accessTokenVerifierMiddleware)
	{
		bookings.Post("/", routes.CreateBooking)
		bookings.Get("/", routes.GetMyBookings)
		bookings.Get("/{id:uint}", routes.GetBooking)
	}

	planner := app.Party("/api/planner")
	{
		planner.Get("/destinations", routes.GetDestinations)
		planner.Get("/destinations/near", routes.GetNearbyDestinations)
		planner.Get("/events", routes.GetCulturalEvents)
		planner.Get("/recommendations", accessTokenVerifierMiddleware, routes.GetRecommendations)

		planner.Post("/itineraries", accessTokenVerifierMiddleware, routes.CreateItinerary)
		planner.Get("/itineraries", accessTokenVerifierMiddleware, routes.GetItineraries)
		planner.Get("/itineraries/{id:uint}", accessTokenVerifierMiddleware, routes.GetItinerary)
		planner.Patch("/itineraries/{id:uint}", accessTokenVerifierMiddleware, routes.UpdateItinerary)
		planner.Delete("/itineraries/{id:uint}", accessTokenVerifierMiddleware, routes.DeleteItinerary)
		planner.Post("/itineraries/{id:uint}/items", accessTokenVerifierMiddleware, routes.CreateItineraryItem)
		planner.Get("/itineraries/{id:uint}/items", accessTokenVerifierMiddleware, routes.GetItineraryItems)
		planner.Delete("/itineraries/{id:uint}/items/{itemID:uint}", accessTokenVerifierMiddleware, routes.DeleteItineraryItem)
		planner.Get("/itineraries/{id:uint}/export", accessTokenVerifierMiddleware, routes.ExportItineraryPDF)
		planner.Get("/itineraries/{id:uint}/weather", accessTokenVerifierMiddleware, routes.GetItineraryWeather)
		planner.Get("/itineraries/{id:uint}/route", accessTokenVerifierMiddleware, routes.GetItineraryRoute)
	}

	conversations := app.Party("/api/conversations", accessTokenVerifierMiddleware)
	{
		conversations.Post("/", routes.StartConversation)
		conversations.Get("/", routes.GetConversations)
		conversations.Get("/{id:uint}", routes.GetConversationByID)
		conversations.Post("/{id:uint}/messages", routes.SendMessage)
		conversations.Post("/{id:uint}/read", routes.MarkMessagesRead)
	}

	feedback := app.Party("/api/feedback", accessTokenVerifierMiddleware)
	{
		feedback.Post("/", routes.CreateFeedback)
		feedback.Get("/", routes.GetMyFeedback)
	}

	utilities := app.Party("/api/utils")
	{
		utilities.Post("/translate", accessTokenVerifierMiddleware, routes.TranslateText)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/vendors", routes.AdminListVendors)
		admin.Get("/vendors/{id:uint}", routes.AdminGetVendor)
		admin.Post("/vendors/{id:uint}/approve", routes.AdminApproveVendor)
		admin.Get("/feedback", routes.AdminListFeedback)
		admin.Patch("/feedback/{id:uint}/status", routes.AdminUpdateFeedbackStatus)
		admin.Patch("/bookings/{id:uint}/status", routes.AdminUpdateBookingStatus)
		admin.Get("/activity", routes.AdminListAuditLogs)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000" // fallback for local dev
	}
	addr := ":" + port

	fmt.Println("Starting server on", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
