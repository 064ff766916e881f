package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/Hamzabinmaqsood/tourista-backend/storage"
	"github.com/Hamzabinmaqsood/tourista-backend/utils"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database, migrates the schema and
// points the package-level handle at it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	storage.DB = db
	// Token issuance records refresh tokens; the write result is not
	// checked, so an unreachable client is fine here.
	if storage.Redis == nil {
		storage.Redis = redis.NewClient(&redis.Options{Addr: "localhost:63790"})
	}
	return db
}

// newTestApp wires the same route tree as main, minus CORS and compression.
func newTestApp(t *testing.T) *iris.Application {
	t.Helper()
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	os.Setenv("REFRESH_TOKEN_SECRET", "testrefreshsecret")

	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", Register)
		user.Post("/login", Login)
		user.Get("/profile", accessTokenVerifierMiddleware, GetUserProfile)
		user.Patch("/profile", accessTokenVerifierMiddleware, UpdateUserProfile)
	}

	vendors := app.Party("/api/vendors", accessTokenVerifierMiddleware)
	{
		vendors.Post("/register", RegisterVendor)
		vendors.Get("/me", GetMyVendor)
		vendors.Post("/services", CreateService)
		vendors.Get("/services", GetMyServices)
		vendors.Get("/services/{id:uint}", GetMyService)
		vendors.Patch("/services/{id:uint}", UpdateService)
		vendors.Delete("/services/{id:uint}", DeleteService)
		vendors.Get("/my-bookings", GetVendorBookings)
		vendors.Get("/my-bookings/{id:uint}", GetVendorBooking)
	}

	services := app.Party("/api/services")
	{
		services.Get("/", BrowseServices)
		services.Get("/{id:uint}", GetServiceDetails)
	}

	bookings := app.Party("/api/bookings", accessTokenVerifierMiddleware)
	{
		bookings.Post("/", CreateBooking)
		bookings.Get("/", GetMyBookings)
		bookings.Get("/{id:uint}", GetBooking)
	}

	planner := app.Party("/api/planner")
	{
		planner.Get("/destinations", GetDestinations)
		planner.Get("/destinations/near", GetNearbyDestinations)
		planner.Get("/events", GetCulturalEvents)
		planner.Get("/recommendations", accessTokenVerifierMiddleware, GetRecommendations)
		planner.Post("/itineraries", accessTokenVerifierMiddleware, CreateItinerary)
		planner.Get("/itineraries", accessTokenVerifierMiddleware, GetItineraries)
		planner.Get("/itineraries/{id:uint}", accessTokenVerifierMiddleware, GetItinerary)
		planner.Patch("/itineraries/{id:uint}", accessTokenVerifierMiddleware, UpdateItinerary)
		planner.Delete("/itineraries/{id:uint}", accessTokenVerifierMiddleware, DeleteItinerary)
		planner.Post("/itineraries/{id:uint}/items", accessTokenVerifierMiddleware, CreateItineraryItem)
		planner.Get("/itineraries/{id:uint}/items", accessTokenVerifierMiddleware, GetItineraryItems)
		planner.Delete("/itineraries/{id:uint}/items/{itemID:uint}", accessTokenVerifierMiddleware, DeleteItineraryItem)
	}

	conversations := app.Party("/api/conversations", accessTokenVerifierMiddleware)
	{
		conversations.Post("/", StartConversation)
		conversations.Get("/", GetConversations)
		conversations.Get("/{id:uint}", GetConversationByID)
		conversations.Post("/{id:uint}/messages", SendMessage)
		conversations.Post("/{id:uint}/read", MarkMessagesRead)
	}

	feedback := app.Party("/api/feedback", accessTokenVerifierMiddleware)
	{
		feedback.Post("/", CreateFeedback)
		feedback.Get("/", GetMyFeedback)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/vendors", AdminListVendors)
		admin.Get("/vendors/{id:uint}", AdminGetVendor)
		admin.Post("/vendors/{id:uint}/approve", AdminApproveVendor)
		admin.Get("/feedback", AdminListFeedback)
		admin.Patch("/feedback/{id:uint}/status", AdminUpdateFeedbackStatus)
		admin.Patch("/bookings/{id:uint}/status", AdminUpdateBookingStatus)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("build test app: %v", err)
	}
	return app
}

func signTestToken(t *testing.T, user models.User) string {
	t.Helper()
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), time.Hour)
	token, err := signer.Sign(utils.AccessToken{ID: user.ID, Role: user.Role})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return string(token)
}

// doJSON performs a request against the app, optionally authenticated,
// with a JSON-encoded body.
func doJSON(t *testing.T, app *iris.Application, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
}

// Fixtures.

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		Role:     "user",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	profile := models.UserProfile{UserID: user.ID, TravelStyle: models.TravelStyleRelaxation}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile for %s: %v", username, err)
	}
	return user
}

func createTestAdmin(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	admin := createTestUser(t, db, username)
	if err := db.Model(&admin).Update("role", "admin").Error; err != nil {
		t.Fatalf("promote admin: %v", err)
	}
	admin.Role = "admin"
	return admin
}

func createTestVendor(t *testing.T, db *gorm.DB, user models.User, verified bool) models.Vendor {
	t.Helper()
	vendor := models.Vendor{
		UserID:       user.ID,
		BusinessName: user.Username + " Tours",
		IsVerified:   verified,
	}
	if err := db.Create(&vendor).Error; err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	return vendor
}

func createTestService(t *testing.T, db *gorm.DB, vendor models.Vendor, price float64) models.Service {
	t.Helper()
	service := models.Service{
		VendorID:    vendor.ID,
		Name:        "City Tour",
		ServiceType: models.ServiceTypeGuide,
		Price:       price,
		PricePer:    "per person",
		City:        "Muzaffarabad",
		IsAvailable: true,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	return service
}

func createTestDestination(t *testing.T, db *gorm.DB, name, destinationType string, cost float64) models.Destination {
	t.Helper()
	destination := models.Destination{
		Name:            name,
		City:            "Skardu",
		DestinationType: destinationType,
		AverageCost:     cost,
		Latitude:        35.3,
		Longitude:       75.6,
	}
	if err := db.Create(&destination).Error; err != nil {
		t.Fatalf("create destination: %v", err)
	}
	return destination
}

func createTestItinerary(t *testing.T, db *gorm.DB, user models.User, name string) models.Itinerary {
	t.Helper()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	itinerary := models.Itinerary{
		UserID:    user.ID,
		Name:      name,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
	}
	if err := db.Create(&itinerary).Error; err != nil {
		t.Fatalf("create itinerary: %v", err)
	}
	return itinerary
}
