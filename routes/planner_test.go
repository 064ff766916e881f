package routes

import (
	"net/http"
	"testing"
	"time"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
)

func TestRecommendationsFollowStyleAndBudget(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t)

	createTestDestination(t, db, "Lok Virsa Museum", models.DestinationTypeMuseum, 20)
	createTestDestination(t, db, "Baltit Fort", models.DestinationTypeLandmark, 30)
	createTestDestination(t, db, "Fairy Meadows Trek", models.DestinationTypeHikingTrail, 80)
	createTestDestination(t, db, "Royal Museum Wing", models.DestinationTypeMuseum, 900)

	user := createTestUser(t, db, "culture_fan")
	budget := 100.0
	if err := db.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{"travel_style": models.TravelStyleCultural, "budget": budget}).
		Error; err != nil {
		t.Fatalf("update profile: %v", err)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/planner/recommendations", signTestToken(t, user), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}

	var recommendations []models.Destination
	decodeBody(t, resp, &recommendations)
	if len(recommendations) != 2 {
		t.Fatalf("expected the two affordable cultural spots, got %d", len(recommendations))
	}
	for _, rec := range recommendations {
		if rec.DestinationType != models.DestinationTypeMuseum &&
			rec.DestinationType != models.DestinationTypeLandmark {
			t.Errorf("recommended %q of type %s, outside the cultural mapping", rec.Name, rec.DestinationType)
		}
		if rec.AverageCost > budget {
			t.Errorf("recommended %q costs %v, above the %v budget", rec.Name, rec.AverageCost, budget)
		}
	}
}

func TestRecommendationsEmptyIsNotFound(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t)

	// No destinations at all.
	user := createTestUser(t, db, "early_bird")
	resp := doJSON(t, app, http.MethodGet, "/api/planner/recommendations", signTestToken(t, user), nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for no matches, got %d", resp.Code)
	}

	var out map[string]interface{}
	decodeBody(t, resp, &out)
	if out["message"] == nil {
		t.Fatal("expected an explanatory message in the payload")
	}
}

func TestCulturalEventsFilters(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t)

	mk := func(name, city, category string, month time.Month) {
		t.Helper()
		event := models.CulturalEvent{
			Name:      name,
			City:      city,
			Category:  category,
			StartDate: time.Date(2026, month, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, month, 3, 0, 0, 0, 0, time.UTC),
		}
		if err := db.Create(&event).Error; err != nil {
			t.Fatalf("create event: %v", err)
		}
	}
	mk("Shandur Polo Festival", "Gilgit", models.EventCategoryFestival, time.July)
	mk("Autumn Blossom", "Hunza", models.EventCategoryFestival, time.October)
	mk("Folk Music Night", "Gilgit", models.EventCategoryConcert, time.March)

	resp := doJSON(t, app, http.MethodGet, "/api/planner/events?city=Gilgit", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var events []models.CulturalEvent
	decodeBody(t, resp, &events)
	if len(events) != 2 {
		t.Fatalf("city filter: expected 2 events, got %d", len(events))
	}
	// Ordered by start date.
	if events[0].Name != "Folk Music Night" {
		t.Errorf("first event = %q, want the March one", events[0].Name)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/planner/events?city=Gilgit&category=CONCERT", "", nil)
	decodeBody(t, resp, &events)
	if len(events) != 1 || events[0].Name != "Folk Music Night" {
		t.Fatalf("combined filter: got %v", events)
	}
}

func TestNearbyDestinations(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t)

	near := models.Destination{Name: "Close By", City: "Skardu", DestinationType: models.DestinationTypePark,
		Latitude: 35.30, Longitude: 75.60}
	far := models.Destination{Name: "Far Away", City: "Karachi", DestinationType: models.DestinationTypeBeach,
		Latitude: 24.86, Longitude: 67.00}
	for _, d := range []*models.Destination{&near, &far} {
		if err := db.Create(d).Error; err != nil {
			t.Fatalf("create destination: %v", err)
		}
	}

	resp := doJSON(t, app, http.MethodGet, "/api/planner/destinations/near?lat=35.29&lon=75.63&radius=50", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}

	var out struct {
		Results []struct {
			Destination models.Destination `json:"destination"`
			DistanceKm  float64            `json:"distanceKm"`
		} `json:"results"`
	}
	decodeBody(t, resp, &out)
	if len(out.Results) != 1 || out.Results[0].Destination.Name != "Close By" {
		t.Fatalf("expected only the nearby destination, got %+v", out.Results)
	}
	if out.Results[0].DistanceKm <= 0 || out.Results[0].DistanceKm > 50 {
		t.Fatalf("unexpected distance: %v", out.Results[0].DistanceKm)
	}

	// Missing coordinates are a client error.
	resp = doJSON(t, app, http.MethodGet, "/api/planner/destinations/near", "", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without lat/lon, got %d", resp.Code)
	}
}
