package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
)

func TestItineraryOwnershipReadsAsMissing(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t)

	owner := createTestUser(t, db, "aisha")
	stranger := createTestUser(t, db, "bilal")
	itinerary := createTestItinerary(t, db, owner, "Hunza Trip")

	path := fmt.Sprintf("/api/planner/itineraries/%d", itinerary.ID)

	resp := doJSON(t, app, http.MethodGet, path, signTestToken(t, owner), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("owner read: expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}

	// A foreign itinerary must be indistinguishable from a missing one.
	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		var body interface{}
		if method == http.MethodPatch {
			body = map[string]string{"name": "Stolen"}
		}
		resp := doJSON(t, app, method, path, signTestToken(t, stranger), body)
		if resp.Code != http.StatusNotFound {
			t.Errorf("%s by stranger: expected 404, got %d", method, resp.Code)
		}
	}

	var count int64
	db.Model(&models.Itinerary{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected itinerary to survive foreign delete, count = %d", count)
	}
}

func TestItineraryListScopedToCaller(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestItinerary(t, db, alice, "Alice One")
	createTestItinerary(t, db, alice, "Alice Two")
	createTestItinerary(t, db, bob, "Bob One")

	resp := doJSON(t, app, http.MethodGet, "/api/planner/itineraries", signTestToken(t, alice), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var itineraries []models.Itinerary
	decodeBody(t, resp, &itineraries)
	if len(itineraries) != 2 {
		t.Fatalf("expected 2 itineraries for alice, got %d", len(itineraries))
	}
	for _, it := range itineraries {
		if it.UserID != alice.ID {
			t.Errorf("itinerary %d belongs to user %d, not alice", it.ID, it.UserID)
		}
	}
}

func TestItineraryItemOrdering(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t)

	user := createTestUser(t, db, "sana")
	itinerary := createTestItinerary(t, db, user, "Skardu Loop")
	destination := createTestDestination(t, db, "Shangrila Resort", models.DestinationTypeLandmark, 40)
	token := signTestToken(t, user)

	itemsPath := fmt.Sprintf("/api/planner/itineraries/%d/items", itinerary.ID)
	add := func(day int, start *string) {
		t.Helper()
		body := map[string]interface{}{
			"destinationID": destination.ID,
			"dayNumber":     day,
		}
		if start != nil {
			body["startTime"] = *start
		}
		resp := doJSON(t, app, http.MethodPost, itemsPath, token, body)
		if resp.Code != http.StatusCreated {
			t.Fatalf("create item day=%d: expected 201, got %d (%s)", day, resp.Code, resp.Body.String())
		}
	}

	at := func(s string) *string { return &s }

	// Inserted deliberately out of order.
	add(2, at("10:00"))
	add(1, nil) // no start time: sorts after timed items of its day
	add(1, at("14:00"))
	add(1, at("09:00"))
	add(2, nil)

	resp := doJSON(t, app, http.MethodGet, itemsPath, token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list items: expected 200, got %d", resp.Code)
	}

	var items []models.ItineraryItem
	decodeBody(t, resp, &items)
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}

	type slot struct {
		day   int
		start *string
	}
	expected := []slot{
		{1, at("09:00")},
		{1, at("14:00")},
		{1, nil},
		{2, at("10:00")},
		{2, nil},
	}
	for i, want := range expected {
		got := items[i]
		if got.DayNumber != want.day {
			t.Errorf("item %d: day = %d, want %d", i, got.DayNumber, want.day)
		}
		switch {
		case want.start == nil && got.StartTime != nil:
			t.Errorf("item %d: startTime = %q, want nil", i, *got.StartTime)
		case want.start != nil && (got.StartTime == nil || *got.StartTime != *want.start):
			t.Errorf("item %d: startTime = %v, want %q", i, got.StartTime, *want.start)
		}
	}
}

func TestItineraryItemUnknownDestination(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t)

	user := createTestUser(t, db, "omar")
	itinerary := createTestItinerary(t, db, user, "Day Trip")

	body := map[string]interface{}{"destinationID": 9999, "dayNumber": 1}
	path := fmt.Sprintf("/api/planner/itineraries/%d/items", itinerary.ID)
	resp := doJSON(t, app, http.MethodPost, path, signTestToken(t, user), body)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown destination, got %d", resp.Code)
	}
}

func TestDeleteItineraryItem(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t)

	user := createTestUser(t, db, "zara")
	itinerary := createTestItinerary(t, db, user, "Valley Tour")
	destination := createTestDestination(t, db, "Ratti Gali", models.DestinationTypeHikingTrail, 20)
	item := models.ItineraryItem{ItineraryID: itinerary.ID, DestinationID: destination.ID, DayNumber: 1}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}
	token := signTestToken(t, user)

	path := fmt.Sprintf("/api/planner/itineraries/%d/items/%d", itinerary.ID, item.ID)
	resp := doJSON(t, app, http.MethodDelete, path, token, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	// Idempotence is not promised: a second delete is a plain 404.
	resp = doJSON(t, app, http.MethodDelete, path, token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on re-delete, got %d", resp.Code)
	}
}
