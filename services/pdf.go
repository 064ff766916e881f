package services

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/Hamzabinmaqsood/tourista-backend/models"
	"github.com/jung-kurt/gofpdf"
)

// GenerateItineraryPDF renders a trip plan as a printable PDF and returns
// the raw bytes (no filesystem needed).
func GenerateItineraryPDF(itinerary *models.Itinerary, ownerName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(16, 42, 67)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Tourista", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Trip Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// Trip summary
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(170, 8, itinerary.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(170, 6, fmt.Sprintf("Traveler: %s", ownerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(170, 6, fmt.Sprintf("Dates: %s to %s",
		itinerary.StartDate.Format("2006-01-02"),
		itinerary.EndDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Group items by day, preserving the (day, start time) order.
	items := make([]models.ItineraryItem, len(itinerary.Items))
	copy(items, itinerary.Items)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DayNumber != items[j].DayNumber {
			return items[i].DayNumber < items[j].DayNumber
		}
		// nil start times sort last
		if items[i].StartTime == nil {
			return false
		}
		if items[j].StartTime == nil {
			return true
		}
		return *items[i].StartTime < *items[j].StartTime
	})

	currentDay := 0
	for _, item := range items {
		if item.DayNumber != currentDay {
			currentDay = item.DayNumber
			pdf.Ln(2)
			pdf.SetFillColor(16, 42, 67)
			pdf.SetTextColor(255, 255, 255)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(170, 8, fmt.Sprintf("  Day %d", currentDay), "", 1, "L", true, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}

		timeLabel := "anytime"
		if item.StartTime != nil {
			timeLabel = *item.StartTime
			if item.EndTime != nil {
				timeLabel += " - " + *item.EndTime
			}
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 7, timeLabel, "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(85, 7, item.Destination.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%s, %s", item.Destination.City, item.Destination.Country), "B", 1, "L", false, 0, "")
	}

	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(170, 8, "No destinations scheduled yet.", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
