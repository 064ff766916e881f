package main

import (
	"fmt"

	"github.com/Hamzabinmaqsood/tourista-backend/storage"
)

// Seeds the destination and cultural-event reference tables. InitializeDB
// already does this on startup; this command exists for re-seeding a fresh
// database without booting the server.
func main() {
	db := storage.InitializeDB()
	storage.SeedReferenceData(db)
	fmt.Println("Reference data seeding completed successfully!")
}
