package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type product struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ValidityDays int     `json:"validity_days"`
	MaxTrips     int     `json:"max_trips,omitempty"`
}

// generateSampleCatalog writes the default ticket catalogue to data/catalog.json.
// Run with: go run scripts/generate_sample_catalog.go
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := []product{
		{Name: "Standard Return", Price: 49.50, ValidityDays: 1, MaxTrips: 1},
		{Name: "Weekly Ticket", Price: 145.40, ValidityDays: 7},
		{Name: "Monthly Ticket", Price: 558.40, ValidityDays: 30},
		{Name: "Flex Ticket (8 Trips)", Price: 346.50, ValidityDays: 28, MaxTrips: 8},
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal catalogue: %v", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dataDir, "catalog.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	fmt.Printf("Wrote %d products to %s\n", len(products), path)
}
