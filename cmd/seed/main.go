package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/pavich5/AutoMK/catalog"
	"github.com/pavich5/AutoMK/data"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main validates the seed catalog and writes it out as JSON
// Usage: go run cmd/seed/main.go [-out cars.json]
// This is a standalone CLI tool, not part of the main application
func main() {
	out := flag.String("out", "", "write the seed catalog to this file instead of stdout")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("AUTOMK - Seed Catalog Exporter")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Load the seeds through the store so duplicate ids fail loudly
	store := catalog.NewStore()
	for _, car := range data.SeedCars() {
		if err := store.Add(car); err != nil {
			log.Fatalf("❌ Invalid seed data: %v", err)
		}
	}
	log.Printf("✓ %d seed listings validated", store.Len())

	payload, err := json.MarshalIndent(store.All(), "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to encode seed catalog: %v", err)
	}

	if *out == "" {
		fmt.Println(string(payload))
		return
	}

	if err := os.WriteFile(*out, payload, 0o644); err != nil {
		log.Fatalf("❌ Failed to write %s: %v", *out, err)
	}
	log.Printf("✓ Seed catalog written to %s", *out)
}
