package config

import (
	"log"

	"github.com/pavich5/AutoMK/catalog"
	"github.com/pavich5/AutoMK/data"
	"github.com/pavich5/AutoMK/sessions"
)

// Catalog is the shared listing store. Sessions owns every live
// browser session. Both are wired once at startup.
var (
	Catalog  *catalog.Store
	Sessions *sessions.Manager
)

// InitCatalog creates the store and loads the seed listings. The seeds
// arrive oldest-first, so prepending them lands the newest listing at
// the front of the catalog.
func InitCatalog() {
	Catalog = catalog.NewStore()

	for _, car := range data.SeedCars() {
		if err := Catalog.Add(car); err != nil {
			log.Fatalf("❌ Failed to seed catalog: %v", err)
		}
	}
	log.Printf("✅ Catalog seeded with %d listings", Catalog.Len())
}

// InitSessions wires the session manager with the configured idle TTL.
func InitSessions() {
	Sessions = sessions.NewManager(SessionTTL())
	log.Println("✅ Session manager initialized")
}
