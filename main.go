// @title AutoMK Marketplace API
// @version 1.0
// @description AutoMK car marketplace backend API documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/routes/storefront_routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (rate limiting only; the limiter passes
	// everything through when redis is unavailable)
	config.ConnectRedis()

	// Seed the catalog and wire the session manager
	config.InitCatalog()
	config.InitSessions()

	// Evict idle sessions in the background
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			if evicted := config.Sessions.Sweep(time.Now()); evicted > 0 {
				log.Printf("🧹 Swept %d idle sessions", evicted)
			}
		}
	}()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	api.Use(
		middleware.RateLimiter(300, time.Minute),
		middleware.EnsureSession(config.Sessions),
	)

	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	addr := config.ServerAddr()
	log.Printf("🚀 Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
