// @title Wincellar Storefront API
// @version 1.0
// @description Faceted product search and filtering backend for the wine cellar storefront
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/middleware"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/routes/cms_routes"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/routes/ecommerce_routes"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection
	config.ConnectRedis()

	// ✅ Initialize JWT Service for the admin cache endpoints
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Admin routes (cache invalidation for catalog edit flows)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupCacheRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Public storefront
	ecommerce_routes.SetupStorefrontRoutes(api)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
