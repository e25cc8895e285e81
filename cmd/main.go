package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gogevgelija/gogevgelija-backend/config"
	"github.com/gogevgelija/gogevgelija-backend/database"
	"github.com/gogevgelija/gogevgelija-backend/internal/auditlog"
	"github.com/gogevgelija/gogevgelija-backend/internal/auth"
	"github.com/gogevgelija/gogevgelija-backend/internal/blog"
	"github.com/gogevgelija/gogevgelija-backend/internal/category"
	"github.com/gogevgelija/gogevgelija-backend/internal/event"
	"github.com/gogevgelija/gogevgelija-backend/internal/item"
	"github.com/gogevgelija/gogevgelija-backend/internal/listing"
	"github.com/gogevgelija/gogevgelija-backend/internal/promotion"
	"github.com/gogevgelija/gogevgelija-backend/internal/wishlist"
	"github.com/gogevgelija/gogevgelija-backend/routes"
	"github.com/gogevgelija/gogevgelija-backend/utils"
)

// @title GoGevgelija API
// @version 1.0
// @description Content backend for the GoGevgelija local guide app.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis
	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auditlog.AuditLog{},
		&auth.User{},
		&auth.Profile{},
		&category.Category{},
		&item.Item{},
		&listing.Listing{},
		&event.Event{},
		&event.EventJoin{},
		&promotion.Promotion{},
		&blog.Blog{},
		&wishlist.Wishlist{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(cfg),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	log.Printf("🚀 Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func corsOrigins(cfg *config.Config) []string {
	if cfg.CORSAllowedOrigins == "" {
		return []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
