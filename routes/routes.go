package routes

import (
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
	"github.com/gogevgelija/gogevgelija-backend/middleware"

	_ "github.com/gogevgelija/gogevgelija-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, auditSvc, cfg)
	authHandler := auth.NewHandler(authSvc)

	api := r.Group("/api")
	api.Use(middleware.Audit())
	api.Use(middleware.RateLimiter())
	api.Use(middleware.OptionalAuth(cfg, authSvc))
	api.Use(middleware.Language(cfg))

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)

		me := authGroup.Group("/me")
		me.Use(middleware.RequireAuth())
		{
			me.GET("", authHandler.Me)
			me.PUT("", authHandler.UpdateMe)
			me.PATCH("", authHandler.UpdateMe)
		}
	}

	// ========== Categories ==========
	categoryRepo := category.NewRepository(database.DB)
	categorySvc := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categorySvc)

	categoryRoutes := api.Group("/categories")
	{
		categoryRoutes.GET("", categoryHandler.List)
		categoryRoutes.GET("/:id", categoryHandler.Get)
		categoryRoutes.POST("", categoryHandler.Create)
		categoryRoutes.PUT("/:id", categoryHandler.Update)
		categoryRoutes.PATCH("/:id", categoryHandler.Update)
		categoryRoutes.DELETE("/:id", categoryHandler.Delete)
	}

	// ========== Items ==========
	itemRepo := item.NewRepository(database.DB)
	itemSvc := item.NewService(itemRepo)
	itemHandler := item.NewHandler(itemSvc)

	itemRoutes := api.Group("/items")
	{
		itemRoutes.GET("", itemHandler.List)
		itemRoutes.GET("/:id", itemHandler.Get)
		itemRoutes.POST("", itemHandler.Create)
		itemRoutes.PUT("/:id", itemHandler.Update)
		itemRoutes.PATCH("/:id", itemHandler.Update)
		itemRoutes.DELETE("/:id", itemHandler.Delete)
	}

	// ========== Listings ==========
	listingRepo := listing.NewRepository(database.DB)
	listingSvc := listing.NewService(listingRepo)
	listingHandler := listing.NewHandler(listingSvc)

	listingRoutes := api.Group("/listings")
	{
		listingRoutes.GET("", listingHandler.List)
		listingRoutes.GET("/featured", listingHandler.Featured)
		listingRoutes.GET("/:id", listingHandler.Get)
		listingRoutes.POST("", listingHandler.Create)
		listingRoutes.PUT("/:id", listingHandler.Update)
		listingRoutes.PATCH("/:id", listingHandler.Update)
		listingRoutes.DELETE("/:id", listingHandler.Delete)
	}

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	eventRoutes := api.Group("/events")
	{
		eventRoutes.GET("", eventHandler.List)
		eventRoutes.GET("/featured", eventHandler.Featured)
		eventRoutes.GET("/:id", eventHandler.Get)
		eventRoutes.POST("", eventHandler.Create)
		eventRoutes.PUT("/:id", eventHandler.Update)
		eventRoutes.PATCH("/:id", eventHandler.Update)
		eventRoutes.DELETE("/:id", eventHandler.Delete)

		// Join works for both authenticated and anonymous callers.
		eventRoutes.POST("/:id/join", eventHandler.Join)
		eventRoutes.POST("/:id/unjoin", eventHandler.Unjoin)
	}

	// ========== Promotions ==========
	promotionRepo := promotion.NewRepository(database.DB)
	promotionSvc := promotion.NewService(promotionRepo)
	promotionHandler := promotion.NewHandler(promotionSvc)

	promotionRoutes := api.Group("/promotions")
	{
		promotionRoutes.GET("", promotionHandler.List)
		promotionRoutes.GET("/featured", promotionHandler.Featured)
		promotionRoutes.GET("/:id", promotionHandler.Get)
		promotionRoutes.POST("", promotionHandler.Create)
		promotionRoutes.PUT("/:id", promotionHandler.Update)
		promotionRoutes.PATCH("/:id", promotionHandler.Update)
		promotionRoutes.DELETE("/:id", promotionHandler.Delete)
	}

	// ========== Blogs ==========
	blogRepo := blog.NewRepository(database.DB)
	blogSvc := blog.NewService(blogRepo)
	blogHandler := blog.NewHandler(blogSvc)

	blogRoutes := api.Group("/blogs")
	{
		blogRoutes.GET("", blogHandler.List)
		blogRoutes.GET("/featured", blogHandler.Featured)
		blogRoutes.GET("/:id", blogHandler.Get)
		blogRoutes.POST("", blogHandler.Create)
		blogRoutes.PUT("/:id", blogHandler.Update)
		blogRoutes.PATCH("/:id", blogHandler.Update)
		blogRoutes.DELETE("/:id", blogHandler.Delete)
	}

	// ========== Wishlist ==========
	wishlistRepo := wishlist.NewRepository(database.DB)
	wishlistResolver := wishlist.NewResolver(listingSvc, eventSvc, promotionSvc, blogSvc)
	wishlistSvc := wishlist.NewService(wishlistRepo, wishlistResolver, auditSvc)
	wishlistHandler := wishlist.NewHandler(wishlistSvc)

	wishlistRoutes := api.Group("/wishlist")
	wishlistRoutes.Use(middleware.RequireAuth())
	{
		wishlistRoutes.GET("", wishlistHandler.List)
		wishlistRoutes.POST("", wishlistHandler.Add)
		wishlistRoutes.POST("/remove", wishlistHandler.Remove)
		wishlistRoutes.POST("/check", wishlistHandler.Check)
	}
}
