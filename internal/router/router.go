// internal/router/router.go
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/config"
	"github.com/javajoker/marketplace-backend/internal/database"
	"github.com/javajoker/marketplace-backend/internal/handlers"
	"github.com/javajoker/marketplace-backend/internal/metrics"
	"github.com/javajoker/marketplace-backend/internal/middleware"
	"github.com/javajoker/marketplace-backend/internal/services"
	"github.com/javajoker/marketplace-backend/internal/utils"
)

const version = "1.0.0"

// Initialize wires services, handlers and routes. Background work started
// here (rate limiter janitors) stops when ctx is done.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authorizationService := services.NewAuthorizationService(db)

	authService := services.NewAuthService(db, cfg)
	storeService := services.NewStoreService(db)
	itemService := services.NewItemService(db, authorizationService)
	likeService := services.NewLikeService(db)
	searchService := services.NewSearchService(db, database.NewTextMatcher(cfg.Database.Driver))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	storeHandler := handlers.NewStoreHandler(storeService)
	itemHandler := handlers.NewItemHandler(itemService)
	likeHandler := handlers.NewLikeHandler(likeService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())

	if cfg.Metrics.Enabled {
		if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
			logrus.WithError(err).Warn("Failed to register metrics")
		}
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	var authLimit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		general := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(general.Middleware())

		perMinute := cfg.RateLimit.AuthPerMinute
		if perMinute <= 0 {
			perMinute = 5
		}
		authLimit = middleware.NewRateLimiter(ctx, rate.Every(time.Minute/time.Duration(perMinute)), perMinute).Middleware()
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": version,
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authLimit, authHandler.Signup)
			auth.POST("/login", authLimit, authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Store routes
		stores := v1.Group("/stores")
		{
			stores.GET("/:storeId", middleware.OptionalAuth(), storeHandler.GetStore)

			protected := stores.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", storeHandler.CreateStore)
				protected.GET("/current", storeHandler.GetCurrentUserStores)
				protected.POST("/:storeId/items", itemHandler.CreateItem)
			}
		}

		// Item routes
		items := v1.Group("/items")
		{
			items.GET("", middleware.OptionalAuth(), itemHandler.GetItems)
			items.GET("/:itemId", middleware.OptionalAuth(), itemHandler.GetItem)
			items.GET("/:itemId/likes", middleware.OptionalAuth(), likeHandler.GetItemLikes)

			// Authenticated routes
			protected := items.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.PUT("/:itemId", itemHandler.UpdateItem)
				protected.DELETE("/:itemId", itemHandler.DeleteItem)
				protected.POST("/:itemId/images", itemHandler.AddItemImage)
				protected.POST("/:itemId/likes", likeHandler.LikeItem)
				protected.DELETE("/:itemId/likes", likeHandler.UnlikeItem)
			}
		}

		// Like routes
		v1.GET("/likes/current", middleware.AuthRequired(), likeHandler.GetCurrentUserLikes)
		v1.GET("/users/:userId/likes", middleware.OptionalAuth(), likeHandler.GetUserLikes)

		// Search routes
		v1.GET("/search", middleware.OptionalAuth(), searchHandler.Search)
	}

	return r
}
