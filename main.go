package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/cart"
	"github.com/DipakSrm/style-home-direct/checkout"
	"github.com/DipakSrm/style-home-direct/config"
	"github.com/DipakSrm/style-home-direct/middleware"
	"github.com/DipakSrm/style-home-direct/payment"
	"github.com/DipakSrm/style-home-direct/routes"
	"github.com/DipakSrm/style-home-direct/session"
)

func main() {
	log.Println("✅ Starting storefront gateway...")

	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("svc", "storefront").Logger()

	// Redis holds the session carts
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Commerce backend is the authority for catalog, users and orders
	api := backend.New(cfg.BackendURL, cfg.RequestTimeout, logger)

	carts := cart.NewService(cart.NewRedisStore(redisClient, cfg.CartTTL, logger), logger)
	sessions := session.NewManager(api)
	checkoutSvc := checkout.NewService(api, carts, cfg.ReturnURL, cfg.WebsiteURL, logger)
	reconciler := payment.NewReconciler(api, carts, logger)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		API:           api,
		Carts:         carts,
		Checkout:      checkoutSvc,
		Reconciler:    reconciler,
		Sessions:      sessions,
		JWTSecret:     cfg.JWTSecret,
		TrackInterval: 5 * time.Second,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
