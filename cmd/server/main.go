package main

import (
	"context"
	"log"

	"mela-ticketing/config"
	"mela-ticketing/internal/cache"
	"mela-ticketing/internal/database"
	"mela-ticketing/internal/handler"
	"mela-ticketing/internal/payment"
	"mela-ticketing/internal/queue"
	"mela-ticketing/internal/repository"
	"mela-ticketing/internal/service"
	"mela-ticketing/internal/worker"
	"mela-ticketing/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const receiptQueueBuffer = 64

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	appLog := logger.WithComponent("main")

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	// Repositories
	rideRepo := repository.NewRideRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	// 金流：金鑰未設定時整個付款流程停用，預訂直接出票
	var gateway payment.Gateway
	if cfg.Gateway.KeyID != "" && cfg.Gateway.KeySecret != "" {
		gateway = payment.NewRazorpayGateway(cfg.Gateway.KeyID, cfg.Gateway.KeySecret)
	} else {
		appLog.Warn("payment gateway not configured, bookings issue tickets immediately")
	}

	var verifier payment.SignatureVerifier
	if cfg.Gateway.WebhookSecret != "" {
		verifier = payment.NewHMACVerifier(cfg.Gateway.WebhookSecret)
	} else {
		// 明確的設定選擇：沒有 secret 就不驗章，回調內容被無條件信任
		appLog.Warn("payment callback signature verification disabled")
	}

	// 收據隊列與 worker
	receiptQueue := queue.NewReceiptQueue(receiptQueueBuffer)
	receiptWorker := worker.NewReceiptWorker(receiptQueue, cfg.Ticket.ReceiptDir)
	if err := receiptWorker.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start receipt worker: %v", err)
	}

	// Services
	bookingService := service.NewBookingService(bookingRepo, rideRepo, gateway, verifier, receiptQueue)
	validationService := service.NewValidationService(bookingRepo, rideRepo, cfg.Ticket.AdmitUnpaid)
	rideService := service.NewRideService(pool, rideRepo, bookingRepo)
	reportService := service.NewReportService(bookingRepo, cache.NewRedisDashboardCache(rdb), nil)
	authService := service.NewAuthService(adminRepo, cfg.Auth.JWTSecret)

	// Handlers
	rideHandler := handler.NewRideHandler(rideService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	validationHandler := handler.NewValidationHandler(validationService)
	adminHandler := handler.NewAdminHandler(authService, reportService, bookingService)

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	rideHandler.RegisterRoutes(router)
	bookingHandler.RegisterRoutes(router)
	validationHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)

	adminGroup := router.Group("/api/v1/admin", handler.RequireAdmin(cfg.Auth.JWTSecret))
	{
		rideHandler.RegisterAdminRoutes(adminGroup)
		validationHandler.RegisterAdminRoutes(adminGroup)
		adminHandler.RegisterAdminRoutes(adminGroup)
	}

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
