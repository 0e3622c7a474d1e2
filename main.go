// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/cron"
	"voyago/database"
	inventoryRepoPkg "voyago/database/repository/inventory"
	ordersRepoPkg "voyago/database/repository/orders"
	"voyago/handlers"
	"voyago/routes"
	"voyago/services/booking"
	ai "voyago/services/intelligence"
	"voyago/services/inventory"
	"voyago/services/orders"
	"voyago/services/tasks"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitIntentCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute

	// repositories.
	invRepo := inventoryRepoPkg.NewMongoInventoryRepo()
	orderRepo := ordersRepoPkg.NewMongoOrderRepo()

	// services.
	catalogService := inventory.NewCatalogService(invRepo, logger)
	orderService := orders.NewDefaultOrderService(orderRepo, orders.NewStripePaymentClient(logger), logger)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	defer asynqClient.Close()

	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	bookingService := booking.NewBookingFlowService(
		sessionStore,
		catalogService,
		orderService,
		tasks.NewEnqueuer(asynqClient),
		logger,
	)

	ctxStore := ai.NewRedisContextStore(utils.GetIntentCacheClient(), sessionTTL)
	var geminiClient *ai.GeminiClient
	if config.AppConfig.GeminiAPIKey != "" {
		var err error
		geminiClient, err = ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Warn("main: gemini client unavailable, intent resolution falls back to keywords", zap.Error(err))
		}
	}
	intentService := ai.NewDefaultIntentService(geminiClient, ctxStore, logger)

	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService),
		Intent:  handlers.NewIntentHandler(intentService, bookingService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Issuance delivery worker.
	cron.InitIssuanceWorker(orderService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
