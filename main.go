package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intothestar/config"
	"intothestar/cron"
	"intothestar/database"
	availabilityRepo "intothestar/database/repository/availability"
	bookingRepo "intothestar/database/repository/booking"
	settingsRepo "intothestar/database/repository/settings"
	"intothestar/handlers"
	"intothestar/middleware"
	"intothestar/routes"
	"intothestar/services/admin"
	"intothestar/services/booking"
	"intothestar/services/currency"
	"intothestar/services/notification"
	"intothestar/services/payment"
	"intothestar/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	mongoClient, err := database.Connect(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := database.Handle(mongoClient)

	utils.InitCache()
	utils.StartHealthMonitor(mongoClient, utils.GetCacheClient())
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo(db)
	bookRepo := bookingRepo.NewMongoBookingRepo(db)
	setRepo := settingsRepo.NewMongoSettingsRepo(db)

	if err := availRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("main: failed to ensure availability indexes", zap.Error(err))
	}

	// notification pipeline: queue-backed when Redis is up, direct otherwise.
	mailer := notification.NewSMTPMailer(logger)
	var queueClient *asynq.Client
	var notifWorker *asynq.Server
	if utils.GetCacheClient() != nil {
		queueClient = cron.NewQueueClient()
		notifWorker = cron.StartNotificationWorker(mailer, logger)
	} else {
		logger.Warn("main: Redis unavailable, notifications will send inline")
	}
	dispatcher := notification.NewQueueDispatcher(queueClient, mailer, logger)

	// services.
	bookingService := &booking.DefaultBookingService{
		Availability: availRepo,
		Bookings:     bookRepo,
		Gateway:      payment.NewStripeGateway(logger),
		Notifier:     dispatcher,
		Logger:       logger,
	}
	adminService := &admin.DefaultAdminService{
		AvailabilityRepo: availRepo,
		BookingRepo:      bookRepo,
		SettingsRepo:     setRepo,
		Logger:           logger,
	}
	currencyService := currency.NewDefaultCurrencyService(utils.GetCacheClient(), logger)

	// handlers.
	hb := &routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Admin:    handlers.NewAdminHandler(adminService, logger),
		Currency: handlers.NewCurrencyHandler(currencyService),
	}
	routes.RegisterRoutes(router, hb)

	sweeper := cron.StartPendingSweeper(bookRepo, logger)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if sweeper != nil {
		sweeper.Stop()
	}
	if notifWorker != nil {
		notifWorker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
