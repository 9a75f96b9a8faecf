package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zellige/config"
	"zellige/database"
	documentsRepo "zellige/database/repository/documents"
	"zellige/handlers"
	"zellige/middleware"
	"zellige/routes"
	"zellige/services/booking"
	"zellige/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Connect the document store once at startup. A missing or unreachable
	// store is a recognized runtime state: booking operations fail with a
	// persistence error, everything else keeps serving.
	var docRepo documentsRepo.DocumentRepository
	client, err := database.Connect()
	if err != nil {
		logger.Warn("main: starting without document store", zap.Error(err))
	} else {
		logger.Sugar().Infof("Connected to MongoDB database %q", config.AppConfig.DatabaseName)
		docRepo = documentsRepo.NewMongoDocumentRepo(client.Database(config.AppConfig.DatabaseName))
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:   docRepo,
		Logger: logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(docRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RootHandler:         handlers.RootHandler,
		HelloHandler:        handlers.HelloHandler,
		ListServicesHandler: handlers.ListServicesHandler,
		ShopInfoHandler:     handlers.ShopInfoHandler,

		CreateBookingHandler: bookingHandler.CreateBooking,
		ListBookingsHandler:  bookingHandler.ListBookings,

		DiagnosticsHandler: diagnosticsHandler.Diagnostics,
		SchemaHandler:      handlers.SchemaHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
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
	if err := database.Disconnect(client); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect document store: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
