package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashback-backend/config"
	"cashback-backend/logger"
	"cashback-backend/repositories"
	"cashback-backend/routes"
	"cashback-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	logr, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		logr.WithError(err).Fatal("failed to connect to database")
	}
	if err := config.Migrate(db); err != nil {
		logr.WithError(err).Fatal("failed to migrate database")
	}

	repo := repositories.NewPostgresRepository(db)
	translator := services.NewTranslator(services.SheetDateDecoder(time.Now), cfg.Import.CashbackPercent)
	notifications := services.NewNotificationService(repo, services.NewTwilioSender(cfg.Notify), cfg.Notify.BatchSize, logr)

	if cfg.Notify.Enabled {
		if err := notifications.Start(cfg.Notify.Schedule); err != nil {
			logr.WithError(err).Fatal("failed to start notification scheduler")
		}
		defer notifications.Stop()
	}

	gin.SetMode(cfg.GinMode)
	r := routes.SetupRouter(routes.Dependencies{
		Config:        cfg,
		Log:           logr,
		Imports:       services.NewImportService(repo, translator, logr),
		Transactions:  services.NewTransactionService(repo, logr),
		Customers:     services.NewCustomerService(repo, logr),
		Notifications: notifications,
	})
	if gin.Mode() == gin.DebugMode {
		printRoutes(r)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logr.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.WithError(err).Fatal("server error")
		}
	}()

	<-done
	logr.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.WithError(err).Error("graceful shutdown failed")
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
