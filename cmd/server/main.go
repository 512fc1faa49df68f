package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"staybook/server/config"
	"staybook/server/internal/api"
	"staybook/server/internal/database"
	"staybook/server/internal/geocoding"
	"staybook/server/internal/processor"
	"staybook/server/internal/queue"
	"staybook/server/internal/scheduler"
	"staybook/server/internal/seed"
)

func main() {
	seedData := flag.Bool("seed", false, "populate the database with sample data before serving")
	flag.Parse()

	// Optional .env file; real environment variables win.
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	dbPath := cfg.Server.DatabasePath
	if !filepath.IsAbs(dbPath) {
		currentDir, err := os.Getwd()
		if err != nil {
			logger.WithError(err).Fatal("Failed to get current directory")
		}
		dbPath = filepath.Join(currentDir, dbPath)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", dbPath)

	db, err := database.NewDatabase(dbPath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	if *seedData {
		logger.Info("Seeding database with sample data...")
		if err := seed.Run(db, cfg, logger); err != nil {
			logger.WithError(err).Fatal("Failed to seed database")
		}
	}

	// Backfill coordinates for listings that were stored without them.
	cacheDir := filepath.Join(os.TempDir(), "staybook", "geocode_cache")
	geocoder := geocoding.NewGeocoder(logger, cacheDir)
	logger.Info("Starting initial geocoding of listings without coordinates...")
	if err := db.UpdateMissingCoordinates(geocoder); err != nil {
		logger.WithError(err).Error("Failed to update coordinates")
	}

	// Bulk import pipeline.
	listingQueue := queue.NewListingQueue(cfg.BatchProcessing.QueueSize, logger)
	batchProcessor := processor.NewBatchProcessor(db.GetDB(), listingQueue, cfg, logger)
	batchProcessor.Start()
	defer batchProcessor.Stop()

	// Nightly sweep that completes elapsed confirmed bookings.
	completionScheduler := scheduler.NewScheduler(db, logger)
	completionScheduler.Start()
	defer completionScheduler.Stop()

	handler := api.NewHandler(db, logger, listingQueue)

	router := gin.Default()
	router.Use(cors.Default())
	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
