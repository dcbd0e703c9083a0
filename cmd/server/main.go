package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/4utre/expense-tracker-app/internal/api"
	"github.com/4utre/expense-tracker-app/internal/config"
	"github.com/4utre/expense-tracker-app/internal/mailer"
	"github.com/4utre/expense-tracker-app/internal/repository"
	"github.com/4utre/expense-tracker-app/internal/service"
	"github.com/4utre/expense-tracker-app/internal/storage"
	"github.com/4utre/expense-tracker-app/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Set up database connection
	db, err := config.SetupDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to set up database", zap.Error(err))
	}
	defer db.Close()

	// Create repository
	repo := repository.NewPostgresRepository(db)

	// Create mail transport and upload store
	smtp := mailer.NewSMTPMailer(cfg.SMTP)
	uploads, err := storage.NewLocalStore(cfg.Upload.Dir, "/uploads")
	if err != nil {
		logger.Fatal("Failed to set up upload storage", zap.Error(err))
	}

	// Create service
	svc := service.NewDefaultService(repo, smtp, logger, cfg)

	// Create API handler
	handler := api.NewHandler(svc, uploads, logger)

	// Set up Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.Upload.MaxSizeBytes

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Add middleware for JWT secret
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(cfg.Auth.JWTSecret))
		c.Next()
	})

	// Set up routes
	handler.SetupRoutes(router)

	// Start server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", zap.String("addr", serverAddr))
	if err := http.ListenAndServe(serverAddr, router); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
