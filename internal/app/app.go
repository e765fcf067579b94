package app

import (
	"fmt"

	"terek_backend/internal/auth"
	"terek_backend/internal/certificates"
	"terek_backend/internal/config"
	"terek_backend/internal/handlers"
	"terek_backend/internal/logger"
	"terek_backend/internal/middleware"
	"terek_backend/internal/models"
	"terek_backend/internal/notify"
	"terek_backend/internal/repositories"
	"terek_backend/internal/routes"
	"terek_backend/internal/services"
	"terek_backend/internal/validator"
	"terek_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	warnDegradedModes(cfg)

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Package{},
		&models.Donation{},
		&models.Certificate{},
		&models.News{},
		&models.Inquiry{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	renderer, err := certificates.NewQRRenderer(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize certificate renderer", "error", err)
	}
	mailer := notify.NewMailer(cfg)

	feed := ws.NewFeedManager()
	go feed.Run()
	feedHandler := ws.NewFeedHandler(feed)

	repos := repositories.NewRegistry(gormDB)
	serviceContainer := services.NewServiceContainer(cfg, repos, renderer, mailer, feed)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(cfg.URLs.Frontend),
	)

	routes.RegisterRoutes(router, appHandlers, feedHandler)

	// Rendered certificate artifacts
	router.Static(cfg.Certificates.BaseURL, cfg.Certificates.Dir)

	return router
}

// warnDegradedModes surfaces configuration gaps that change runtime
// behavior, loudly and once, at startup.
func warnDegradedModes(cfg *config.Config) {
	if !cfg.PaymentsEnabled() {
		logger.Warn("IOKA_API_KEY is not set: payment gateway DISABLED, donations will complete via bypass")
	}
	if cfg.PaymentsEnabled() && cfg.Ioka.WebhookSecret == "" {
		if cfg.IsProduction() {
			logger.Error("IOKA_WEBHOOK_SECRET is not set in production: all webhooks will be rejected")
		} else {
			logger.Warn("IOKA_WEBHOOK_SECRET is not set: webhook signature verification fails open")
		}
	}
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.User
	err := db.Where("email = ?", adminEmail).First(&admin).Error
	if err == nil {
		logger.Info("Admin user already exists", "email", adminEmail)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin = models.User{
		FullName:      "Administrator",
		Email:         adminEmail,
		PasswordHash:  hash,
		Role:          models.UserRoleAdmin,
		AccountStatus: models.AccountStatusActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("First admin user seeded", "email", adminEmail)
	return nil
}
