package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	paymentUseCase "github.com/amirhossein-jamali/credits-service/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/credits-service/internal/domain/usecase/reconcile"
	transactionUseCase "github.com/amirhossein-jamali/credits-service/internal/domain/usecase/transaction"
	userUseCase "github.com/amirhossein-jamali/credits-service/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.LevelFromString(cfg.Logger.Level))

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), tp, appLogger)

	// Initialize outbound gateways
	identityClient := gateway.NewIdentityClient(
		cfg.Identity.BaseURL,
		cfg.Identity.AccessToken,
		cfg.Identity.Timeout,
		appLogger,
	)
	stripeClient := gateway.NewStripeClient(
		cfg.Payment.SecretKey,
		cfg.Payment.BaseURL,
		cfg.Payment.Timeout,
		appLogger,
	)

	initialBalance, err := entity.ValidateAndConvertAmount(cfg.Credits.InitialBalance)
	if err != nil {
		appLogger.Error("Invalid initial balance configuration", map[string]any{
			"value": cfg.Credits.InitialBalance,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(
		userRepo,
		transactionRepo,
		identityClient,
		tp,
		appLogger,
		initialBalance,
	)
	transactionUseCaseImpl := transactionUseCase.NewService(
		transactionRepo,
		userUseCaseImpl,
		identityClient,
		tp,
		appLogger,
		cfg.Credits.AdminGroups,
	)
	paymentUseCaseImpl := paymentUseCase.NewService(
		stripeClient,
		userUseCaseImpl,
		transactionUseCaseImpl,
		appLogger,
		paymentUseCase.Bounds{
			MinAmountInCents: cfg.Payment.MinAmountCents,
			MaxAmountInCents: cfg.Payment.MaxAmountCents,
		},
	)

	// Start the balance reconciliation job
	reconcileCtx, stopReconciler := context.WithCancel(context.Background())
	reconciler := reconcile.NewReconciler(
		userRepo,
		transactionRepo,
		tp,
		appLogger,
		cfg.Reconcile.Interval,
	)
	go reconciler.Run(reconcileCtx, cfg.Reconcile.RunAtStartup)

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userUseCaseImpl, appLogger)
	transactionHandler := handler.NewTransactionHandler(transactionUseCaseImpl, appLogger)
	paymentHandler := handler.NewPaymentHandler(paymentUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, userHandler, transactionHandler, paymentHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Stop the reconciliation job
	stopReconciler()

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("CREDITS_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or CREDITS_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("CREDITS_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or CREDITS_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("CREDITS_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or CREDITS_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	// Identity service is required for every user-facing operation
	if cfg.Identity.BaseURL == "" {
		missingConfigs = append(missingConfigs, "identity.baseUrl (or CREDITS_IDENTITY_BASE_URL environment variable)")
	}

	// Payment bounds must form a valid range
	if cfg.Payment.MinAmountCents <= 0 || cfg.Payment.MaxAmountCents < cfg.Payment.MinAmountCents {
		return fmt.Errorf("invalid payment amount range: min=%d max=%d",
			cfg.Payment.MinAmountCents, cfg.Payment.MaxAmountCents)
	}

	if len(cfg.Credits.AdminGroups) == 0 {
		missingConfigs = append(missingConfigs, "credits.adminGroups")
	}

	if cfg.Reconcile.Interval == 0 {
		missingConfigs = append(missingConfigs, "reconcile.interval")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
