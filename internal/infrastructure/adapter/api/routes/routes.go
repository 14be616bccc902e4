package routes

import (
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	transactionHandler *handler.TransactionHandler,
	paymentHandler *handler.PaymentHandler,
) {
	// User routes
	userRoutes := router.Group("/credits/users")
	{
		// GET /credits/users
		userRoutes.GET("", userHandler.ListUsers)

		// GET /credits/users/:netid
		userRoutes.GET("/:netid", userHandler.GetUser)

		// POST /credits/users/:netid
		userRoutes.POST("/:netid", userHandler.CreateUser)
	}

	// Transaction routes
	transactionRoutes := router.Group("/credits/transactions")
	{
		// GET /credits/transactions?netid=
		transactionRoutes.GET("", transactionHandler.ListTransactions)

		// POST /credits/transactions
		transactionRoutes.POST("", transactionHandler.CreateTransaction)

		// DELETE /credits/transactions/:id
		transactionRoutes.DELETE("/:id", transactionHandler.DeleteTransaction)
	}

	// POST /payment
	router.POST("/payment", paymentHandler.ProcessPayment)

	// GET /health
	router.GET("/health", handler.Health)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
