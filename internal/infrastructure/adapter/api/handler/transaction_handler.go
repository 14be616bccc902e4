package handler

import (
	"fmt"
	"net/http"
	"strconv"

	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the session token used to authorize
// transaction deletion
const AdminTokenHeader = "Credits-Token"

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactions usecase.TransactionUseCase
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactions usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		logger:       logger,
	}
}

// ListTransactions handles the GET /credits/transactions?netid= endpoint
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	netid := c.Query("netid")
	if netid == "" {
		respondBadRequest(c, "Missing required query parameter: netid")
		return
	}

	result, err := h.transactions.ListUserTransactions(c.Request.Context(), netid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionsToListResponse(result.Transactions, result.Balance))
}

// CreateTransaction handles the POST /credits/transactions endpoint
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid transaction request format", map[string]any{
			"error": err.Error(),
		})
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	transaction, err := h.transactions.CreateTransaction(
		c.Request.Context(),
		req.NetID,
		req.Amount.String(),
		req.Description,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionToResponse(transaction))
}

// DeleteTransaction handles the DELETE /credits/transactions/:id endpoint.
// The caller must present a session token resolving to an admin in the
// Credits-Token header.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid transaction id format")
		return
	}

	token := c.GetHeader(AdminTokenHeader)

	if _, err := h.transactions.DeleteTransaction(c.Request.Context(), id, token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Deleted transaction: %d", id),
	})
}
