package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	payments usecase.PaymentUseCase
	logger   coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(payments usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger,
	}
}

// ProcessPayment handles the POST /payment endpoint. Processor failures are
// reported as successful:false rather than an error status so clients can
// distinguish a declined card from a broken request.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid payment request format", map[string]any{
			"error": err.Error(),
		})
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	err := h.payments.ProcessPayment(c.Request.Context(), usecase.PaymentRequest{
		NetID:         req.NetID,
		AmountInCents: req.Amount,
		CardToken:     req.Token,
		Description:   req.Description,
		AdjustBalance: req.ShouldAdjustBalance(),
	})
	if err != nil {
		if domainerr.IsPaymentError(err) {
			c.JSON(http.StatusOK, dto.PaymentResponse{Successful: false})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentResponse{Successful: true})
}
