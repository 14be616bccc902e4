package payment

import (
	"context"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/usecase"
)

// Bounds is the configured payment amount policy in cents. The allowed
// range is deliberately configuration, not code.
type Bounds struct {
	MinAmountInCents int64
	MaxAmountInCents int64
}

// Service implements the payment flow: validate, charge the processor,
// then record the charge in the ledger. A processor customer created
// before a later failure is not compensated.
type Service struct {
	processor    gateway.PaymentProcessor
	users        usecase.UserUseCase
	transactions usecase.TransactionUseCase
	logger       coreport.Logger
	bounds       Bounds
}

// NewService creates a new payment service
func NewService(
	processor gateway.PaymentProcessor,
	users usecase.UserUseCase,
	transactions usecase.TransactionUseCase,
	logger coreport.Logger,
	bounds Bounds,
) usecase.PaymentUseCase {
	return &Service{
		processor:    processor,
		users:        users,
		transactions: transactions,
		logger:       logger,
		bounds:       bounds,
	}
}

// ProcessPayment charges the processor and converts the charge into a
// ledger transaction. All validation happens before any processor call.
func (s *Service) ProcessPayment(ctx context.Context, req usecase.PaymentRequest) error {
	// Reject the amount before touching the user so an out-of-range
	// payment never lazily creates an account
	if req.AmountInCents < s.bounds.MinAmountInCents || req.AmountInCents > s.bounds.MaxAmountInCents {
		s.logger.Warn("Payment amount outside allowed range", map[string]any{
			"netid":     req.NetID,
			"amount":    req.AmountInCents,
			"min_cents": s.bounds.MinAmountInCents,
			"max_cents": s.bounds.MaxAmountInCents,
		})
		return errs.ErrAmountOutOfRange
	}

	user, err := s.users.GetOrCreateUser(ctx, req.NetID)
	if err != nil {
		return err
	}

	customerID, err := s.processor.CreateCustomer(ctx, user.NetID, req.CardToken)
	if err != nil {
		s.logPaymentFailure("Creating processor customer failed", user.NetID, err)
		return err
	}

	chargeID, err := s.processor.Charge(ctx, customerID, req.AmountInCents, req.Description)
	if err != nil {
		s.logPaymentFailure("Processor charge failed", user.NetID, err)
		return err
	}

	s.logger.Info("Payment charged", map[string]any{
		"netid":       user.NetID,
		"charge_id":   chargeID,
		"customer_id": customerID,
		"amount":      entity.AmountInCentsToString(req.AmountInCents),
	})

	if !req.AdjustBalance {
		return nil
	}

	// Cents convert directly to the ledger's monetary unit
	_, err = s.transactions.CreateTransaction(ctx, user.NetID, entity.AmountInCentsToString(req.AmountInCents), req.Description)
	if err != nil {
		// The charge succeeded but the ledger write failed; the
		// reconciliation job cannot repair this because no transaction
		// row exists. Surface it loudly.
		s.logger.Error("Charge succeeded but ledger update failed", map[string]any{
			"netid":     user.NetID,
			"charge_id": chargeID,
			"error":     err.Error(),
		})
		return err
	}

	return nil
}

func (s *Service) logPaymentFailure(message, netid string, err error) {
	fields := map[string]any{
		"netid": netid,
		"error": err.Error(),
	}
	if kind := errs.PaymentKind(err); kind != "" {
		fields["kind"] = string(kind)
	}
	s.logger.Error(message, fields)
}
