package usecase

import "context"

// PaymentRequest carries a monetary charge to be converted into a ledger
// transaction. AmountInCents is the charge amount in the processor's unit
// (cents); the resulting ledger transaction is denominated in the ledger's
// monetary unit.
type PaymentRequest struct {
	NetID         string
	AmountInCents int64
	CardToken     string
	Description   string
	AdjustBalance bool
}

// PaymentUseCase defines the payment processing operation
type PaymentUseCase interface {
	// ProcessPayment validates the netid and amount bounds, charges the
	// processor, and (if requested) records the charge in the ledger.
	//
	// Possible errors:
	// - ErrNotMember: If the identity service does not recognize the netid
	// - ErrAmountOutOfRange: If the amount is outside the configured bounds
	// - *error.PaymentError: If the processor rejects or cannot be reached
	ProcessPayment(ctx context.Context, req PaymentRequest) error
}
