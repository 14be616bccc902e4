package gateway

import "context"

// PaymentProcessor is the outbound port to the external payment processor.
// Failures are reported as *error.PaymentError so callers can distinguish
// a card decline from a network failure or a malformed request.
type PaymentProcessor interface {
	// CreateCustomer registers a customer with the processor using an
	// opaque card token and returns the processor's customer id
	CreateCustomer(ctx context.Context, netid, cardToken string) (string, error)

	// Charge charges the customer the given amount in cents and returns
	// the processor's charge id
	Charge(ctx context.Context, customerID string, amountInCents int64, description string) (string, error)
}
