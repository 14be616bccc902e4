package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
)

// InitialBalanceDescription marks the transaction written when an account
// is lazily created with a starting balance.
const InitialBalanceDescription = "Initial balance"

// Transaction represents one entry in a user's ledger. Amounts are signed:
// positive is a credit, negative is a debit. Transactions are independent
// facts; deleting one mutates the owning user's cached balance rather than
// cascading from it.
type Transaction struct {
	ID            uint64    // Auto-incremented identifier
	NetID         string    // Owning user's netid
	AmountInCents int64     // Signed amount in cents
	Description   string    // Free text
	CreatedAt     time.Time // When the transaction was created
}

// NewTransaction creates a new transaction from a decimal amount string
func NewTransaction(netid, amount, description string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	netid = strings.TrimSpace(netid)
	if netid == "" {
		return nil, errs.ErrInvalidNetID
	}

	amountInCents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		NetID:         netid,
		AmountInCents: amountInCents,
		Description:   description,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// Amount returns the signed amount as a string with 2 decimal places
func (t *Transaction) Amount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// IsCredit returns true if this transaction increases the user's balance
func (t *Transaction) IsCredit() bool {
	return t.AmountInCents >= 0
}

// IsDebit returns true if this transaction decreases the user's balance
func (t *Transaction) IsDebit() bool {
	return t.AmountInCents < 0
}
