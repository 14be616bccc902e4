package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
)

// User represents a credits account identified by an external netid.
// The balance is a denormalized projection of the user's transaction log,
// stored in cents to avoid floating point precision issues.
type User struct {
	NetID     string    // External identity string, unique
	balance   int64     // Cached balance in cents (private)
	CreatedAt time.Time // When the account was created
	UpdatedAt time.Time // When the account was last updated
}

// NewUser creates a new user with the given netid and initial balance in cents
func NewUser(netid string, initialBalanceInCents int64, timeProvider coreport.TimeProvider) (*User, error) {
	netid = strings.TrimSpace(netid)
	if netid == "" {
		return nil, errs.ErrInvalidNetID
	}

	now := timeProvider.Now()
	return &User{
		NetID:     netid,
		balance:   initialBalanceInCents,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return AmountInCentsToString(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance = balanceInCents
	u.UpdatedAt = timeProvider.Now()
}

// ApplyAmount adds a signed cents amount to the balance. Positive amounts
// are credits, negative amounts are debits. The ledger permits negative
// balances; the transaction log is the source of truth.
func (u *User) ApplyAmount(amountInCents int64, timeProvider coreport.TimeProvider) {
	u.balance += amountInCents
	u.UpdatedAt = timeProvider.Now()
}
