package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
)

// UserTransactions bundles a user's ledger with their current balance
type UserTransactions struct {
	Transactions []*entity.Transaction
	Balance      string
}

// TransactionUseCase defines the ledger operations
type TransactionUseCase interface {
	// CreateTransaction validates the netid, lazily creates the user if
	// needed, and appends a transaction, adjusting the cached balance in
	// the same unit of work.
	//
	// Possible errors:
	// - ErrNotMember: If the identity service does not recognize the netid
	// - ErrInvalidAmount: If the amount is not a valid decimal
	CreateTransaction(ctx context.Context, netid, amount, description string) (*entity.Transaction, error)

	// DeleteTransaction resolves the session token to a netid, checks
	// admin group membership, then deletes the transaction and reverses
	// its effect on the owning user's balance.
	//
	// Possible errors:
	// - ErrUnauthorized: If the token does not resolve to an admin
	// - ErrTransactionNotFound: If no transaction with that id exists
	DeleteTransaction(ctx context.Context, id uint64, sessionToken string) (*entity.Transaction, error)

	// ListUserTransactions returns a user's transactions in
	// reverse-chronological order together with the current balance.
	//
	// Possible errors:
	// - ErrNotMember: If the identity service does not recognize the netid
	ListUserTransactions(ctx context.Context, netid string) (*UserTransactions, error)
}
