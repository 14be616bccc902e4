package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
)

// TransactionRepository defines methods to interact with the ledger.
// Every balance change is mediated by a transaction record: Create and
// Delete adjust the owning user's cached balance in the same database
// transaction as the ledger write, under a row lock.
type TransactionRepository interface {
	// Create inserts a transaction and adds its amount to the owning
	// user's cached balance atomically. The returned transaction carries
	// the assigned id.
	//
	// Possible errors:
	// - ErrUserNotFound: If the owning user doesn't exist
	// - ErrUserLocked: If the user row is locked by another operation
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// Delete removes a transaction and subtracts its amount from the
	// owning user's cached balance atomically. Returns the deleted
	// transaction.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction with that id exists
	// - ErrDatabaseConnection: If the database cannot be reached
	Delete(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByNetID returns a user's transactions in reverse-chronological order
	ListByNetID(ctx context.Context, netid string) ([]*entity.Transaction, error)

	// SumByNetID returns the sum of all transaction amounts for a user in
	// cents. This is the source of truth the cached balance is
	// reconciled against.
	SumByNetID(ctx context.Context, netid string) (int64, error)
}
