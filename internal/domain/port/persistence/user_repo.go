package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
)

// UserRepository defines methods to interact with user accounts
type UserRepository interface {
	// GetByNetID retrieves a user by netid
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with that netid exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByNetID(ctx context.Context, netid string) (*entity.User, error)

	// List returns all users
	List(ctx context.Context) ([]*entity.User, error)

	// Create creates a new user account
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same netid already exists
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalance overwrites a user's cached balance. Used by the
	// reconciliation job; request-path balance changes go through
	// TransactionRepository so they stay atomic with the ledger write.
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	UpdateBalance(ctx context.Context, netid string, balanceInCents int64) error
}
