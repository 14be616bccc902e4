package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
)

// UserUseCase defines the user-facing account operations
type UserUseCase interface {
	// ListUsers returns all user accounts
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetOrCreateUser validates the netid against the identity service and
	// returns the account, lazily creating it (with the configured initial
	// balance recorded as a transaction) if absent.
	//
	// Possible errors:
	// - ErrNotMember: If the identity service does not recognize the netid
	GetOrCreateUser(ctx context.Context, netid string) (*entity.User, error)

	// CreateUser explicitly creates an account.
	//
	// Possible errors:
	// - ErrNotMember: If the identity service does not recognize the netid
	// - ErrDuplicateUser: If the account already exists
	CreateUser(ctx context.Context, netid string) (*entity.User, error)
}
