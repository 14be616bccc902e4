package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/usecase"
)

// UserUseCase implements the user account business logic
type UserUseCase struct {
	userRepo              persistence.UserRepository
	transactionRepo       persistence.TransactionRepository
	identity              gateway.IdentityVerifier
	timeProvider          coreport.TimeProvider
	logger                coreport.Logger
	initialBalanceInCents int64
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	transactionRepo persistence.TransactionRepository,
	identity gateway.IdentityVerifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	initialBalanceInCents int64,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo:              userRepo,
		transactionRepo:       transactionRepo,
		identity:              identity,
		timeProvider:          timeProvider,
		logger:                logger,
		initialBalanceInCents: initialBalanceInCents,
	}
}

// ListUsers returns all user accounts
func (u *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return u.userRepo.List(ctx)
}

// GetOrCreateUser validates the netid and returns the account, lazily
// creating it with the configured initial balance if absent
func (u *UserUseCase) GetOrCreateUser(ctx context.Context, netid string) (*entity.User, error) {
	netid, err := u.validateNetID(ctx, netid)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByNetID(ctx, netid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	return u.createWithInitialBalance(ctx, netid)
}

// CreateUser explicitly creates an account for the netid
func (u *UserUseCase) CreateUser(ctx context.Context, netid string) (*entity.User, error) {
	netid, err := u.validateNetID(ctx, netid)
	if err != nil {
		return nil, err
	}

	_, err = u.userRepo.GetByNetID(ctx, netid)
	if err == nil {
		return nil, errs.ErrDuplicateUser
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	return u.createWithInitialBalance(ctx, netid)
}

// createWithInitialBalance creates the account and records the starting
// balance as an "Initial balance" transaction so the sum invariant holds
// from the first row
func (u *UserUseCase) createWithInitialBalance(ctx context.Context, netid string) (*entity.User, error) {
	user, err := entity.NewUser(netid, 0, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// A concurrent request may have created the account between the
		// lookup and the insert
		if errors.Is(err, errs.ErrDuplicateUser) {
			return u.userRepo.GetByNetID(ctx, netid)
		}
		u.logger.Error("Failed to create user", map[string]any{
			"netid": netid,
			"error": err.Error(),
		})
		return nil, err
	}

	initial := &entity.Transaction{
		NetID:         netid,
		AmountInCents: u.initialBalanceInCents,
		Description:   entity.InitialBalanceDescription,
		CreatedAt:     u.timeProvider.Now(),
	}
	if _, err := u.transactionRepo.Create(ctx, initial); err != nil {
		u.logger.Error("Failed to record initial balance", map[string]any{
			"netid": netid,
			"error": err.Error(),
		})
		return nil, err
	}
	user.SetBalance(u.initialBalanceInCents, u.timeProvider)

	u.logger.Info("User created", map[string]any{
		"netid":          netid,
		"initialBalance": user.GetBalance(),
	})

	return user, nil
}

// validateNetID checks the netid locally and against the identity service.
// Identity service failures count as validation failure.
func (u *UserUseCase) validateNetID(ctx context.Context, netid string) (string, error) {
	netid = strings.TrimSpace(netid)
	if netid == "" {
		return "", errs.ErrInvalidNetID
	}

	ok, err := u.identity.IsMember(ctx, netid)
	if err != nil {
		u.logger.Warn("Identity service lookup failed", map[string]any{
			"netid": netid,
			"error": err.Error(),
		})
		return "", errs.ErrNotMember
	}
	if !ok {
		return "", errs.ErrNotMember
	}

	return netid, nil
}
