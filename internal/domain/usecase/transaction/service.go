package transaction

import (
	"context"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/usecase"
)

// Service implements the ledger business logic. Creation and deletion both
// go through the repository's atomic paths so the cached balance never
// drifts from the ledger within a single unit of work.
type Service struct {
	transactionRepo persistence.TransactionRepository
	users           usecase.UserUseCase
	identity        gateway.IdentityVerifier
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	adminGroups     []string
}

// NewService creates a new transaction service
func NewService(
	transactionRepo persistence.TransactionRepository,
	users usecase.UserUseCase,
	identity gateway.IdentityVerifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	adminGroups []string,
) usecase.TransactionUseCase {
	return &Service{
		transactionRepo: transactionRepo,
		users:           users,
		identity:        identity,
		timeProvider:    timeProvider,
		logger:          logger,
		adminGroups:     adminGroups,
	}
}

// CreateTransaction appends a transaction to a user's ledger, lazily
// creating the account if needed
func (s *Service) CreateTransaction(ctx context.Context, netid, amount, description string) (*entity.Transaction, error) {
	// Validates the netid and creates the account on first use
	user, err := s.users.GetOrCreateUser(ctx, netid)
	if err != nil {
		return nil, err
	}

	transaction, err := entity.NewTransaction(user.NetID, amount, description, s.timeProvider)
	if err != nil {
		return nil, err
	}

	created, err := s.transactionRepo.Create(ctx, transaction)
	if err != nil {
		s.logger.Error("Failed to create transaction", map[string]any{
			"netid":  user.NetID,
			"amount": amount,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": created.ID,
		"netid":          created.NetID,
		"amount":         created.Amount(),
	})

	return created, nil
}

// DeleteTransaction deletes a ledger entry after resolving the session
// token to an admin. The owning user's cached balance is reversed in the
// same unit of work as the delete.
func (s *Service) DeleteTransaction(ctx context.Context, id uint64, sessionToken string) (*entity.Transaction, error) {
	netid, err := s.authorizeAdmin(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	deleted, err := s.transactionRepo.Delete(ctx, id)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			s.logger.Error("Failed to delete transaction", map[string]any{
				"transaction_id": id,
				"deleted_by":     netid,
				"error":          err.Error(),
			})
		}
		return nil, err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
		"netid":          deleted.NetID,
		"amount":         deleted.Amount(),
		"deleted_by":     netid,
	})

	return deleted, nil
}

// ListUserTransactions returns a user's ledger in reverse-chronological
// order together with the current balance
func (s *Service) ListUserTransactions(ctx context.Context, netid string) (*usecase.UserTransactions, error) {
	user, err := s.users.GetOrCreateUser(ctx, netid)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListByNetID(ctx, user.NetID)
	if err != nil {
		return nil, err
	}

	return &usecase.UserTransactions{
		Transactions: transactions,
		Balance:      user.GetBalance(),
	}, nil
}

// authorizeAdmin resolves the session token to a netid and checks it
// against the configured admin groups. Any identity service failure is
// reported as ErrUnauthorized.
func (s *Service) authorizeAdmin(ctx context.Context, sessionToken string) (string, error) {
	if sessionToken == "" {
		return "", errs.ErrUnauthorized
	}

	netid, err := s.identity.ResolveSession(ctx, sessionToken)
	if err != nil {
		s.logger.Info("Rejecting session token", map[string]any{
			"error": err.Error(),
		})
		return "", errs.ErrUnauthorized
	}

	for _, group := range s.adminGroups {
		ok, err := s.identity.IsGroupMember(ctx, netid, group)
		if err != nil {
			s.logger.Warn("Group membership lookup failed", map[string]any{
				"netid": netid,
				"group": group,
				"error": err.Error(),
			})
			continue
		}
		if ok {
			return netid, nil
		}
	}

	s.logger.Warn("Non-admin attempted transaction delete", map[string]any{
		"netid": netid,
	})
	return "", errs.ErrUnauthorized
}
