package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockUserRow reads the user row under FOR UPDATE so concurrent balance
// writes serialize on it for the rest of the database transaction
func lockUserRow(tx *gorm.DB, netid string, userModel *model.User) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(userModel, "net_id = ?", netid)
}

// TransactionRepository implements persistence.TransactionRepository using
// GORM. Create and Delete lock the owning user row with FOR UPDATE and
// adjust the cached balance inside the same database transaction, so the
// balance never drifts from the ledger within a unit of work.
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:            transaction.ID,
		NetID:         transaction.NetID,
		AmountInCents: transaction.AmountInCents,
		Description:   transaction.Description,
		CreatedAt:     transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            transactionModel.ID,
		NetID:         transactionModel.NetID,
		AmountInCents: transactionModel.AmountInCents,
		Description:   transactionModel.Description,
		CreatedAt:     transactionModel.CreatedAt,
	}
}

// mapError standardizes database error handling
func (r *TransactionRepository) mapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrUserLocked
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a transaction and adds its amount to the owning user's
// cached balance atomically
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	transactionModel := r.entityToModel(transaction)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel model.User
		result := lockUserRow(tx, transaction.NetID, &userModel)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUserNotFound
			}
			return result.Error
		}

		if result := tx.Create(&transactionModel); result.Error != nil {
			return result.Error
		}

		result = tx.Model(&model.User{}).
			Where("net_id = ?", userModel.NetID).
			Updates(map[string]interface{}{
				"balance":    userModel.Balance + transactionModel.AmountInCents,
				"updated_at": r.timeProvider.Now(),
			})
		return result.Error
	})

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, err
		}
		return nil, r.mapError("creating transaction", err)
	}

	r.logger.Debug("Transaction persisted", map[string]any{
		"transaction_id": transactionModel.ID,
		"netid":          transactionModel.NetID,
	})

	return r.modelToEntity(&transactionModel), nil
}

// Delete removes a transaction and subtracts its amount from the owning
// user's cached balance atomically
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.First(&transactionModel, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrTransactionNotFound
			}
			return result.Error
		}

		var userModel model.User
		result = lockUserRow(tx, transactionModel.NetID, &userModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUserNotFound
			}
			return result.Error
		}

		if result := tx.Delete(&model.Transaction{}, id); result.Error != nil {
			return result.Error
		}

		result = tx.Model(&model.User{}).
			Where("net_id = ?", userModel.NetID).
			Updates(map[string]interface{}{
				"balance":    userModel.Balance - transactionModel.AmountInCents,
				"updated_at": r.timeProvider.Now(),
			})
		return result.Error
	})

	if err != nil {
		if errs.IsNotFoundError(err) {
			r.logger.Warn("Transaction not found for delete", map[string]any{
				"transaction_id": id,
			})
			return nil, err
		}
		return nil, r.mapError("deleting transaction", err)
	}

	return r.modelToEntity(&transactionModel), nil
}

// ListByNetID returns a user's transactions in reverse-chronological order
func (r *TransactionRepository) ListByNetID(ctx context.Context, netid string) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("net_id = ?", netid).
		Order("created_at DESC, id DESC").
		Find(&transactionModels)

	if result.Error != nil {
		return nil, r.mapError("listing transactions", result.Error)
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}

	return transactions, nil
}

// SumByNetID returns the sum of all transaction amounts for a user in cents
func (r *TransactionRepository) SumByNetID(ctx context.Context, netid string) (int64, error) {
	var sum int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("net_id = ?", netid).
		Select("COALESCE(SUM(amount_in_cents), 0)").
		Scan(&sum)

	if result.Error != nil {
		return 0, r.mapError("summing transactions", result.Error)
	}

	return sum, nil
}
