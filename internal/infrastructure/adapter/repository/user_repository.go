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
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.NewUser(userModel.NetID, userModel.Balance, r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to create user entity", map[string]any{
			"netid": userModel.NetID,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create user entity: %s", errs.ErrInternalServer, err.Error())
	}

	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, netid string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"netid": netid,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"netid": netid,
		"error": err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrUserLocked
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByNetID retrieves a user by netid
func (r *UserRepository) GetByNetID(ctx context.Context, netid string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "net_id = ?", netid)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, netid)
	}

	return r.modelToEntity(&userModel)
}

// List returns all users ordered by netid
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("net_id").Find(&userModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, "")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		user, err := r.modelToEntity(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		NetID:     user.NetID,
		Balance:   user.Balance(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.NetID)
	}

	r.logger.Info("User created", map[string]any{
		"netid":   user.NetID,
		"balance": user.GetBalance(),
	})
	return nil
}

// UpdateBalance overwrites a user's cached balance. Used by the
// reconciliation job; request-path changes go through the transaction
// repository.
func (r *UserRepository) UpdateBalance(ctx context.Context, netid string, balanceInCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("net_id = ?", netid).
		Updates(map[string]interface{}{
			"balance":    balanceInCents,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, netid)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during balance update", map[string]any{
			"netid": netid,
		})
		return errs.ErrUserNotFound
	}

	return nil
}
