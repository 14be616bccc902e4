package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credits-service/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/credits-service/mocks/port/gateway"
	persistencemocks "github.com/amirhossein-jamali/credits-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Existing user is returned without creation", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := &entity.User{NetID: "jsmith2"}
		mockIdentity.EXPECT().IsMember(mock.Anything, "jsmith2").Return(true, nil).Once()
		mockUserRepo.EXPECT().GetByNetID(mock.Anything, "jsmith2").Return(existing, nil).Once()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 0)

		user, err := useCase.GetOrCreateUser(ctx, "jsmith2")

		require.NoError(t, err)
		assert.Same(t, existing, user)
	})

	t.Run("Missing user is lazily created", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockIdentity.EXPECT().IsMember(mock.Anything, "jsmith2").Return(true, nil).Once()
		mockUserRepo.EXPECT().GetByNetID(mock.Anything, "jsmith2").Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockUserRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.NetID == "jsmith2" && user.Balance() == 0
		})).Return(nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(transaction *entity.Transaction) bool {
			return transaction.NetID == "jsmith2" &&
				transaction.AmountInCents == 500 &&
				transaction.Description == entity.InitialBalanceDescription
		})).Return(&entity.Transaction{ID: 1}, nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 500)

		user, err := useCase.GetOrCreateUser(ctx, "jsmith2")

		require.NoError(t, err)
		assert.Equal(t, "jsmith2", user.NetID)
		assert.Equal(t, "5.00", user.GetBalance())
	})

	t.Run("Unknown netid creates nothing", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockIdentity.EXPECT().IsMember(mock.Anything, "nobody").Return(false, nil).Once()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 0)

		user, err := useCase.GetOrCreateUser(ctx, "nobody")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrNotMember)
	})

	t.Run("Identity service failure counts as not a member", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockIdentity.EXPECT().IsMember(mock.Anything, "jsmith2").Return(false, errors.New("service unavailable")).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 0)

		user, err := useCase.GetOrCreateUser(ctx, "jsmith2")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrNotMember)
	})

	t.Run("Empty netid", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 0)

		user, err := useCase.GetOrCreateUser(ctx, "   ")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidNetID)
	})

	t.Run("Concurrent creation falls back to fetch", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		winner := &entity.User{NetID: "jsmith2"}
		mockIdentity.EXPECT().IsMember(mock.Anything, "jsmith2").Return(true, nil).Once()
		mockUserRepo.EXPECT().GetByNetID(mock.Anything, "jsmith2").Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockUserRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()
		mockUserRepo.EXPECT().GetByNetID(mock.Anything, "jsmith2").Return(winner, nil).Once()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 0)

		user, err := useCase.GetOrCreateUser(ctx, "jsmith2")

		require.NoError(t, err)
		assert.Same(t, winner, user)
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful explicit creation", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockIdentity.EXPECT().IsMember(mock.Anything, "jsmith2").Return(true, nil).Once()
		mockUserRepo.EXPECT().GetByNetID(mock.Anything, "jsmith2").Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockUserRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(&entity.Transaction{ID: 1}, nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 0)

		user, err := useCase.CreateUser(ctx, "jsmith2")

		require.NoError(t, err)
		assert.Equal(t, "0.00", user.GetBalance())
	})

	t.Run("User already exists", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockIdentity.EXPECT().IsMember(mock.Anything, "jsmith2").Return(true, nil).Once()
		mockUserRepo.EXPECT().GetByNetID(mock.Anything, "jsmith2").Return(&entity.User{NetID: "jsmith2"}, nil).Once()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 0)

		user, err := useCase.CreateUser(ctx, "jsmith2")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Repository failure is passed through", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockIdentity.EXPECT().IsMember(mock.Anything, "jsmith2").Return(true, nil).Once()
		mockUserRepo.EXPECT().GetByNetID(mock.Anything, "jsmith2").Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockUserRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(databaseError).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 0)

		user, err := useCase.CreateUser(ctx, "jsmith2")

		assert.Nil(t, user)
		assert.Equal(t, databaseError, err)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := persistencemocks.NewMockUserRepository(t)
	mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
	mockIdentity := gatewaymocks.NewMockIdentityVerifier(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	users := []*entity.User{{NetID: "asmith1"}, {NetID: "jsmith2"}}
	mockUserRepo.EXPECT().List(mock.Anything).Return(users, nil).Once()

	useCase := NewUserUseCase(mockUserRepo, mockTxRepo, mockIdentity, mockTime, mockLogger, 0)

	result, err := useCase.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, result)
}
