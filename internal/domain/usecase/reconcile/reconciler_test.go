package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/credits-service/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/credits-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUser(t *testing.T, netid string, balanceInCents int64) *entity.User {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	user, err := entity.NewUser(netid, balanceInCents, mockTime)
	require.NoError(t, err)
	return user
}

func TestReconcileAll(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Matching balances are left alone", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		user := testUser(t, "jsmith2", 1000)
		mockUserRepo.EXPECT().List(mock.Anything).Return([]*entity.User{user}, nil).Once()
		mockTxRepo.EXPECT().SumByNetID(mock.Anything, "jsmith2").Return(int64(1000), nil).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockTime.EXPECT().Since(fixedTime).Return(coreport.Duration(5 * time.Millisecond)).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		reconciler := NewReconciler(mockUserRepo, mockTxRepo, mockTime, mockLogger, time.Hour)

		err := reconciler.ReconcileAll(ctx)

		require.NoError(t, err)
		mockUserRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Drift is corrected from the ledger", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		user := testUser(t, "jsmith2", 1000)
		mockUserRepo.EXPECT().List(mock.Anything).Return([]*entity.User{user}, nil).Once()
		mockTxRepo.EXPECT().SumByNetID(mock.Anything, "jsmith2").Return(int64(1450), nil).Once()
		mockUserRepo.EXPECT().UpdateBalance(mock.Anything, "jsmith2", int64(1450)).Return(nil).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockTime.EXPECT().Since(fixedTime).Return(coreport.Duration(5 * time.Millisecond)).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		reconciler := NewReconciler(mockUserRepo, mockTxRepo, mockTime, mockLogger, time.Hour)

		err := reconciler.ReconcileAll(ctx)

		require.NoError(t, err)
	})

	t.Run("A failing user does not stop the pass", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		broken := testUser(t, "asmith1", 500)
		drifted := testUser(t, "jsmith2", 1000)

		databaseError := errors.New("database connection error")
		mockUserRepo.EXPECT().List(mock.Anything).Return([]*entity.User{broken, drifted}, nil).Once()
		mockTxRepo.EXPECT().SumByNetID(mock.Anything, "asmith1").Return(int64(0), databaseError).Once()
		mockTxRepo.EXPECT().SumByNetID(mock.Anything, "jsmith2").Return(int64(2000), nil).Once()
		mockUserRepo.EXPECT().UpdateBalance(mock.Anything, "jsmith2", int64(2000)).Return(nil).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockTime.EXPECT().Since(fixedTime).Return(coreport.Duration(5 * time.Millisecond)).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		reconciler := NewReconciler(mockUserRepo, mockTxRepo, mockTime, mockLogger, time.Hour)

		err := reconciler.ReconcileAll(ctx)

		assert.Equal(t, databaseError, err)
	})

	t.Run("Listing failure aborts the pass", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUserRepo.EXPECT().List(mock.Anything).Return(nil, databaseError).Once()

		reconciler := NewReconciler(mockUserRepo, mockTxRepo, mockTime, mockLogger, time.Hour)

		err := reconciler.ReconcileAll(ctx)

		assert.Equal(t, databaseError, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("Startup pass runs before the first tick", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		done := make(chan struct{})

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUserRepo.EXPECT().List(mock.Anything).RunAndReturn(func(context.Context) ([]*entity.User, error) {
			close(done)
			return nil, nil
		}).Once()
		mockTime.EXPECT().Since(fixedTime).Return(coreport.Duration(time.Millisecond)).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything)

		ctx, cancel := context.WithCancel(context.Background())
		reconciler := NewReconciler(mockUserRepo, mockTxRepo, mockTime, mockLogger, time.Hour)

		finished := make(chan struct{})
		go func() {
			reconciler.Run(ctx, true)
			close(finished)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("startup reconciliation pass never ran")
		}

		cancel()
		select {
		case <-finished:
		case <-time.After(time.Second):
			t.Fatal("reconciler did not stop on context cancellation")
		}
	})
}
