package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credits-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid user", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("jsmith2", 1000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "jsmith2", user.NetID)
		assert.Equal(t, int64(1000), user.Balance())
		assert.Equal(t, "10.00", user.GetBalance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Netid is trimmed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("  jsmith2  ", 0, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "jsmith2", user.NetID)
	})

	t.Run("Empty netid", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("   ", 0, mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidNetID)
	})
}

func TestUserApplyAmount(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(createdAt).Once()

	user, err := NewUser("jsmith2", 1000, mockTime)
	require.NoError(t, err)

	mockTime.EXPECT().Now().Return(updatedAt).Times(2)

	// Credit
	user.ApplyAmount(550, mockTime)
	assert.Equal(t, "15.50", user.GetBalance())

	// Debit past zero is allowed
	user.ApplyAmount(-2000, mockTime)
	assert.Equal(t, "-4.50", user.GetBalance())
	assert.Equal(t, updatedAt, user.UpdatedAt)
}

func TestUserSetBalance(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime)

	user, err := NewUser("jsmith2", 0, mockTime)
	require.NoError(t, err)

	user.SetBalance(12345, mockTime)
	assert.Equal(t, int64(12345), user.Balance())
	assert.Equal(t, "123.45", user.GetBalance())
}
