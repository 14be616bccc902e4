package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credits-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Credit transaction", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		transaction, err := NewTransaction("jsmith2", "10.00", "Meeting attendance", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "jsmith2", transaction.NetID)
		assert.Equal(t, int64(1000), transaction.AmountInCents)
		assert.Equal(t, "10.00", transaction.Amount())
		assert.Equal(t, "Meeting attendance", transaction.Description)
		assert.Equal(t, fixedTime, transaction.CreatedAt)
		assert.True(t, transaction.IsCredit())
		assert.False(t, transaction.IsDebit())
	})

	t.Run("Debit transaction", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		transaction, err := NewTransaction("jsmith2", "-5.50", "Snack purchase", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-550), transaction.AmountInCents)
		assert.Equal(t, "-5.50", transaction.Amount())
		assert.True(t, transaction.IsDebit())
		assert.False(t, transaction.IsCredit())
	})

	t.Run("Empty netid", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		transaction, err := NewTransaction("", "10.00", "", mockTime)

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrInvalidNetID)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		transaction, err := NewTransaction("jsmith2", "ten dollars", "", mockTime)

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
