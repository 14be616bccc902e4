package repository

import (
	"testing"

	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a GORM handle that builds SQL without executing it,
// so statement generation can be checked without a database.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=credits dbname=credits",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestLockUserRow(t *testing.T) {
	t.Run("Generated query locks the row", func(t *testing.T) {
		db := newDryRunDB(t)

		var userModel model.User
		stmt := lockUserRow(db, "jsmith2", &userModel).Statement

		sql := stmt.SQL.String()
		assert.Contains(t, sql, `"users"`)
		assert.Contains(t, sql, "FOR UPDATE")
		assert.Equal(t, []interface{}{"jsmith2", 1}, stmt.Vars)
	})
}
