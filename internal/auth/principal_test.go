package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The principal loader reads the aggregate tables directly, so the test
// sets them up with bare DDL instead of importing the aggregate packages.
func newPrincipalDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	for _, ddl := range []string{
		`CREATE TABLE users (id text primary key, username text, first_name text, last_name text, is_admin boolean, deleted_on datetime)`,
		`CREATE TABLE teams (id text primary key, coaches_ids text, deleted_on datetime)`,
		`CREATE TABLE events (id text primary key, managers_ids text, deleted_on datetime)`,
		`CREATE TABLE programs (id text primary key, managers_ids text)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func TestLoadCurrentUser(t *testing.T) {
	const uid = "5f1c2f9e-0000-0000-0000-000000000001"

	t.Run("derives role id-sets from relations", func(t *testing.T) {
		db := newPrincipalDB(t)
		require.NoError(t, db.Exec(
			`INSERT INTO users (id, username, first_name, last_name, is_admin) VALUES (?, 'jane@example.com', 'Jane', 'Doe', false)`, uid).Error)
		require.NoError(t, db.Exec(`INSERT INTO teams (id, coaches_ids) VALUES ('t1', ?)`, `["`+uid+`"]`).Error)
		require.NoError(t, db.Exec(`INSERT INTO teams (id, coaches_ids) VALUES ('t2', '["someone-else"]')`).Error)
		require.NoError(t, db.Exec(`INSERT INTO events (id, managers_ids) VALUES ('e1', ?)`, `["`+uid+`"]`).Error)
		require.NoError(t, db.Exec(`INSERT INTO programs (id, managers_ids) VALUES ('p1', ?)`, `["`+uid+`"]`).Error)

		cu, err := LoadCurrentUser(db, uid)
		require.NoError(t, err)
		require.NotNil(t, cu)
		assert.Equal(t, "jane@example.com", cu.Username)
		assert.False(t, cu.IsAdmin)
		assert.True(t, cu.IsCoachOf("t1"))
		assert.False(t, cu.IsCoachOf("t2"))
		assert.True(t, cu.IsEventManagerOf("e1"))
		assert.True(t, cu.IsProgramManagerOf("p1"))
	})

	t.Run("soft-deleted relations do not grant roles", func(t *testing.T) {
		db := newPrincipalDB(t)
		require.NoError(t, db.Exec(
			`INSERT INTO users (id, username, first_name, last_name, is_admin) VALUES (?, 'jane@example.com', 'Jane', 'Doe', false)`, uid).Error)
		require.NoError(t, db.Exec(
			`INSERT INTO teams (id, coaches_ids, deleted_on) VALUES ('t1', ?, CURRENT_TIMESTAMP)`, `["`+uid+`"]`).Error)

		cu, err := LoadCurrentUser(db, uid)
		require.NoError(t, err)
		require.NotNil(t, cu)
		assert.False(t, cu.IsCoachOf("t1"))
	})

	t.Run("missing or deleted user resolves to nil", func(t *testing.T) {
		db := newPrincipalDB(t)
		cu, err := LoadCurrentUser(db, uid)
		require.NoError(t, err)
		assert.Nil(t, cu)

		require.NoError(t, db.Exec(
			`INSERT INTO users (id, username, first_name, last_name, is_admin, deleted_on) VALUES (?, 'x@example.com', 'X', 'Y', false, CURRENT_TIMESTAMP)`, uid).Error)
		cu, err = LoadCurrentUser(db, uid)
		require.NoError(t, err)
		assert.Nil(t, cu)
	})
}
