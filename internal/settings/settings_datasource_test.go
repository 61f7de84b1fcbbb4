package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&SettingsData{}))
	return db
}

func TestSettingsDataSource(t *testing.T) {
	ctx := context.Background()
	admin := &auth.CurrentUser{ID: "admin-1", IsAdmin: true}

	t.Run("first read creates the singleton, anonymously readable", func(t *testing.T) {
		ds := NewDataSource(NewRepository(newTestDB(t)), nil, zap.NewNop())
		s, err := ds.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "global", s.ID)

		again, err := ds.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, s.ID, again.ID)
	})

	t.Run("update is admin-only and partial", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))

		email := "org@example.com"
		_, err := NewDataSource(repo, &auth.CurrentUser{ID: "u1"}, zap.NewNop()).
			UpdateSettings(ctx, UpdateSettingsInput{SysEmail: &email})
		assert.True(t, apperr.IsUnauthorized(err))

		ds := NewDataSource(repo, admin, zap.NewNop())
		url := "https://example.com/privacy"
		updated, err := ds.UpdateSettings(ctx, UpdateSettingsInput{SysEmail: &email, PrivacyPolicyURL: &url})
		require.NoError(t, err)
		assert.Equal(t, email, updated.SysEmail)
		assert.Equal(t, url, updated.PrivacyPolicyURL)

		tos := "https://example.com/tos"
		updated, err = ds.UpdateSettings(ctx, UpdateSettingsInput{TermsOfUseURL: &tos})
		require.NoError(t, err)
		assert.Equal(t, email, updated.SysEmail)
		assert.Equal(t, tos, updated.TermsOfUseURL)
	})

	t.Run("malformed values are rejected", func(t *testing.T) {
		ds := NewDataSource(NewRepository(newTestDB(t)), admin, zap.NewNop())
		bad := "not-an-email"
		_, err := ds.UpdateSettings(ctx, UpdateSettingsInput{SysEmail: &bad})
		assert.True(t, apperr.IsValidation(err))
	})
}
