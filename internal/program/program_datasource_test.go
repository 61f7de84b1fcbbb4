package program

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
	"github.com/teamreg/backend/internal/event"
	"github.com/teamreg/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ProgramData{}, &event.EventData{}))
	return db
}

func TestProgramDataSource(t *testing.T) {
	ctx := context.Background()
	admin := &auth.CurrentUser{ID: "admin-1", IsAdmin: true}

	t.Run("create is admin-only and seeds an active program", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))

		_, err := NewDataSource(repo, &auth.CurrentUser{ID: "u1"}, zap.NewNop()).
			CreateProgram(ctx, CreateProgramInput{Name: "FLL 2026"})
		assert.True(t, apperr.IsUnauthorized(err))

		created, err := NewDataSource(repo, admin, zap.NewNop()).
			CreateProgram(ctx, CreateProgramInput{Name: "FLL 2026"})
		require.NoError(t, err)
		assert.True(t, created.Active)
		assert.Empty(t, created.ManagersIDs)
	})

	t.Run("unauthorized update leaves the store untouched", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewRepository(db)
		p := &ProgramData{Name: "FLL 2026"}
		require.NoError(t, repo.Create(p))

		stranger := &auth.CurrentUser{ID: "u9"}
		name := "Hijacked"
		_, err := NewDataSource(repo, stranger, zap.NewNop()).
			UpdateProgram(ctx, p.ID, UpdateProgramInput{Name: &name})
		assert.True(t, apperr.IsUnauthorized(err))

		got, err := repo.FindByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, "FLL 2026", got.Name)
	})

	t.Run("program manager may update", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		p := &ProgramData{Name: "FLL 2026", ManagersIDs: models.IDList{"u1"}}
		require.NoError(t, repo.Create(p))

		mgr := &auth.CurrentUser{ID: "u1", ManagedPrograms: models.IDList{p.ID}}
		desc := "Season 2026"
		updated, err := NewDataSource(repo, mgr, zap.NewNop()).
			UpdateProgram(ctx, p.ID, UpdateProgramInput{Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, "Season 2026", updated.Description)
	})

	t.Run("delete is hard but blocked while events exist", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewRepository(db)
		p := &ProgramData{Name: "FLL 2026"}
		require.NoError(t, repo.Create(p))
		require.NoError(t, db.Create(&event.EventData{Name: "Regional", ProgramID: p.ID}).Error)

		ds := NewDataSource(repo, admin, zap.NewNop())
		_, err := ds.DeleteProgram(ctx, p.ID)
		assert.True(t, apperr.IsValidation(err))

		require.NoError(t, db.Delete(&event.EventData{}, "program_id = ?", p.ID).Error)
		_, err = ds.DeleteProgram(ctx, p.ID)
		require.NoError(t, err)

		got, err := repo.FindByID(p.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("manager add and remove are idempotent", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		p := &ProgramData{Name: "FLL 2026"}
		require.NoError(t, repo.Create(p))
		ds := NewDataSource(repo, admin, zap.NewNop())

		first, err := ds.AddProgramManager(ctx, p.ID, "u1")
		require.NoError(t, err)
		second, err := ds.AddProgramManager(ctx, p.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, first.ManagersIDs, second.ManagersIDs)
		assert.Equal(t, []string{"u1"}, second.ManagersIDs)

		removed, err := ds.RemoveProgramManager(ctx, p.ID, "u1")
		require.NoError(t, err)
		assert.Empty(t, removed.ManagersIDs)
	})

	t.Run("isActive filter hides deactivated programs", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		ds := NewDataSource(repo, admin, zap.NewNop())
		live, err := ds.CreateProgram(ctx, CreateProgramInput{Name: "Live"})
		require.NoError(t, err)
		dead, err := ds.CreateProgram(ctx, CreateProgramInput{Name: "Retired"})
		require.NoError(t, err)

		off := false
		_, err = ds.UpdateProgram(ctx, dead.ID, UpdateProgramInput{Active: &off})
		require.NoError(t, err)

		active := true
		rows, err := ds.GetPrograms(ctx, Filter{IsActive: &active})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, live.ID, rows[0].ID)
	})
}
