package event

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
	"github.com/teamreg/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&EventData{}))
	return db
}

func TestEventDataSource(t *testing.T) {
	ctx := context.Background()
	admin := &auth.CurrentUser{ID: "admin-1", IsAdmin: true}

	t.Run("program manager may create events of their program", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		mgr := &auth.CurrentUser{ID: "u1", ManagedPrograms: models.IDList{"prog-1"}}
		ds := NewDataSource(repo, mgr, zap.NewNop())

		created, err := ds.CreateEvent(ctx, CreateEventInput{Name: "Regional", ProgramID: "prog-1"})
		require.NoError(t, err)
		assert.Equal(t, "prog-1", created.ProgramID)

		_, err = ds.CreateEvent(ctx, CreateEventInput{Name: "Foreign", ProgramID: "prog-2"})
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("soft delete and undelete", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		ds := NewDataSource(repo, admin, zap.NewNop())
		created, err := ds.CreateEvent(ctx, CreateEventInput{Name: "Regional", ProgramID: "prog-1"})
		require.NoError(t, err)

		deleted, err := ds.DeleteEvent(ctx, created.ID)
		require.NoError(t, err)
		assert.NotNil(t, deleted.DeletedOn)

		active := true
		rows, err := ds.GetEvents(ctx, Filter{IsActive: &active})
		require.NoError(t, err)
		assert.Empty(t, rows)

		restored, err := ds.UndeleteEvent(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, restored.DeletedOn)
	})

	t.Run("undelete is admin-only", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		adminDS := NewDataSource(repo, admin, zap.NewNop())
		created, err := adminDS.CreateEvent(ctx, CreateEventInput{Name: "Regional", ProgramID: "prog-1"})
		require.NoError(t, err)
		_, err = adminDS.DeleteEvent(ctx, created.ID)
		require.NoError(t, err)

		mgr := &auth.CurrentUser{ID: "u1", ManagedEvents: models.IDList{created.ID}}
		_, err = NewDataSource(repo, mgr, zap.NewNop()).UndeleteEvent(ctx, created.ID)
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("food type lifecycle", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		ds := NewDataSource(repo, admin, zap.NewNop())
		created, err := ds.CreateEvent(ctx, CreateEventInput{Name: "Regional", ProgramID: "prog-1"})
		require.NoError(t, err)

		withFood, err := ds.AddEventFoodType(ctx, created.ID, FoodTypeInput{Name: "Lunch", UnitPrice: 7.5})
		require.NoError(t, err)
		require.Len(t, withFood.FoodTypes, 1)
		ftID := withFood.FoodTypes[0].ID
		assert.NotEmpty(t, ftID)
		assert.InDelta(t, 7.5, withFood.FoodTypes[0].UnitPrice, 0.001)

		updated, err := ds.UpdateEventFoodType(ctx, created.ID, ftID, FoodTypeInput{Name: "Dinner", UnitPrice: 9})
		require.NoError(t, err)
		assert.Equal(t, "Dinner", updated.FoodTypes[0].Name)

		_, err = ds.UpdateEventFoodType(ctx, created.ID, "missing", FoodTypeInput{Name: "X", UnitPrice: 1})
		assert.True(t, apperr.IsNotFound(err))

		removed, err := ds.RemoveEventFoodType(ctx, created.ID, ftID)
		require.NoError(t, err)
		assert.Empty(t, removed.FoodTypes)
	})

	t.Run("program filter", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		ds := NewDataSource(repo, admin, zap.NewNop())
		a, err := ds.CreateEvent(ctx, CreateEventInput{Name: "A", ProgramID: "prog-1"})
		require.NoError(t, err)
		_, err = ds.CreateEvent(ctx, CreateEventInput{Name: "B", ProgramID: "prog-2"})
		require.NoError(t, err)

		progID := "prog-1"
		rows, err := ds.GetEvents(ctx, Filter{ProgramID: &progID})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, a.ID, rows[0].ID)
	})
}
