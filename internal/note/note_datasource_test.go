package note

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
	require.NoError(t, db.AutoMigrate(&NoteData{}))
	return db
}

func TestNoteDataSource(t *testing.T) {
	ctx := context.Background()
	admin := &auth.CurrentUser{ID: "admin-1", IsAdmin: true}
	input := CreateNoteInput{Type: "team", Ref: "team-1", Text: "paid in cash"}

	t.Run("notes are admin-only", func(t *testing.T) {
		ds := NewDataSource(NewRepository(newTestDB(t)), &auth.CurrentUser{ID: "u1"}, zap.NewNop())
		_, err := ds.CreateNote(ctx, input)
		assert.True(t, apperr.IsUnauthorized(err))
		_, err = ds.GetNotes(ctx, "team", "team-1")
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("create and fetch by ref", func(t *testing.T) {
		ds := NewDataSource(NewRepository(newTestDB(t)), admin, zap.NewNop())
		created, err := ds.CreateNote(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", created.CreatedBy)

		notes, err := ds.GetNotes(ctx, "team", "team-1")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "paid in cash", notes[0].Text)

		other, err := ds.GetNotes(ctx, "team", "team-2")
		require.NoError(t, err)
		assert.Empty(t, other)
	})

	t.Run("ref type is restricted to known entities", func(t *testing.T) {
		ds := NewDataSource(NewRepository(newTestDB(t)), admin, zap.NewNop())
		bad := input
		bad.Type = "spaceship"
		_, err := ds.CreateNote(ctx, bad)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("only the author or an admin may edit", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		author := &auth.CurrentUser{ID: "admin-2", IsAdmin: true}
		created, err := NewDataSource(repo, author, zap.NewNop()).CreateNote(ctx, input)
		require.NoError(t, err)

		edited, err := NewDataSource(repo, author, zap.NewNop()).UpdateNoteText(ctx, created.ID, "updated")
		require.NoError(t, err)
		assert.Equal(t, "updated", edited.Text)
		assert.NotNil(t, edited.UpdatedOn)

		otherAdmin := NewDataSource(repo, admin, zap.NewNop())
		_, err = otherAdmin.UpdateNoteText(ctx, created.ID, "also fine")
		require.NoError(t, err)

		_, err = otherAdmin.DeleteNote(ctx, created.ID)
		require.NoError(t, err)
		_, err = otherAdmin.UpdateNoteText(ctx, created.ID, "gone")
		assert.True(t, apperr.IsNotFound(err))
	})
}
