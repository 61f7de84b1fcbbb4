package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teamreg/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&TeamData{}))
	return db
}

func seedTeam(t *testing.T, repo Repository, name string, coaches, tags []string) *TeamData {
	t.Helper()
	td := &TeamData{
		Name:       name,
		Address:    Address{Name: "Acme", Street: "1 Main", City: "X", Zip: "000", CountryCode: "SK", ContactName: "A", Email: "a@b.c", Phone: "+421900000000"},
		CoachesIDs: models.IDList(coaches),
		TagIDs:     models.IDList(tags),
	}
	require.NoError(t, repo.Create(td))
	return td
}

func TestTeamRepository(t *testing.T) {
	t.Run("soft delete keeps the row fetchable by id", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		td := seedTeam(t, repo, "Falcons", []string{"u1"}, []string{})

		deleted, err := repo.SoftDelete(td.ID, "admin")
		require.NoError(t, err)
		require.NotNil(t, deleted.DeletedOn)
		assert.Equal(t, "admin", deleted.DeletedBy)

		got, err := repo.FindByID(td.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.NotNil(t, got.DeletedOn)
	})

	t.Run("isActive filter excludes soft-deleted teams", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		alive := seedTeam(t, repo, "Alive", []string{"u1"}, []string{})
		gone := seedTeam(t, repo, "Gone", []string{"u1"}, []string{})
		_, err := repo.SoftDelete(gone.ID, "admin")
		require.NoError(t, err)

		active := true
		rows, err := repo.Find(Filter{IsActive: &active})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, alive.ID, rows[0].ID)

		all, err := repo.Find(Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("hasTags requires every listed tag", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		both := seedTeam(t, repo, "Both", []string{"u1"}, []string{"tag1", "tag2"})
		seedTeam(t, repo, "One", []string{"u1"}, []string{"tag1"})

		rows, err := repo.Find(Filter{HasTags: []string{"tag1", "tag2"}})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, both.ID, rows[0].ID)
	})

	t.Run("tag add is idempotent, remove of absent tag is a no-op", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		td := seedTeam(t, repo, "Falcons", []string{"u1"}, []string{})

		first, err := repo.AddTag(td.ID, "tag1")
		require.NoError(t, err)
		assert.Equal(t, []string{"tag1"}, []string(first.TagIDs))

		second, err := repo.AddTag(td.ID, "tag1")
		require.NoError(t, err)
		assert.Equal(t, []string{"tag1"}, []string(second.TagIDs))

		same, err := repo.RemoveTag(td.ID, "nope")
		require.NoError(t, err)
		assert.Equal(t, []string{"tag1"}, []string(same.TagIDs))

		empty, err := repo.RemoveTag(td.ID, "tag1")
		require.NoError(t, err)
		assert.Empty(t, []string(empty.TagIDs))
	})

	t.Run("coach membership queries", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		mine := seedTeam(t, repo, "Mine", []string{"u1", "u2"}, []string{})
		seedTeam(t, repo, "Other", []string{"u3"}, []string{})

		rows, err := repo.FindCoachedBy("u1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, mine.ID, rows[0].ID)
	})

	t.Run("missing id reads as nil, not an error", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		got, err := repo.FindByID("missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
