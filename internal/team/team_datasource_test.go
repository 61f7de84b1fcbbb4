package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/internal/models"
)

// countingRepository counts batch reads so the per-request cache property
// can be asserted.
type countingRepository struct {
	Repository
	findByIDsCalls int
}

func (c *countingRepository) FindByIDs(ids []string) ([]TeamData, error) {
	c.findByIDsCalls++
	return c.Repository.FindByIDs(ids)
}

func TestTeamDataSource(t *testing.T) {
	ctx := context.Background()
	admin := &auth.CurrentUser{ID: "admin-1", IsAdmin: true}

	validInput := CreateTeamInput{
		Name:        "Falcons",
		OrgName:     "Acme",
		Street:      "1 Main",
		City:        "X",
		Zip:         "000",
		CountryCode: "SK",
		ContactName: "A",
		Email:       "a@b.c",
		Phone:       "+421900000000",
	}

	t.Run("createTeam seeds the caller as sole coach with no tags", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		caller := &auth.CurrentUser{ID: "u1"}
		ds := NewDataSource(repo, caller, zap.NewNop())

		created, err := ds.CreateTeam(ctx, validInput)
		require.NoError(t, err)
		assert.Equal(t, []string{"u1"}, created.CoachesIDs)
		assert.Empty(t, created.TagIDs)
	})

	t.Run("createTeam requires a signed-in user", func(t *testing.T) {
		ds := NewDataSource(NewRepository(newTestDB(t)), nil, zap.NewNop())
		_, err := ds.CreateTeam(ctx, validInput)
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("createTeam validates the input before writing", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		ds := NewDataSource(repo, &auth.CurrentUser{ID: "u1"}, zap.NewNop())

		bad := validInput
		bad.Email = "not-an-email"
		_, err := ds.CreateTeam(ctx, bad)
		assert.True(t, apperr.IsValidation(err))

		rows, err := repo.Find(Filter{})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("unauthorized update leaves the store untouched", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		td := seedTeam(t, repo, "Falcons", []string{"u1"}, []string{})

		stranger := &auth.CurrentUser{ID: "u9"}
		ds := NewDataSource(repo, stranger, zap.NewNop())

		name := "Hijacked"
		_, err := ds.UpdateTeam(ctx, td.ID, UpdateTeamInput{Name: &name})
		assert.True(t, apperr.IsUnauthorized(err))

		got, err := repo.FindByID(td.ID)
		require.NoError(t, err)
		assert.Equal(t, "Falcons", got.Name)
	})

	t.Run("coach can update their own team", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		td := seedTeam(t, repo, "Falcons", []string{"u1"}, []string{})

		coach := &auth.CurrentUser{ID: "u1", CoachingTeams: models.IDList{td.ID}}
		ds := NewDataSource(repo, coach, zap.NewNop())

		name := "Renamed"
		updated, err := ds.UpdateTeam(ctx, td.ID, UpdateTeamInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
	})

	t.Run("repeated lookups of one id issue a single store read", func(t *testing.T) {
		counting := &countingRepository{Repository: NewRepository(newTestDB(t))}
		td := seedTeam(t, counting, "Falcons", []string{"u1"}, []string{})
		ds := NewDataSource(counting, admin, zap.NewNop())

		first, err := ds.GetTeam(ctx, td.ID)
		require.NoError(t, err)
		second, err := ds.GetTeam(ctx, td.ID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, counting.findByIDsCalls)
	})

	t.Run("dangling reference resolves to nil, direct get errors", func(t *testing.T) {
		ds := NewDataSource(NewRepository(newTestDB(t)), admin, zap.NewNop())

		got, err := ds.GetTeamOrNil(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)

		_, err = ds.GetTeam(ctx, "missing")
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("delete is admin-only and soft", func(t *testing.T) {
		repo := NewRepository(newTestDB(t))
		td := seedTeam(t, repo, "Falcons", []string{"u1"}, []string{})

		coach := &auth.CurrentUser{ID: "u1", CoachingTeams: models.IDList{td.ID}}
		_, err := NewDataSource(repo, coach, zap.NewNop()).DeleteTeam(ctx, td.ID)
		assert.True(t, apperr.IsUnauthorized(err))

		deleted, err := NewDataSource(repo, admin, zap.NewNop()).DeleteTeam(ctx, td.ID)
		require.NoError(t, err)
		assert.NotNil(t, deleted.DeletedOn)
	})
}
