package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/models"
)

func TestAuthorize(t *testing.T) {
	coach := &CurrentUser{ID: "u1", CoachingTeams: models.IDList{"t1"}}
	admin := &CurrentUser{ID: "u2", IsAdmin: true}

	t.Run("nil user fails before any guard runs", func(t *testing.T) {
		err := Authorize(nil, Admin())
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("passes when any guard accepts", func(t *testing.T) {
		assert.NoError(t, Authorize(coach, Admin(), CoachOf("t1")))
		assert.NoError(t, Authorize(admin, Admin(), CoachOf("t1")))
	})

	t.Run("fails with the first guard error when none accepts", func(t *testing.T) {
		err := Authorize(coach, Admin(), CoachOf("other"))
		assert.True(t, apperr.IsUnauthorized(err))
		assert.Contains(t, err.Error(), "admin required")
	})

	t.Run("no guards configured fails closed", func(t *testing.T) {
		err := Authorize(admin)
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("role guards", func(t *testing.T) {
		mgr := &CurrentUser{
			ID:              "u3",
			ManagedEvents:   models.IDList{"e1"},
			ManagedPrograms: models.IDList{"p1"},
		}
		assert.NoError(t, Authorize(mgr, EventManagerOf("e1")))
		assert.NoError(t, Authorize(mgr, ProgramManagerOf("p1")))
		assert.Error(t, Authorize(mgr, EventManagerOf("e2")))
		assert.NoError(t, Authorize(mgr, Self("u3")))
		assert.Error(t, Authorize(mgr, Self("u4")))
	})
}
