package gql

import (
	"context"
	"fmt"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/internal/event"
	"github.com/teamreg/backend/internal/invoice"
	"github.com/teamreg/backend/internal/models"
	"github.com/teamreg/backend/internal/note"
	"github.com/teamreg/backend/internal/program"
	"github.com/teamreg/backend/internal/registration"
	"github.com/teamreg/backend/internal/settings"
	"github.com/teamreg/backend/internal/tag"
	"github.com/teamreg/backend/internal/team"
	"github.com/teamreg/backend/internal/user"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.UserData{}, &tag.TagData{}, &team.TeamData{}, &program.ProgramData{},
		&event.EventData{}, &invoice.InvoiceItemData{}, &registration.RegistrationData{},
		&note.NoteData{}, &settings.SettingsData{},
	))
	return db
}

func execute(t *testing.T, db *gorm.DB, cu *auth.CurrentUser, query string) *graphql.Result {
	t.Helper()
	schema, err := NewSchema()
	require.NoError(t, err)

	ds := NewDataSources(db, cu, zap.NewNop())
	ctx := WithRequest(context.Background(), ds, cu, "Europe/Bratislava")
	return graphql.Do(graphql.Params{Schema: schema, RequestString: query, Context: ctx})
}

func TestSchema(t *testing.T) {
	t.Run("schema builds", func(t *testing.T) {
		_, err := NewSchema()
		require.NoError(t, err)
	})

	t.Run("query resolves nested relations lazily", func(t *testing.T) {
		db := newTestDB(t)
		coach := &user.UserData{Username: "jane@example.com", FirstName: "Jane", LastName: "Doe"}
		require.NoError(t, db.Create(coach).Error)
		td := &team.TeamData{Name: "Falcons", CoachesIDs: models.IDList{coach.ID}, TagIDs: models.IDList{}}
		require.NoError(t, db.Create(td).Error)

		result := execute(t, db, &auth.CurrentUser{ID: coach.ID}, fmt.Sprintf(`{
			getTeam(id: %q) {
				name
				coaches { username }
				tags { label }
			}
		}`, td.ID))
		require.Empty(t, result.Errors)

		data := result.Data.(map[string]interface{})
		teamData := data["getTeam"].(map[string]interface{})
		assert.Equal(t, "Falcons", teamData["name"])
		coaches := teamData["coaches"].([]interface{})
		require.Len(t, coaches, 1)
		assert.Equal(t, "jane@example.com", coaches[0].(map[string]interface{})["username"])
		assert.Empty(t, teamData["tags"])
	})

	t.Run("dangling coach references degrade to an empty list", func(t *testing.T) {
		db := newTestDB(t)
		td := &team.TeamData{Name: "Falcons", CoachesIDs: models.IDList{"gone"}, TagIDs: models.IDList{}}
		require.NoError(t, db.Create(td).Error)

		result := execute(t, db, &auth.CurrentUser{ID: "u1"}, fmt.Sprintf(
			`{ getTeam(id: %q) { coaches { id } } }`, td.ID))
		require.Empty(t, result.Errors)
		teamData := result.Data.(map[string]interface{})["getTeam"].(map[string]interface{})
		assert.Empty(t, teamData["coaches"])
	})

	t.Run("unauthorized mutation surfaces in the error list", func(t *testing.T) {
		db := newTestDB(t)
		result := execute(t, db, nil, `mutation {
			createProgram(input: {name: "FLL 2026"}) { id }
		}`)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "not signed in")
	})

	t.Run("mutation round-trips through the datasource", func(t *testing.T) {
		db := newTestDB(t)
		admin := &auth.CurrentUser{ID: "admin-1", IsAdmin: true}
		result := execute(t, db, admin, `mutation {
			createProgram(input: {name: "FLL 2026", description: "Season"}) {
				name
				active
				managers { id }
			}
		}`)
		require.Empty(t, result.Errors)
		prog := result.Data.(map[string]interface{})["createProgram"].(map[string]interface{})
		assert.Equal(t, "FLL 2026", prog["name"])
		assert.Equal(t, true, prog["active"])
		assert.Empty(t, prog["managers"])
	})

	t.Run("getSettings works anonymously", func(t *testing.T) {
		db := newTestDB(t)
		result := execute(t, db, nil, `{ getSettings { id } }`)
		require.Empty(t, result.Errors)
		s := result.Data.(map[string]interface{})["getSettings"].(map[string]interface{})
		assert.Equal(t, "global", s["id"])
	})
}
