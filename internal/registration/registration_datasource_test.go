package registration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
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
	"github.com/teamreg/backend/internal/team"
)

type fixture struct {
	db     *gorm.DB
	repo   Repository
	teams  team.Repository
	events event.Repository
	team   *team.TeamData
	event  *event.EventData
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&RegistrationData{}, &team.TeamData{}, &event.EventData{}))

	f := &fixture{
		db:     db,
		repo:   NewRepository(db),
		teams:  team.NewRepository(db),
		events: event.NewRepository(db),
	}

	f.team = &team.TeamData{Name: "Falcons", CoachesIDs: models.IDList{"coach-1"}, TagIDs: models.IDList{}}
	require.NoError(t, f.teams.Create(f.team))

	end := time.Now().Add(24 * time.Hour)
	f.event = &event.EventData{
		Name:            "Regional",
		ProgramID:       "prog-1",
		RegistrationEnd: &end,
	}
	require.NoError(t, f.events.Create(f.event))
	return f
}

func (f *fixture) coachDS() *DataSource {
	coach := &auth.CurrentUser{ID: "coach-1", CoachingTeams: models.IDList{f.team.ID}}
	return NewDataSource(f.repo, f.teams, f.events, coach, zap.NewNop())
}

func (f *fixture) adminDS() *DataSource {
	admin := &auth.CurrentUser{ID: "admin-1", IsAdmin: true}
	return NewDataSource(f.repo, f.teams, f.events, admin, zap.NewNop())
}

func TestRegisterTeamForEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("coach registers their team and the program is snapshotted", func(t *testing.T) {
		f := newFixture(t)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)
		assert.Equal(t, "prog-1", reg.ProgramID)
		assert.Equal(t, "coach-1", reg.CreatedBy)
	})

	t.Run("stranger cannot register someone else's team", func(t *testing.T) {
		f := newFixture(t)
		stranger := &auth.CurrentUser{ID: "u9"}
		ds := NewDataSource(f.repo, f.teams, f.events, stranger, zap.NewNop())
		_, err := ds.RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("duplicate active registration is rejected", func(t *testing.T) {
		f := newFixture(t)
		ds := f.coachDS()
		_, err := ds.RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		_, err = ds.RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("a canceled registration does not block re-registering", func(t *testing.T) {
		f := newFixture(t)
		ds := f.coachDS()
		reg, err := ds.RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)
		_, err = ds.CancelRegistration(ctx, reg.ID)
		require.NoError(t, err)

		_, err = ds.RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)
	})

	t.Run("deadline blocks coaches but not admins", func(t *testing.T) {
		f := newFixture(t)
		past := time.Now().Add(-time.Hour)
		_, err := f.events.Mutate(f.event.ID, func(e *event.EventData) {
			e.RegistrationEnd = &past
		})
		require.NoError(t, err)

		_, err = f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		assert.True(t, apperr.IsValidation(err))

		_, err = f.adminDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)
	})

	t.Run("soft-deleted event reads as not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.events.SoftDelete(f.event.ID, "admin-1")
		require.NoError(t, err)

		_, err = f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestCancelAndSwitch(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel records who and when", func(t *testing.T) {
		f := newFixture(t)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		canceled, err := f.coachDS().CancelRegistration(ctx, reg.ID)
		require.NoError(t, err)
		assert.NotNil(t, canceled.CanceledOn)
		assert.Equal(t, "coach-1", canceled.CanceledBy)

		_, err = f.coachDS().CancelRegistration(ctx, reg.ID)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("invoiced registration needs an admin to cancel", func(t *testing.T) {
		f := newFixture(t)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)
		_, err = f.adminDS().SetInvoiced(ctx, reg.ID, true)
		require.NoError(t, err)

		_, err = f.coachDS().CancelRegistration(ctx, reg.ID)
		assert.True(t, apperr.IsValidation(err))

		_, err = f.adminDS().CancelRegistration(ctx, reg.ID)
		require.NoError(t, err)
	})

	t.Run("switch moves the registration within the same program", func(t *testing.T) {
		f := newFixture(t)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		other := &event.EventData{Name: "Regional B", ProgramID: "prog-1"}
		require.NoError(t, f.events.Create(other))

		moved, err := f.adminDS().SwitchTeamEvent(ctx, reg.ID, other.ID)
		require.NoError(t, err)
		assert.Equal(t, other.ID, moved.EventID)
	})

	t.Run("switch refuses an event from another program", func(t *testing.T) {
		f := newFixture(t)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		foreign := &event.EventData{Name: "Other", ProgramID: "prog-2"}
		require.NoError(t, f.events.Create(foreign))

		_, err = f.adminDS().SwitchTeamEvent(ctx, reg.ID, foreign.ID)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("switch is admin-only", func(t *testing.T) {
		f := newFixture(t)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		_, err = f.coachDS().SwitchTeamEvent(ctx, reg.ID, f.event.ID)
		assert.True(t, apperr.IsUnauthorized(err))
	})
}

func TestRegistrationFlags(t *testing.T) {
	ctx := context.Background()

	t.Run("shipment group set and clear", func(t *testing.T) {
		f := newFixture(t)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		shipped, err := f.adminDS().SetShipmentGroup(ctx, reg.ID, "A")
		require.NoError(t, err)
		assert.Equal(t, "A", shipped.ShipmentGroup)
		assert.NotNil(t, shipped.ShippedOn)

		cleared, err := f.adminDS().SetShipmentGroup(ctx, reg.ID, "")
		require.NoError(t, err)
		assert.Empty(t, cleared.ShipmentGroup)
		assert.Nil(t, cleared.ShippedOn)
	})

	t.Run("team size confirmation", func(t *testing.T) {
		f := newFixture(t)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		_, err = f.coachDS().ConfirmTeamSize(ctx, reg.ID, 0)
		assert.True(t, apperr.IsValidation(err))

		confirmed, err := f.coachDS().ConfirmTeamSize(ctx, reg.ID, 8)
		require.NoError(t, err)
		assert.Equal(t, 8, confirmed.TeamSize)
		assert.NotNil(t, confirmed.SizeConfirmedOn)
	})

	t.Run("canceled registrations do not count toward the event", func(t *testing.T) {
		f := newFixture(t)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		count, err := f.adminDS().GetEventRegistrationsCount(ctx, f.event.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		_, err = f.adminDS().CancelRegistration(ctx, reg.ID)
		require.NoError(t, err)

		count, err = f.adminDS().GetEventRegistrationsCount(ctx, f.event.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})
}

func TestUpdateFoodOrder(t *testing.T) {
	ctx := context.Background()

	withFoodTypes := func(t *testing.T, f *fixture) event.FoodTypeView {
		t.Helper()
		deadline := time.Now().Add(24 * time.Hour)
		updated, err := f.events.Mutate(f.event.ID, func(e *event.EventData) {
			e.FoodTypes = event.FoodTypes{{ID: "ft-1", Name: "Lunch", UnitPrice: decimal.NewFromFloat(7.5)}}
			e.FoodOrderDeadline = &deadline
		})
		require.NoError(t, err)
		return event.ToEvent(updated).FoodTypes[0]
	}

	t.Run("coach orders food referencing event food types", func(t *testing.T) {
		f := newFixture(t)
		ft := withFoodTypes(t, f)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)
		assert.Nil(t, reg.FoodOrder, "no order placed yet")

		updated, err := f.coachDS().UpdateFoodOrder(ctx, reg.ID, FoodOrderInput{
			Note:  "no nuts",
			Items: []FoodOrderItemInput{{FoodTypeID: ft.ID, Quantity: 10}},
		})
		require.NoError(t, err)
		require.NotNil(t, updated.FoodOrder)
		assert.Equal(t, "no nuts", updated.FoodOrder.Note)
		require.Len(t, updated.FoodOrder.Items, 1)
		assert.Equal(t, 10, updated.FoodOrder.Items[0].Quantity)
		assert.NotNil(t, updated.FoodOrder.ModifiedOn)
	})

	t.Run("unknown food type is rejected", func(t *testing.T) {
		f := newFixture(t)
		withFoodTypes(t, f)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		_, err = f.coachDS().UpdateFoodOrder(ctx, reg.ID, FoodOrderInput{
			Items: []FoodOrderItemInput{{FoodTypeID: "nope", Quantity: 1}},
		})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("deadline blocks coaches but not admins", func(t *testing.T) {
		f := newFixture(t)
		ft := withFoodTypes(t, f)
		reg, err := f.coachDS().RegisterTeamForEvent(ctx, f.team.ID, f.event.ID)
		require.NoError(t, err)

		past := time.Now().Add(-time.Hour)
		_, err = f.events.Mutate(f.event.ID, func(e *event.EventData) {
			e.FoodOrderDeadline = &past
		})
		require.NoError(t, err)

		order := FoodOrderInput{Items: []FoodOrderItemInput{{FoodTypeID: ft.ID, Quantity: 2}}}
		_, err = f.coachDS().UpdateFoodOrder(ctx, reg.ID, order)
		assert.True(t, apperr.IsValidation(err))

		_, err = f.adminDS().UpdateFoodOrder(ctx, reg.ID, order)
		require.NoError(t, err)
	})
}
