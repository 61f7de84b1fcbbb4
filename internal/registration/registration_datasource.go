package registration

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/internal/event"
	"github.com/teamreg/backend/internal/team"
	"github.com/teamreg/backend/pkg/validator"
	"go.uber.org/zap"
)

// DataSource owns the registration lifecycle: registering a team for an
// event, cancellation, switching events and the shipment/invoice/payment
// flags. It reads teams and events directly for its domain checks.
type DataSource struct {
	repo   Repository
	teams  team.Repository
	events event.Repository
	user   *auth.CurrentUser
	log    *zap.Logger
	loader *dataloader.Loader[string, *Registration]
}

func NewDataSource(repo Repository, teams team.Repository, events event.Repository, cu *auth.CurrentUser, log *zap.Logger) *DataSource {
	ds := &DataSource{repo: repo, teams: teams, events: events, user: cu, log: log.Named("ds.registration")}
	ds.loader = dataloader.NewBatchedLoader(ds.batchRegistrations)
	return ds
}

func (ds *DataSource) batchRegistrations(ctx context.Context, ids []string) []*dataloader.Result[*Registration] {
	results := make([]*dataloader.Result[*Registration], len(ids))
	rows, err := ds.repo.FindByIDs(ids)
	if err != nil {
		for i := range results {
			results[i] = &dataloader.Result[*Registration]{Error: err}
		}
		return results
	}
	byID := make(map[string]*RegistrationData, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	for i, id := range ids {
		results[i] = &dataloader.Result[*Registration]{Data: ToRegistration(byID[id])}
	}
	return results
}

func (ds *DataSource) GetRegistration(ctx context.Context, id string) (*Registration, error) {
	reg, err := ds.loader.Load(ctx, id)()
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperr.NotFound("registration", id)
	}
	return reg, nil
}

func (ds *DataSource) GetTeamRegistrations(ctx context.Context, teamID string) ([]*Registration, error) {
	rows, err := ds.repo.FindForTeam(teamID)
	if err != nil {
		return nil, err
	}
	return mapRegistrations(rows), nil
}

func (ds *DataSource) GetEventRegistrations(ctx context.Context, eventID string) ([]*Registration, error) {
	rows, err := ds.repo.FindForEvent(eventID)
	if err != nil {
		return nil, err
	}
	return mapRegistrations(rows), nil
}

func (ds *DataSource) GetProgramRegistrations(ctx context.Context, programID string) ([]*Registration, error) {
	rows, err := ds.repo.FindForProgram(programID)
	if err != nil {
		return nil, err
	}
	return mapRegistrations(rows), nil
}

func (ds *DataSource) GetEventRegistrationsCount(ctx context.Context, eventID string) (int64, error) {
	return ds.repo.CountForEvent(eventID)
}

func mapRegistrations(rows []RegistrationData) []*Registration {
	regs := make([]*Registration, len(rows))
	for i := range rows {
		regs[i] = ToRegistration(&rows[i])
	}
	return regs
}

// RegisterTeamForEvent creates a registration after the domain checks: the
// team and event must exist and be active, the registration deadline must
// not have passed (admins may register late), and no active registration
// for the same (team, event) pair may exist.
func (ds *DataSource) RegisterTeamForEvent(ctx context.Context, teamID, eventID string) (*Registration, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.CoachOf(teamID)); err != nil {
		return nil, err
	}

	t, err := ds.teams.FindByID(teamID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.DeletedOn != nil {
		return nil, apperr.NotFound("team", teamID)
	}
	e, err := ds.events.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	if e == nil || e.DeletedOn != nil {
		return nil, apperr.NotFound("event", eventID)
	}
	if e.RegistrationEnd != nil && time.Now().After(*e.RegistrationEnd) && !ds.user.IsAdmin {
		return nil, apperr.Validation("registration deadline has passed")
	}

	existing, err := ds.repo.FindActiveByTeamEvent(teamID, eventID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("team is already registered for this event")
	}

	reg := &RegistrationData{
		TeamID:    teamID,
		EventID:   eventID,
		ProgramID: e.ProgramID,
		CreatedBy: ds.user.ID,
	}
	if err := ds.repo.Create(reg); err != nil {
		return nil, err
	}
	ds.log.Info("team registered",
		zap.String("registration", reg.ID),
		zap.String("team", teamID),
		zap.String("event", eventID))
	return ToRegistration(reg), nil
}

// CancelRegistration marks the registration canceled. Once an invoice has
// been issued only an admin can cancel.
func (ds *DataSource) CancelRegistration(ctx context.Context, id string) (*Registration, error) {
	reg, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperr.NotFound("registration", id)
	}
	if err := auth.Authorize(ds.user, auth.Admin(), auth.CoachOf(reg.TeamID)); err != nil {
		return nil, err
	}
	if reg.CanceledOn != nil {
		return nil, apperr.Validation("registration is already canceled")
	}
	if reg.InvoiceIssuedOn != nil && !ds.user.IsAdmin {
		return nil, apperr.Validation("registration has been invoiced, contact an organizer to cancel")
	}

	now := time.Now()
	updated, err := ds.repo.Mutate(id, func(r *RegistrationData) {
		r.CanceledOn = &now
		r.CanceledBy = ds.user.ID
	})
	if err != nil {
		return nil, err
	}
	ds.log.Info("registration canceled", zap.String("id", id))
	return ToRegistration(updated), nil
}

// SwitchTeamEvent moves an active registration to another event of the
// same program.
func (ds *DataSource) SwitchTeamEvent(ctx context.Context, registrationID, newEventID string) (*Registration, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	reg, err := ds.repo.FindByID(registrationID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperr.NotFound("registration", registrationID)
	}
	if reg.CanceledOn != nil {
		return nil, apperr.Validation("cannot switch a canceled registration")
	}

	e, err := ds.events.FindByID(newEventID)
	if err != nil {
		return nil, err
	}
	if e == nil || e.DeletedOn != nil {
		return nil, apperr.NotFound("event", newEventID)
	}
	if e.ProgramID != reg.ProgramID {
		return nil, apperr.Validation("target event belongs to a different program")
	}
	existing, err := ds.repo.FindActiveByTeamEvent(reg.TeamID, newEventID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("team is already registered for the target event")
	}

	updated, err := ds.repo.Mutate(registrationID, func(r *RegistrationData) {
		r.EventID = newEventID
	})
	if err != nil {
		return nil, err
	}
	ds.log.Info("registration switched",
		zap.String("id", registrationID), zap.String("event", newEventID))
	return ToRegistration(updated), nil
}

// SetShipmentGroup records the shipment; an empty group clears it.
func (ds *DataSource) SetShipmentGroup(ctx context.Context, id string, group string) (*Registration, error) {
	reg, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperr.NotFound("registration", id)
	}
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(reg.EventID)); err != nil {
		return nil, err
	}
	now := time.Now()
	updated, err := ds.repo.Mutate(id, func(r *RegistrationData) {
		r.ShipmentGroup = group
		if group == "" {
			r.ShippedOn = nil
		} else {
			r.ShippedOn = &now
		}
	})
	if err != nil {
		return nil, err
	}
	return ToRegistration(updated), nil
}

func (ds *DataSource) SetInvoiced(ctx context.Context, id string, invoiced bool) (*Registration, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	return ds.setFlag(id, invoiced, func(r *RegistrationData, ts *time.Time) {
		r.InvoiceIssuedOn = ts
	})
}

func (ds *DataSource) SetPaid(ctx context.Context, id string, paid bool) (*Registration, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	return ds.setFlag(id, paid, func(r *RegistrationData, ts *time.Time) {
		r.PaidOn = ts
	})
}

func (ds *DataSource) setFlag(id string, on bool, apply func(r *RegistrationData, ts *time.Time)) (*Registration, error) {
	reg, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperr.NotFound("registration", id)
	}
	var ts *time.Time
	if on {
		now := time.Now()
		ts = &now
	}
	updated, err := ds.repo.Mutate(id, func(r *RegistrationData) {
		apply(r, ts)
	})
	if err != nil {
		return nil, err
	}
	return ToRegistration(updated), nil
}

// ConfirmTeamSize records the team size the coach confirmed for the event.
func (ds *DataSource) ConfirmTeamSize(ctx context.Context, id string, size int) (*Registration, error) {
	reg, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperr.NotFound("registration", id)
	}
	if err := auth.Authorize(ds.user, auth.Admin(), auth.CoachOf(reg.TeamID)); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, apperr.Validation("team size must be positive")
	}
	now := time.Now()
	updated, err := ds.repo.Mutate(id, func(r *RegistrationData) {
		r.TeamSize = size
		r.SizeConfirmedOn = &now
	})
	if err != nil {
		return nil, err
	}
	return ToRegistration(updated), nil
}

// UpdateFoodOrder replaces the registration's food order. Coaches can edit
// until the event's food order deadline; admins any time. Every item must
// reference a food type configured on the event.
func (ds *DataSource) UpdateFoodOrder(ctx context.Context, id string, input FoodOrderInput) (*Registration, error) {
	reg, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperr.NotFound("registration", id)
	}
	if err := auth.Authorize(ds.user, auth.Admin(), auth.CoachOf(reg.TeamID)); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	e, err := ds.events.FindByID(reg.EventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", reg.EventID)
	}
	if e.FoodOrderDeadline != nil && time.Now().After(*e.FoodOrderDeadline) && !ds.user.IsAdmin {
		return nil, apperr.Validation("food order deadline has passed")
	}
	known := make(map[string]bool, len(e.FoodTypes))
	for _, ft := range e.FoodTypes {
		known[ft.ID] = true
	}
	items := make([]FoodOrderItem, len(input.Items))
	for i, it := range input.Items {
		if !known[it.FoodTypeID] {
			return nil, apperr.Validation("unknown food type " + it.FoodTypeID)
		}
		items[i] = FoodOrderItem{FoodTypeID: it.FoodTypeID, Quantity: it.Quantity}
	}

	now := time.Now()
	updated, err := ds.repo.Mutate(id, func(r *RegistrationData) {
		r.FoodOrder = FoodOrder{Note: input.Note, Items: items, ModifiedOn: &now}
	})
	if err != nil {
		return nil, err
	}
	return ToRegistration(updated), nil
}
