package event

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/shopspring/decimal"
	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/pkg/validator"
	"go.uber.org/zap"
)

// DataSource wraps the event repository with guard checks, mapping and a
// per-request load cache.
type DataSource struct {
	repo   Repository
	user   *auth.CurrentUser
	log    *zap.Logger
	loader *dataloader.Loader[string, *Event]
}

func NewDataSource(repo Repository, cu *auth.CurrentUser, log *zap.Logger) *DataSource {
	ds := &DataSource{repo: repo, user: cu, log: log.Named("ds.event")}
	ds.loader = dataloader.NewBatchedLoader(ds.batchEvents)
	return ds
}

func (ds *DataSource) batchEvents(ctx context.Context, ids []string) []*dataloader.Result[*Event] {
	results := make([]*dataloader.Result[*Event], len(ids))
	rows, err := ds.repo.FindByIDs(ids)
	if err != nil {
		for i := range results {
			results[i] = &dataloader.Result[*Event]{Error: err}
		}
		return results
	}
	byID := make(map[string]*EventData, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	for i, id := range ids {
		results[i] = &dataloader.Result[*Event]{Data: ToEvent(byID[id])}
	}
	return results
}

// GetEvent returns the event by id or a NotFound error. Soft-deleted events
// remain fetchable by direct id lookup.
func (ds *DataSource) GetEvent(ctx context.Context, id string) (*Event, error) {
	e, err := ds.loader.Load(ctx, id)()
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", id)
	}
	return e, nil
}

// GetEventOrNil resolves an event reference leniently; dangling ids yield
// nil.
func (ds *DataSource) GetEventOrNil(ctx context.Context, id string) (*Event, error) {
	return ds.loader.Load(ctx, id)()
}

func (ds *DataSource) GetEvents(ctx context.Context, filter Filter) ([]*Event, error) {
	rows, err := ds.repo.Find(filter)
	if err != nil {
		return nil, err
	}
	return mapEvents(rows), nil
}

func (ds *DataSource) GetEventsForProgram(ctx context.Context, programID string) ([]*Event, error) {
	rows, err := ds.repo.FindForProgram(programID)
	if err != nil {
		return nil, err
	}
	return mapEvents(rows), nil
}

func (ds *DataSource) GetEventsManagedBy(ctx context.Context, userID string) ([]*Event, error) {
	rows, err := ds.repo.FindManagedBy(userID)
	if err != nil {
		return nil, err
	}
	return mapEvents(rows), nil
}

func mapEvents(rows []EventData) []*Event {
	events := make([]*Event, len(rows))
	for i := range rows {
		events[i] = ToEvent(&rows[i])
	}
	return events
}

func (ds *DataSource) CreateEvent(ctx context.Context, input CreateEventInput) (*Event, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.ProgramManagerOf(input.ProgramID)); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	e := &EventData{
		Name:              input.Name,
		ProgramID:         input.ProgramID,
		Conditions:        input.Conditions,
		Date:              input.Date,
		RegistrationEnd:   input.RegistrationEnd,
		FoodOrderDeadline: input.FoodOrderDeadline,
		ManagersIDs:       []string{},
		FoodTypes:         FoodTypes{},
	}
	if err := ds.repo.Create(e); err != nil {
		return nil, err
	}
	ds.log.Info("event created", zap.String("id", e.ID), zap.String("program", e.ProgramID))
	return ToEvent(e), nil
}

func (ds *DataSource) UpdateEvent(ctx context.Context, id string, input UpdateEventInput) (*Event, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(id)); err != nil {
		return nil, err
	}
	e, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", id)
	}
	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Conditions != nil {
		e.Conditions = *input.Conditions
	}
	if input.Date != nil {
		e.Date = input.Date
	}
	if input.RegistrationEnd != nil {
		e.RegistrationEnd = input.RegistrationEnd
	}
	if input.FoodOrderDeadline != nil {
		e.FoodOrderDeadline = input.FoodOrderDeadline
	}
	if err := ds.repo.Save(e); err != nil {
		return nil, err
	}
	return ToEvent(e), nil
}

// DeleteEvent soft-deletes: registrations keep referencing the event and it
// stays fetchable by id.
func (ds *DataSource) DeleteEvent(ctx context.Context, id string) (*Event, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(id)); err != nil {
		return nil, err
	}
	existing, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("event", id)
	}
	e, err := ds.repo.SoftDelete(id, ds.user.ID)
	if err != nil {
		return nil, err
	}
	ds.log.Info("event deleted", zap.String("id", id))
	return ToEvent(e), nil
}

func (ds *DataSource) UndeleteEvent(ctx context.Context, id string) (*Event, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	existing, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("event", id)
	}
	e, err := ds.repo.Undelete(id)
	if err != nil {
		return nil, err
	}
	return ToEvent(e), nil
}

func (ds *DataSource) AddEventManager(ctx context.Context, eventID, userID string) (*Event, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(eventID)); err != nil {
		return nil, err
	}
	e, err := ds.repo.AddManager(eventID, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", eventID)
	}
	return ToEvent(e), nil
}

func (ds *DataSource) RemoveEventManager(ctx context.Context, eventID, userID string) (*Event, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(eventID)); err != nil {
		return nil, err
	}
	e, err := ds.repo.RemoveManager(eventID, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", eventID)
	}
	return ToEvent(e), nil
}

func (ds *DataSource) AddEventFoodType(ctx context.Context, eventID string, input FoodTypeInput) (*Event, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(eventID)); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	e, err := ds.repo.Mutate(eventID, func(e *EventData) {
		e.FoodTypes = append(e.FoodTypes, FoodType{
			ID:        uuid.NewString(),
			Name:      input.Name,
			UnitPrice: decimal.NewFromFloat(input.UnitPrice),
		})
	})
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", eventID)
	}
	return ToEvent(e), nil
}

func (ds *DataSource) UpdateEventFoodType(ctx context.Context, eventID, foodTypeID string, input FoodTypeInput) (*Event, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(eventID)); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	found := false
	e, err := ds.repo.Mutate(eventID, func(e *EventData) {
		for i := range e.FoodTypes {
			if e.FoodTypes[i].ID == foodTypeID {
				e.FoodTypes[i].Name = input.Name
				e.FoodTypes[i].UnitPrice = decimal.NewFromFloat(input.UnitPrice)
				found = true
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", eventID)
	}
	if !found {
		return nil, apperr.NotFound("food type", foodTypeID)
	}
	return ToEvent(e), nil
}

func (ds *DataSource) RemoveEventFoodType(ctx context.Context, eventID, foodTypeID string) (*Event, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(eventID)); err != nil {
		return nil, err
	}
	e, err := ds.repo.Mutate(eventID, func(e *EventData) {
		kept := make(FoodTypes, 0, len(e.FoodTypes))
		for _, ft := range e.FoodTypes {
			if ft.ID != foodTypeID {
				kept = append(kept, ft)
			}
		}
		e.FoodTypes = kept
	})
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", eventID)
	}
	return ToEvent(e), nil
}
