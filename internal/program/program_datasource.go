package program

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/pkg/validator"
	"go.uber.org/zap"
)

// DataSource wraps the program repository with guard checks, mapping and a
// per-request load cache.
type DataSource struct {
	repo   Repository
	user   *auth.CurrentUser
	log    *zap.Logger
	loader *dataloader.Loader[string, *Program]
}

func NewDataSource(repo Repository, cu *auth.CurrentUser, log *zap.Logger) *DataSource {
	ds := &DataSource{repo: repo, user: cu, log: log.Named("ds.program")}
	ds.loader = dataloader.NewBatchedLoader(ds.batchPrograms)
	return ds
}

func (ds *DataSource) batchPrograms(ctx context.Context, ids []string) []*dataloader.Result[*Program] {
	ds.log.Debug("batch load", zap.Int("count", len(ids)))
	results := make([]*dataloader.Result[*Program], len(ids))
	rows, err := ds.repo.FindByIDs(ids)
	if err != nil {
		for i := range results {
			results[i] = &dataloader.Result[*Program]{Error: err}
		}
		return results
	}
	byID := make(map[string]*ProgramData, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	for i, id := range ids {
		results[i] = &dataloader.Result[*Program]{Data: ToProgram(byID[id])}
	}
	return results
}

func (ds *DataSource) GetProgram(ctx context.Context, id string) (*Program, error) {
	p, err := ds.loader.Load(ctx, id)()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("program", id)
	}
	return p, nil
}

// GetProgramOrNil resolves a program reference leniently; dangling ids
// yield nil.
func (ds *DataSource) GetProgramOrNil(ctx context.Context, id string) (*Program, error) {
	return ds.loader.Load(ctx, id)()
}

func (ds *DataSource) GetPrograms(ctx context.Context, filter Filter) ([]*Program, error) {
	rows, err := ds.repo.Find(filter)
	if err != nil {
		return nil, err
	}
	programs := make([]*Program, len(rows))
	for i := range rows {
		programs[i] = ToProgram(&rows[i])
	}
	return programs, nil
}

func (ds *DataSource) GetProgramsManagedBy(ctx context.Context, userID string) ([]*Program, error) {
	rows, err := ds.repo.FindManagedBy(userID)
	if err != nil {
		return nil, err
	}
	programs := make([]*Program, len(rows))
	for i := range rows {
		programs[i] = ToProgram(&rows[i])
	}
	return programs, nil
}

func (ds *DataSource) CreateProgram(ctx context.Context, input CreateProgramInput) (*Program, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	p := &ProgramData{
		Name:        input.Name,
		Description: input.Description,
		Conditions:  input.Conditions,
		Active:      true,
		ManagersIDs: []string{},
	}
	if err := ds.repo.Create(p); err != nil {
		return nil, err
	}
	ds.log.Info("program created", zap.String("id", p.ID))
	return ToProgram(p), nil
}

func (ds *DataSource) UpdateProgram(ctx context.Context, id string, input UpdateProgramInput) (*Program, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.ProgramManagerOf(id)); err != nil {
		return nil, err
	}
	p, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("program", id)
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Conditions != nil {
		p.Conditions = *input.Conditions
	}
	if input.Active != nil {
		p.Active = *input.Active
	}
	if err := ds.repo.Save(p); err != nil {
		return nil, err
	}
	return ToProgram(p), nil
}

// DeleteProgram hard-deletes a program. Only programs with no events can
// go; anything referenced by events must stay resolvable.
func (ds *DataSource) DeleteProgram(ctx context.Context, id string) (*Program, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.ProgramManagerOf(id)); err != nil {
		return nil, err
	}
	p, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("program", id)
	}
	events, err := ds.repo.CountEvents(id)
	if err != nil {
		return nil, err
	}
	if events > 0 {
		return nil, apperr.Validation("program still has events")
	}
	if err := ds.repo.Delete(id); err != nil {
		return nil, err
	}
	ds.log.Info("program deleted", zap.String("id", id))
	return ToProgram(p), nil
}

func (ds *DataSource) AddProgramManager(ctx context.Context, programID, userID string) (*Program, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.ProgramManagerOf(programID)); err != nil {
		return nil, err
	}
	p, err := ds.repo.AddManager(programID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("program", programID)
	}
	return ToProgram(p), nil
}

func (ds *DataSource) RemoveProgramManager(ctx context.Context, programID, userID string) (*Program, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.ProgramManagerOf(programID)); err != nil {
		return nil, err
	}
	p, err := ds.repo.RemoveManager(programID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("program", programID)
	}
	return ToProgram(p), nil
}
