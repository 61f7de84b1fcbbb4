package team

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/pkg/validator"
	"go.uber.org/zap"
)

// DataSource wraps the team repository with guard checks, mapping and a
// per-request load cache.
type DataSource struct {
	repo   Repository
	user   *auth.CurrentUser
	log    *zap.Logger
	loader *dataloader.Loader[string, *Team]
}

func NewDataSource(repo Repository, cu *auth.CurrentUser, log *zap.Logger) *DataSource {
	ds := &DataSource{repo: repo, user: cu, log: log.Named("ds.team")}
	ds.loader = dataloader.NewBatchedLoader(ds.batchTeams)
	return ds
}

func (ds *DataSource) batchTeams(ctx context.Context, ids []string) []*dataloader.Result[*Team] {
	results := make([]*dataloader.Result[*Team], len(ids))
	rows, err := ds.repo.FindByIDs(ids)
	if err != nil {
		for i := range results {
			results[i] = &dataloader.Result[*Team]{Error: err}
		}
		return results
	}
	byID := make(map[string]*TeamData, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	for i, id := range ids {
		results[i] = &dataloader.Result[*Team]{Data: ToTeam(byID[id])}
	}
	return results
}

// GetTeam returns the team by id or a NotFound error. Soft-deleted teams
// remain fetchable by direct id lookup.
func (ds *DataSource) GetTeam(ctx context.Context, id string) (*Team, error) {
	t, err := ds.loader.Load(ctx, id)()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("team", id)
	}
	return t, nil
}

// GetTeamOrNil is the lazy-relation variant: a dangling reference resolves
// to nil instead of an error.
func (ds *DataSource) GetTeamOrNil(ctx context.Context, id string) (*Team, error) {
	return ds.loader.Load(ctx, id)()
}

func (ds *DataSource) GetTeams(ctx context.Context, filter Filter) ([]*Team, error) {
	rows, err := ds.repo.Find(filter)
	if err != nil {
		return nil, err
	}
	teams := make([]*Team, len(rows))
	for i := range rows {
		teams[i] = ToTeam(&rows[i])
	}
	return teams, nil
}

func (ds *DataSource) GetTeamsCoachedBy(ctx context.Context, userID string) ([]*Team, error) {
	rows, err := ds.repo.FindCoachedBy(userID)
	if err != nil {
		return nil, err
	}
	teams := make([]*Team, len(rows))
	for i := range rows {
		teams[i] = ToTeam(&rows[i])
	}
	return teams, nil
}

// CreateTeam creates a team with the caller as its first coach and no tags.
func (ds *DataSource) CreateTeam(ctx context.Context, input CreateTeamInput) (*Team, error) {
	if ds.user == nil {
		return nil, apperr.Unauthorized("not signed in")
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	t := &TeamData{
		Name: input.Name,
		Address: Address{
			Name:        input.OrgName,
			Street:      input.Street,
			City:        input.City,
			Zip:         input.Zip,
			CountryCode: input.CountryCode,
			ContactName: input.ContactName,
			Email:       input.Email,
			Phone:       input.Phone,
		},
		CoachesIDs: []string{ds.user.ID},
		TagIDs:     []string{},
	}
	if err := ds.repo.Create(t); err != nil {
		return nil, err
	}
	ds.log.Info("team created", zap.String("id", t.ID), zap.String("coach", ds.user.ID))
	return ToTeam(t), nil
}

func (ds *DataSource) UpdateTeam(ctx context.Context, id string, input UpdateTeamInput) (*Team, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.CoachOf(id)); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	t, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("team", id)
	}
	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.OrgName != nil {
		t.Address.Name = *input.OrgName
	}
	if input.Street != nil {
		t.Address.Street = *input.Street
	}
	if input.City != nil {
		t.Address.City = *input.City
	}
	if input.Zip != nil {
		t.Address.Zip = *input.Zip
	}
	if input.CountryCode != nil {
		t.Address.CountryCode = *input.CountryCode
	}
	if input.ContactName != nil {
		t.Address.ContactName = *input.ContactName
	}
	if input.Email != nil {
		t.Address.Email = *input.Email
	}
	if input.Phone != nil {
		t.Address.Phone = *input.Phone
	}
	if err := ds.repo.Save(t); err != nil {
		return nil, err
	}
	return ToTeam(t), nil
}

// DeleteTeam soft-deletes: the document keeps resolving by id so historic
// registrations stay intact.
func (ds *DataSource) DeleteTeam(ctx context.Context, id string) (*Team, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	existing, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("team", id)
	}
	t, err := ds.repo.SoftDelete(id, ds.user.ID)
	if err != nil {
		return nil, err
	}
	ds.log.Info("team deleted", zap.String("id", id))
	return ToTeam(t), nil
}

func (ds *DataSource) AddCoachToTeam(ctx context.Context, teamID, userID string) (*Team, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.CoachOf(teamID)); err != nil {
		return nil, err
	}
	t, err := ds.repo.AddCoach(teamID, userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("team", teamID)
	}
	return ToTeam(t), nil
}

func (ds *DataSource) RemoveCoachFromTeam(ctx context.Context, teamID, userID string) (*Team, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.CoachOf(teamID)); err != nil {
		return nil, err
	}
	t, err := ds.repo.RemoveCoach(teamID, userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("team", teamID)
	}
	return ToTeam(t), nil
}

func (ds *DataSource) AddTagToTeam(ctx context.Context, teamID, tagID string) (*Team, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	t, err := ds.repo.AddTag(teamID, tagID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("team", teamID)
	}
	return ToTeam(t), nil
}

func (ds *DataSource) RemoveTagFromTeam(ctx context.Context, teamID, tagID string) (*Team, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	t, err := ds.repo.RemoveTag(teamID, tagID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("team", teamID)
	}
	return ToTeam(t), nil
}
