package tag

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/pkg/validator"
	"go.uber.org/zap"
)

// DataSource for tags. Built per request; the loader cache lives and dies
// with the request.
type DataSource struct {
	repo   Repository
	user   *auth.CurrentUser
	log    *zap.Logger
	loader *dataloader.Loader[string, *Tag]
}

func NewDataSource(repo Repository, cu *auth.CurrentUser, log *zap.Logger) *DataSource {
	ds := &DataSource{repo: repo, user: cu, log: log.Named("ds.tag")}
	ds.loader = dataloader.NewBatchedLoader(ds.batchTags)
	return ds
}

func (ds *DataSource) batchTags(ctx context.Context, ids []string) []*dataloader.Result[*Tag] {
	results := make([]*dataloader.Result[*Tag], len(ids))
	rows, err := ds.repo.FindByIDs(ids)
	if err != nil {
		for i := range results {
			results[i] = &dataloader.Result[*Tag]{Error: err}
		}
		return results
	}
	byID := make(map[string]*TagData, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	for i, id := range ids {
		results[i] = &dataloader.Result[*Tag]{Data: ToTag(byID[id])}
	}
	return results
}

func (ds *DataSource) GetTag(ctx context.Context, id string) (*Tag, error) {
	t, err := ds.loader.Load(ctx, id)()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("tag", id)
	}
	return t, nil
}

// GetTagsByIDs resolves tag ids, dropping dangling references.
func (ds *DataSource) GetTagsByIDs(ctx context.Context, ids []string) ([]*Tag, error) {
	tags := make([]*Tag, 0, len(ids))
	for _, id := range ids {
		t, err := ds.loader.Load(ctx, id)()
		if err != nil {
			return nil, err
		}
		if t != nil {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

func (ds *DataSource) GetTags(ctx context.Context) ([]*Tag, error) {
	rows, err := ds.repo.FindAll()
	if err != nil {
		return nil, err
	}
	tags := make([]*Tag, len(rows))
	for i := range rows {
		tags[i] = ToTag(&rows[i])
	}
	return tags, nil
}

func (ds *DataSource) CreateTag(ctx context.Context, input CreateTagInput) (*Tag, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	t := &TagData{Label: input.Label, Color: input.Color}
	if err := ds.repo.Create(t); err != nil {
		return nil, err
	}
	return ToTag(t), nil
}

func (ds *DataSource) UpdateTag(ctx context.Context, id string, input UpdateTagInput) (*Tag, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	t, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("tag", id)
	}
	if input.Label != nil {
		t.Label = *input.Label
	}
	if input.Color != nil {
		t.Color = *input.Color
	}
	if err := ds.repo.Save(t); err != nil {
		return nil, err
	}
	return ToTag(t), nil
}

// DeleteTag hard-deletes a tag. Only unreferenced tags can go; a tag still
// attached to teams would leave dangling ids on purpose otherwise.
func (ds *DataSource) DeleteTag(ctx context.Context, id string) (*Tag, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	t, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("tag", id)
	}
	tagged, err := ds.repo.CountTeamsTagged(id)
	if err != nil {
		return nil, err
	}
	if tagged > 0 {
		return nil, apperr.Validation("tag is still attached to teams")
	}
	if err := ds.repo.Delete(id); err != nil {
		return nil, err
	}
	ds.log.Info("tag deleted", zap.String("id", id))
	return ToTag(t), nil
}
