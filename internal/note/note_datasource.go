package note

import (
	"context"
	"time"

	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/pkg/validator"
	"go.uber.org/zap"
)

// DataSource for entity annotations. Notes are an admin-facing surface.
type DataSource struct {
	repo Repository
	user *auth.CurrentUser
	log  *zap.Logger
}

func NewDataSource(repo Repository, cu *auth.CurrentUser, log *zap.Logger) *DataSource {
	return &DataSource{repo: repo, user: cu, log: log.Named("ds.note")}
}

func (ds *DataSource) GetNotes(ctx context.Context, noteType, ref string) ([]*Note, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	rows, err := ds.repo.FindByRef(noteType, ref)
	if err != nil {
		return nil, err
	}
	notes := make([]*Note, len(rows))
	for i := range rows {
		notes[i] = ToNote(&rows[i])
	}
	return notes, nil
}

func (ds *DataSource) CreateNote(ctx context.Context, input CreateNoteInput) (*Note, error) {
	if err := auth.Authorize(ds.user, auth.Admin()); err != nil {
		return nil, err
	}
	if err := validator.Struct(input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	n := &NoteData{
		Type:      input.Type,
		Ref:       input.Ref,
		Text:      input.Text,
		CreatedBy: ds.user.ID,
	}
	if err := ds.repo.Create(n); err != nil {
		return nil, err
	}
	return ToNote(n), nil
}

// UpdateNoteText edits a note's text; only the author or an admin may.
func (ds *DataSource) UpdateNoteText(ctx context.Context, id string, text string) (*Note, error) {
	n, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperr.NotFound("note", id)
	}
	if err := auth.Authorize(ds.user, auth.Admin(), auth.Self(n.CreatedBy)); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, apperr.Validation("note text must not be empty")
	}
	now := time.Now()
	n.Text = text
	n.UpdatedOn = &now
	if err := ds.repo.Save(n); err != nil {
		return nil, err
	}
	return ToNote(n), nil
}

func (ds *DataSource) DeleteNote(ctx context.Context, id string) (*Note, error) {
	n, err := ds.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperr.NotFound("note", id)
	}
	if err := auth.Authorize(ds.user, auth.Admin(), auth.Self(n.CreatedBy)); err != nil {
		return nil, err
	}
	if err := ds.repo.Delete(id); err != nil {
		return nil, err
	}
	ds.log.Info("note deleted", zap.String("id", id))
	return ToNote(n), nil
}
