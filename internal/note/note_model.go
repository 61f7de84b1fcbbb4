package note

import (
	"time"

	"github.com/teamreg/backend/internal/models"
)

// NoteData is a free-text annotation attached to any entity via a
// (type, ref) pair.
type NoteData struct {
	models.Document
	Type      string `gorm:"column:type;index:idx_notes_ref;not null" json:"type"`
	Ref       string `gorm:"column:ref;index:idx_notes_ref;not null" json:"ref"`
	Text      string `gorm:"not null" json:"text"`
	CreatedBy string `gorm:"column:created_by" json:"createdBy"`

	UpdatedOn *time.Time `gorm:"column:updated_on" json:"updatedOn"`
}

func (NoteData) TableName() string { return "notes" }

type Note struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Ref       string     `json:"ref"`
	Text      string     `json:"text"`
	CreatedOn time.Time  `json:"createdOn"`
	CreatedBy string     `json:"createdBy"`
	UpdatedOn *time.Time `json:"updatedOn"`
}

type CreateNoteInput struct {
	Type string `mapstructure:"type" validate:"required,oneof=program event team registration user"`
	Ref  string `mapstructure:"ref" validate:"required"`
	Text string `mapstructure:"text" validate:"required"`
}

// ToNote maps the persistence document to its API shape; nil maps to nil.
func ToNote(n *NoteData) *Note {
	if n == nil {
		return nil
	}
	return &Note{
		ID:        n.ID,
		Type:      n.Type,
		Ref:       n.Ref,
		Text:      n.Text,
		CreatedOn: n.CreatedAt,
		CreatedBy: n.CreatedBy,
		UpdatedOn: n.UpdatedOn,
	}
}
