package tag

import (
	"github.com/teamreg/backend/internal/models"
)

// TagData is a label attachable to teams via their tagIds list.
type TagData struct {
	models.Document
	Label string `gorm:"not null" json:"label"`
	Color string `json:"color"`
}

func (TagData) TableName() string { return "tags" }

type Tag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type CreateTagInput struct {
	Label string `mapstructure:"label" validate:"required"`
	Color string `mapstructure:"color"`
}

type UpdateTagInput struct {
	Label *string `mapstructure:"label"`
	Color *string `mapstructure:"color"`
}

// ToTag maps the persistence document to its API shape; nil maps to nil.
func ToTag(t *TagData) *Tag {
	if t == nil {
		return nil
	}
	return &Tag{ID: t.ID, Label: t.Label, Color: t.Color}
}
