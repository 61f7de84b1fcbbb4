// program/program_model.go
package program

import (
	"github.com/teamreg/backend/internal/models"
)

// ProgramData is the persistence shape of a program. Programs have no
// soft-delete marker; they are hard-deleted while unreferenced.
type ProgramData struct {
	models.Document
	Name        string        `gorm:"not null;uniqueIndex" json:"name"`
	Description string        `json:"description"`
	Conditions  string        `json:"conditions"`
	Active      bool          `gorm:"default:true" json:"active"`
	ManagersIDs models.IDList `gorm:"column:managers_ids" json:"managersIds"`
}

func (ProgramData) TableName() string { return "programs" }

// Program is the API shape. Managers, events, registrations and invoice
// items resolve lazily via the owning datasources.
type Program struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Conditions  string   `json:"conditions"`
	Active      bool     `json:"active"`
	ManagersIDs []string `json:"managersIds"`
}

type CreateProgramInput struct {
	Name        string `mapstructure:"name" validate:"required"`
	Description string `mapstructure:"description"`
	Conditions  string `mapstructure:"conditions"`
}

type UpdateProgramInput struct {
	Name        *string `mapstructure:"name"`
	Description *string `mapstructure:"description"`
	Conditions  *string `mapstructure:"conditions"`
	Active      *bool   `mapstructure:"active"`
}

type Filter struct {
	IsActive *bool
}

// ToProgram maps the persistence document to its API shape; nil maps to nil.
func ToProgram(p *ProgramData) *Program {
	if p == nil {
		return nil
	}
	return &Program{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Conditions:  p.Conditions,
		Active:      p.Active,
		ManagersIDs: p.ManagersIDs,
	}
}
