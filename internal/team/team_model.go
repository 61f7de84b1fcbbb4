// team/team_model.go
package team

import (
	"time"

	"github.com/teamreg/backend/internal/models"
)

// Address holds the billing contact of a team.
type Address struct {
	Name        string `json:"name"`
	Street      string `json:"street"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	CountryCode string `json:"countryCode"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// TeamData is the persistence shape of a team. Coaches and tags are kept as
// inline id lists and resolved lazily on the API side.
type TeamData struct {
	models.Document
	Name       string        `gorm:"not null;index" json:"name"`
	Address    Address       `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	CoachesIDs models.IDList `gorm:"column:coaches_ids" json:"coachesIds"`
	TagIDs     models.IDList `gorm:"column:tag_ids" json:"tagIds"`

	DeletedOn *time.Time `gorm:"column:deleted_on" json:"deletedOn"`
	DeletedBy string     `gorm:"column:deleted_by" json:"deletedBy"`
}

func (TeamData) TableName() string { return "teams" }

// Team is the API shape. Coaches, tags and registrations resolve lazily via
// the owning datasources.
type Team struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Address    Address    `json:"address"`
	CoachesIDs []string   `json:"coachesIds"`
	TagIDs     []string   `json:"tagIds"`
	DeletedOn  *time.Time `json:"deletedOn"`
	DeletedBy  string     `json:"deletedBy"`
}

type CreateTeamInput struct {
	Name        string `mapstructure:"name" validate:"required"`
	OrgName     string `mapstructure:"orgName" validate:"required"`
	Street      string `mapstructure:"street" validate:"required"`
	City        string `mapstructure:"city" validate:"required"`
	Zip         string `mapstructure:"zip" validate:"required"`
	CountryCode string `mapstructure:"countryCode" validate:"required,iso3166_1_alpha2"`
	ContactName string `mapstructure:"contactName" validate:"required"`
	Email       string `mapstructure:"email" validate:"required,email"`
	Phone       string `mapstructure:"phone" validate:"required,e164"`
}

type UpdateTeamInput struct {
	Name        *string `mapstructure:"name"`
	OrgName     *string `mapstructure:"orgName"`
	Street      *string `mapstructure:"street"`
	City        *string `mapstructure:"city"`
	Zip         *string `mapstructure:"zip"`
	CountryCode *string `mapstructure:"countryCode" validate:"omitempty,iso3166_1_alpha2"`
	ContactName *string `mapstructure:"contactName"`
	Email       *string `mapstructure:"email" validate:"omitempty,email"`
	Phone       *string `mapstructure:"phone" validate:"omitempty,e164"`
}

// Filter narrows getTeams; fields combine with AND semantics. HasTags
// requires every listed tag to be present.
type Filter struct {
	IsActive *bool
	HasTags  []string
}
