package user

import (
	"time"

	"github.com/teamreg/backend/internal/models"
)

// UserData is the persistence shape of a user account. Username is the
// sign-in email address.
type UserData struct {
	models.Document
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `gorm:"column:is_admin;default:false" json:"isAdmin"`

	DeletedOn *time.Time `gorm:"column:deleted_on" json:"deletedOn"`
	DeletedBy string     `gorm:"column:deleted_by" json:"deletedBy"`
}

func (UserData) TableName() string { return "users" }

// User is the API shape. Relations (coachingTeams, managingEvents,
// managingPrograms) are not carried here; field resolvers fetch them from
// the owning datasources on demand.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone"`
	IsAdmin   bool       `json:"isAdmin"`
	CreatedOn time.Time  `json:"createdOn"`
	DeletedOn *time.Time `json:"deletedOn"`
}

// CreateUserInput is shared by the createUser mutation and REST signup.
type CreateUserInput struct {
	Username  string `json:"username" mapstructure:"username" validate:"required,email"`
	Password  string `json:"password" mapstructure:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" mapstructure:"firstName" validate:"required"`
	LastName  string `json:"lastName" mapstructure:"lastName" validate:"required"`
	Phone     string `json:"phone" mapstructure:"phone" validate:"omitempty,e164"`
}

type UpdateUserInput struct {
	Username  *string `mapstructure:"username" validate:"omitempty,email"`
	FirstName *string `mapstructure:"firstName"`
	LastName  *string `mapstructure:"lastName"`
	Phone     *string `mapstructure:"phone" validate:"omitempty,e164"`
}

// Filter narrows getUsers; fields combine with AND semantics.
type Filter struct {
	IsActive *bool
}
