// event/event_model.go
package event

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teamreg/backend/internal/models"
)

// FoodType is one orderable meal option configured on an event.
type FoodType struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// FoodTypes is the JSON column holding an event's food configuration.
type FoodTypes []FoodType

func (FoodTypes) GormDataType() string { return "json" }

func (f FoodTypes) Value() (driver.Value, error) {
	if f == nil {
		f = FoodTypes{}
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *FoodTypes) Scan(src interface{}) error {
	if src == nil {
		*f = FoodTypes{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("FoodTypes: expected []byte or string, got %T", src)
	}
}

// EventData is the persistence shape of an event. An event belongs to
// exactly one program.
type EventData struct {
	models.Document
	Name       string `gorm:"not null;index" json:"name"`
	ProgramID  string `gorm:"column:program_id;index;not null" json:"programId"`
	Conditions string `json:"conditions"`

	Date            *time.Time `json:"date"`
	RegistrationEnd *time.Time `gorm:"column:registration_end" json:"registrationEnd"`

	ManagersIDs models.IDList `gorm:"column:managers_ids" json:"managersIds"`

	FoodTypes         FoodTypes  `gorm:"column:food_types" json:"foodTypes"`
	FoodOrderDeadline *time.Time `gorm:"column:food_order_deadline" json:"foodOrderDeadline"`

	DeletedOn *time.Time `gorm:"column:deleted_on" json:"deletedOn"`
	DeletedBy string     `gorm:"column:deleted_by" json:"deletedBy"`
}

func (EventData) TableName() string { return "events" }

// Event is the API shape. Program, managers, registrations and invoice
// items resolve lazily via the owning datasources.
type Event struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	ProgramID       string     `json:"programId"`
	Conditions      string     `json:"conditions"`
	Date            *time.Time `json:"date"`
	RegistrationEnd *time.Time `json:"registrationEnd"`
	ManagersIDs     []string   `json:"managersIds"`

	FoodTypes         []FoodTypeView `json:"foodTypes"`
	FoodOrderDeadline *time.Time     `json:"foodOrderDeadline"`

	DeletedOn *time.Time `json:"deletedOn"`
	DeletedBy string     `json:"deletedBy"`
}

// FoodTypeView carries the price as a plain float for the wire.
type FoodTypeView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

type CreateEventInput struct {
	Name              string     `mapstructure:"name" validate:"required"`
	ProgramID         string     `mapstructure:"programId" validate:"required"`
	Conditions        string     `mapstructure:"conditions"`
	Date              *time.Time `mapstructure:"date"`
	RegistrationEnd   *time.Time `mapstructure:"registrationEnd"`
	FoodOrderDeadline *time.Time `mapstructure:"foodOrderDeadline"`
}

type UpdateEventInput struct {
	Name              *string    `mapstructure:"name"`
	Conditions        *string    `mapstructure:"conditions"`
	Date              *time.Time `mapstructure:"date"`
	RegistrationEnd   *time.Time `mapstructure:"registrationEnd"`
	FoodOrderDeadline *time.Time `mapstructure:"foodOrderDeadline"`
}

type FoodTypeInput struct {
	Name      string  `mapstructure:"name" validate:"required"`
	UnitPrice float64 `mapstructure:"unitPrice" validate:"gte=0"`
}

// Filter narrows getEvents; fields combine with AND semantics.
type Filter struct {
	IsActive  *bool
	ProgramID *string
}
