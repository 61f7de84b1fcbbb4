// registration/registration_model.go
package registration

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/teamreg/backend/internal/models"
)

// FoodOrderItem orders a quantity of one of the event's food types.
type FoodOrderItem struct {
	FoodTypeID string `json:"foodTypeId"`
	Quantity   int    `json:"quantity"`
}

// FoodOrder is the JSON column with a registration's food order state.
type FoodOrder struct {
	Note       string          `json:"note"`
	Items      []FoodOrderItem `json:"items"`
	ModifiedOn *time.Time      `json:"modifiedOn"`
}

func (FoodOrder) GormDataType() string { return "json" }

func (f FoodOrder) Value() (driver.Value, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *FoodOrder) Scan(src interface{}) error {
	if src == nil {
		*f = FoodOrder{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("FoodOrder: expected []byte or string, got %T", src)
	}
}

// RegistrationData links one team to one event. The program id is
// snapshotted at registration time so the link survives event edits. At
// most one active (non-canceled) registration may exist per (team, event)
// pair; the datasource enforces it.
type RegistrationData struct {
	models.Document
	TeamID    string `gorm:"column:team_id;index;not null" json:"teamId"`
	EventID   string `gorm:"column:event_id;index;not null" json:"eventId"`
	ProgramID string `gorm:"column:program_id;index;not null" json:"programId"`
	CreatedBy string `gorm:"column:created_by" json:"createdBy"`

	CanceledOn *time.Time `gorm:"column:canceled_on" json:"canceledOn"`
	CanceledBy string     `gorm:"column:canceled_by" json:"canceledBy"`

	ShippedOn     *time.Time `gorm:"column:shipped_on" json:"shippedOn"`
	ShipmentGroup string     `gorm:"column:shipment_group" json:"shipmentGroup"`

	InvoiceIssuedOn *time.Time `gorm:"column:invoice_issued_on" json:"invoiceIssuedOn"`
	PaidOn          *time.Time `gorm:"column:paid_on" json:"paidOn"`

	TeamSize        int        `gorm:"column:team_size" json:"teamSize"`
	SizeConfirmedOn *time.Time `gorm:"column:size_confirmed_on" json:"sizeConfirmedOn"`

	FoodOrder FoodOrder `gorm:"column:food_order" json:"foodOrder"`
}

func (RegistrationData) TableName() string { return "registrations" }

// Registration is the API shape. Team, event and program resolve lazily.
type Registration struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	EventID   string    `json:"eventId"`
	ProgramID string    `json:"programId"`
	CreatedOn time.Time `json:"createdOn"`
	CreatedBy string    `json:"createdBy"`

	CanceledOn *time.Time `json:"canceledOn"`
	CanceledBy string     `json:"canceledBy"`

	ShippedOn     *time.Time `json:"shippedOn"`
	ShipmentGroup string     `json:"shipmentGroup"`

	InvoiceIssuedOn *time.Time `json:"invoiceIssuedOn"`
	PaidOn          *time.Time `json:"paidOn"`

	TeamSize        int        `json:"teamSize"`
	SizeConfirmedOn *time.Time `json:"sizeConfirmedOn"`

	FoodOrder *FoodOrder `json:"foodOrder"`
}

type FoodOrderItemInput struct {
	FoodTypeID string `mapstructure:"foodTypeId" validate:"required"`
	Quantity   int    `mapstructure:"quantity" validate:"gt=0"`
}

type FoodOrderInput struct {
	Note  string               `mapstructure:"note"`
	Items []FoodOrderItemInput `mapstructure:"items" validate:"dive"`
}
