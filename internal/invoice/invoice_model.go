package invoice

import (
	"github.com/shopspring/decimal"
	"github.com/teamreg/backend/internal/models"
)

// InvoiceItemData is a fee line belonging to either a program or an event;
// exactly one of the two refs is set.
type InvoiceItemData struct {
	models.Document
	ProgramID  string          `gorm:"column:program_id;index" json:"programId"`
	EventID    string          `gorm:"column:event_id;index" json:"eventId"`
	LineNumber int             `gorm:"column:line_number" json:"lineNumber"`
	Text       string          `gorm:"not null" json:"text"`
	Note       string          `json:"note"`
	UnitPrice  decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2)" json:"unitPrice"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,2)" json:"quantity"`
}

func (InvoiceItemData) TableName() string { return "invoice_items" }

type InvoiceItem struct {
	ID         string  `json:"id"`
	ProgramID  string  `json:"programId"`
	EventID    string  `json:"eventId"`
	LineNumber int     `json:"lineNumber"`
	Text       string  `json:"text"`
	Note       string  `json:"note"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   float64 `json:"quantity"`
}

type ItemInput struct {
	LineNumber int     `mapstructure:"lineNumber" validate:"gte=0"`
	Text       string  `mapstructure:"text" validate:"required"`
	Note       string  `mapstructure:"note"`
	UnitPrice  float64 `mapstructure:"unitPrice" validate:"gte=0"`
	Quantity   float64 `mapstructure:"quantity" validate:"gt=0"`
}

// ToInvoiceItem maps the persistence document to its API shape; nil maps
// to nil.
func ToInvoiceItem(i *InvoiceItemData) *InvoiceItem {
	if i == nil {
		return nil
	}
	return &InvoiceItem{
		ID:         i.ID,
		ProgramID:  i.ProgramID,
		EventID:    i.EventID,
		LineNumber: i.LineNumber,
		Text:       i.Text,
		Note:       i.Note,
		UnitPrice:  i.UnitPrice.InexactFloat64(),
		Quantity:   i.Quantity.InexactFloat64(),
	}
}
