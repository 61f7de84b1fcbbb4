package invoice

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/teamreg/backend/internal/apperr"
	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/pkg/validator"
	"go.uber.org/zap"
)

// DataSource for invoice line items attached to programs and events.
type DataSource struct {
	repo Repository
	user *auth.CurrentUser
	log  *zap.Logger
}

func NewDataSource(repo Repository, cu *auth.CurrentUser, log *zap.Logger) *DataSource {
	return &DataSource{repo: repo, user: cu, log: log.Named("ds.invoice")}
}

func (ds *DataSource) GetProgramInvoiceItems(ctx context.Context, programID string) ([]*InvoiceItem, error) {
	rows, err := ds.repo.FindForProgram(programID)
	if err != nil {
		return nil, err
	}
	return mapItems(rows), nil
}

func (ds *DataSource) GetEventInvoiceItems(ctx context.Context, eventID string) ([]*InvoiceItem, error) {
	rows, err := ds.repo.FindForEvent(eventID)
	if err != nil {
		return nil, err
	}
	return mapItems(rows), nil
}

func mapItems(rows []InvoiceItemData) []*InvoiceItem {
	items := make([]*InvoiceItem, len(rows))
	for i := range rows {
		items[i] = ToInvoiceItem(&rows[i])
	}
	return items
}

func (ds *DataSource) CreateProgramInvoiceItem(ctx context.Context, programID string, item ItemInput) (*InvoiceItem, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.ProgramManagerOf(programID)); err != nil {
		return nil, err
	}
	return ds.create(&InvoiceItemData{ProgramID: programID}, item)
}

func (ds *DataSource) CreateEventInvoiceItem(ctx context.Context, eventID string, item ItemInput) (*InvoiceItem, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(eventID)); err != nil {
		return nil, err
	}
	return ds.create(&InvoiceItemData{EventID: eventID}, item)
}

func (ds *DataSource) create(doc *InvoiceItemData, item ItemInput) (*InvoiceItem, error) {
	if err := validator.Struct(item); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	doc.LineNumber = item.LineNumber
	doc.Text = item.Text
	doc.Note = item.Note
	doc.UnitPrice = decimal.NewFromFloat(item.UnitPrice)
	doc.Quantity = decimal.NewFromFloat(item.Quantity)
	if err := ds.repo.Create(doc); err != nil {
		return nil, err
	}
	return ToInvoiceItem(doc), nil
}

// findProgramItem fetches the item and checks it belongs to the program the
// caller was authorized for. Items owned elsewhere read as missing, so a
// manager of one program cannot touch another program's lines.
func (ds *DataSource) findProgramItem(programID, itemID string) (*InvoiceItemData, error) {
	doc, err := ds.repo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.ProgramID != programID {
		return nil, apperr.NotFound("invoice item", itemID)
	}
	return doc, nil
}

func (ds *DataSource) findEventItem(eventID, itemID string) (*InvoiceItemData, error) {
	doc, err := ds.repo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.EventID != eventID {
		return nil, apperr.NotFound("invoice item", itemID)
	}
	return doc, nil
}

func (ds *DataSource) UpdateProgramInvoiceItem(ctx context.Context, programID, itemID string, item ItemInput) (*InvoiceItem, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.ProgramManagerOf(programID)); err != nil {
		return nil, err
	}
	doc, err := ds.findProgramItem(programID, itemID)
	if err != nil {
		return nil, err
	}
	return ds.update(doc, item)
}

func (ds *DataSource) UpdateEventInvoiceItem(ctx context.Context, eventID, itemID string, item ItemInput) (*InvoiceItem, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(eventID)); err != nil {
		return nil, err
	}
	doc, err := ds.findEventItem(eventID, itemID)
	if err != nil {
		return nil, err
	}
	return ds.update(doc, item)
}

func (ds *DataSource) update(doc *InvoiceItemData, item ItemInput) (*InvoiceItem, error) {
	if err := validator.Struct(item); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	doc.LineNumber = item.LineNumber
	doc.Text = item.Text
	doc.Note = item.Note
	doc.UnitPrice = decimal.NewFromFloat(item.UnitPrice)
	doc.Quantity = decimal.NewFromFloat(item.Quantity)
	if err := ds.repo.Save(doc); err != nil {
		return nil, err
	}
	return ToInvoiceItem(doc), nil
}

func (ds *DataSource) DeleteProgramInvoiceItem(ctx context.Context, programID, itemID string) (*InvoiceItem, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.ProgramManagerOf(programID)); err != nil {
		return nil, err
	}
	doc, err := ds.findProgramItem(programID, itemID)
	if err != nil {
		return nil, err
	}
	return ds.delete(doc)
}

func (ds *DataSource) DeleteEventInvoiceItem(ctx context.Context, eventID, itemID string) (*InvoiceItem, error) {
	if err := auth.Authorize(ds.user, auth.Admin(), auth.EventManagerOf(eventID)); err != nil {
		return nil, err
	}
	doc, err := ds.findEventItem(eventID, itemID)
	if err != nil {
		return nil, err
	}
	return ds.delete(doc)
}

func (ds *DataSource) delete(doc *InvoiceItemData) (*InvoiceItem, error) {
	if err := ds.repo.Delete(doc.ID); err != nil {
		return nil, err
	}
	ds.log.Info("invoice item deleted", zap.String("id", doc.ID))
	return ToInvoiceItem(doc), nil
}
