package invoice

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(i *InvoiceItemData) error
	FindByID(id string) (*InvoiceItemData, error)
	FindForProgram(programID string) ([]InvoiceItemData, error)
	FindForEvent(eventID string) ([]InvoiceItemData, error)
	Save(i *InvoiceItemData) error
	Delete(id string) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(i *InvoiceItemData) error {
	return r.db.Create(i).Error
}

func (r *invoiceRepository) FindByID(id string) (*InvoiceItemData, error) {
	var i InvoiceItemData
	if err := r.db.Where("id = ?", id).First(&i).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *invoiceRepository) FindForProgram(programID string) ([]InvoiceItemData, error) {
	var items []InvoiceItemData
	err := r.db.Where("program_id = ?", programID).Order("line_number asc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *invoiceRepository) FindForEvent(eventID string) ([]InvoiceItemData, error) {
	var items []InvoiceItemData
	err := r.db.Where("event_id = ?", eventID).Order("line_number asc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *invoiceRepository) Save(i *InvoiceItemData) error {
	return r.db.Save(i).Error
}

func (r *invoiceRepository) Delete(id string) error {
	return r.db.Delete(&InvoiceItemData{}, "id = ?", id).Error
}
