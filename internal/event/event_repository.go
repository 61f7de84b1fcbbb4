package event

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository defines the collection-level accessors for event documents.
type Repository interface {
	Create(e *EventData) error
	FindByID(id string) (*EventData, error)
	FindByIDs(ids []string) ([]EventData, error)
	Find(filter Filter) ([]EventData, error)
	FindForProgram(programID string) ([]EventData, error)
	FindManagedBy(userID string) ([]EventData, error)
	Save(e *EventData) error
	SoftDelete(id string, deletedBy string) (*EventData, error)
	Undelete(id string) (*EventData, error)
	AddManager(eventID, userID string) (*EventData, error)
	RemoveManager(eventID, userID string) (*EventData, error)
	Mutate(id string, mutate func(e *EventData)) (*EventData, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(e *EventData) error {
	return r.db.Create(e).Error
}

func (r *eventRepository) FindByID(id string) (*EventData, error) {
	return findByID(r.db, id)
}

func findByID(db *gorm.DB, id string) (*EventData, error) {
	var e EventData
	if err := db.Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) FindByIDs(ids []string) ([]EventData, error) {
	var events []EventData
	if len(ids) == 0 {
		return events, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Find(filter Filter) ([]EventData, error) {
	q := r.db.Model(&EventData{})
	if filter.IsActive != nil && *filter.IsActive {
		q = q.Where("deleted_on IS NULL")
	}
	if filter.ProgramID != nil {
		q = q.Where("program_id = ?", *filter.ProgramID)
	}
	var events []EventData
	if err := q.Order("date asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindForProgram(programID string) ([]EventData, error) {
	var events []EventData
	err := r.db.Where("program_id = ? AND deleted_on IS NULL", programID).
		Order("date asc").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindManagedBy(userID string) ([]EventData, error) {
	var events []EventData
	err := r.db.Where("deleted_on IS NULL AND managers_ids LIKE ?", "%"+userID+"%").
		Order("date asc").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Save(e *EventData) error {
	return r.db.Save(e).Error
}

func (r *eventRepository) SoftDelete(id string, deletedBy string) (*EventData, error) {
	now := time.Now()
	err := r.db.Model(&EventData{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_on": &now, "deleted_by": deletedBy}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *eventRepository) Undelete(id string) (*EventData, error) {
	err := r.db.Model(&EventData{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_on": nil, "deleted_by": ""}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Mutate applies an in-place document update inside a transaction, standing
// in for the document store's atomic field updates.
func (r *eventRepository) Mutate(id string, mutate func(e *EventData)) (*EventData, error) {
	var out *EventData
	err := r.db.Transaction(func(tx *gorm.DB) error {
		e, err := findByID(tx, id)
		if err != nil {
			return err
		}
		if e == nil {
			out = nil
			return nil
		}
		mutate(e)
		if err := tx.Save(e).Error; err != nil {
			return err
		}
		out = e
		return nil
	})
	return out, err
}

func (r *eventRepository) AddManager(eventID, userID string) (*EventData, error) {
	return r.Mutate(eventID, func(e *EventData) {
		e.ManagersIDs = e.ManagersIDs.Add(userID)
	})
}

func (r *eventRepository) RemoveManager(eventID, userID string) (*EventData, error) {
	return r.Mutate(eventID, func(e *EventData) {
		e.ManagersIDs = e.ManagersIDs.Remove(userID)
	})
}
