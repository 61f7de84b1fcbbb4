package program

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(p *ProgramData) error
	FindByID(id string) (*ProgramData, error)
	FindByIDs(ids []string) ([]ProgramData, error)
	Find(filter Filter) ([]ProgramData, error)
	FindManagedBy(userID string) ([]ProgramData, error)
	Save(p *ProgramData) error
	Delete(id string) error
	AddManager(programID, userID string) (*ProgramData, error)
	RemoveManager(programID, userID string) (*ProgramData, error)
	CountEvents(programID string) (int64, error)
}

type programRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(p *ProgramData) error {
	return r.db.Create(p).Error
}

func (r *programRepository) FindByID(id string) (*ProgramData, error) {
	return findByID(r.db, id)
}

func findByID(db *gorm.DB, id string) (*ProgramData, error) {
	var p ProgramData
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *programRepository) FindByIDs(ids []string) ([]ProgramData, error) {
	var programs []ProgramData
	if len(ids) == 0 {
		return programs, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) Find(filter Filter) ([]ProgramData, error) {
	q := r.db.Model(&ProgramData{})
	if filter.IsActive != nil && *filter.IsActive {
		q = q.Where("active = ?", true)
	}
	var programs []ProgramData
	if err := q.Order("name asc").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) FindManagedBy(userID string) ([]ProgramData, error) {
	var programs []ProgramData
	err := r.db.Where("managers_ids LIKE ?", "%"+userID+"%").
		Order("name asc").Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) Save(p *ProgramData) error {
	return r.db.Save(p).Error
}

// Delete removes the program document. Programs have no soft-delete marker.
func (r *programRepository) Delete(id string) error {
	return r.db.Delete(&ProgramData{}, "id = ?", id).Error
}

func (r *programRepository) mutateManagers(programID string, mutate func(p *ProgramData)) (*ProgramData, error) {
	var out *ProgramData
	err := r.db.Transaction(func(tx *gorm.DB) error {
		p, err := findByID(tx, programID)
		if err != nil {
			return err
		}
		if p == nil {
			out = nil
			return nil
		}
		mutate(p)
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

func (r *programRepository) AddManager(programID, userID string) (*ProgramData, error) {
	return r.mutateManagers(programID, func(p *ProgramData) {
		p.ManagersIDs = p.ManagersIDs.Add(userID)
	})
}

func (r *programRepository) RemoveManager(programID, userID string) (*ProgramData, error) {
	return r.mutateManagers(programID, func(p *ProgramData) {
		p.ManagersIDs = p.ManagersIDs.Remove(userID)
	})
}

// CountEvents reports how many events, deleted ones included, belong to the
// program.
func (r *programRepository) CountEvents(programID string) (int64, error) {
	var count int64
	err := r.db.Table("events").Where("program_id = ?", programID).Count(&count).Error
	return count, err
}
