package registration

import (
	"errors"

	"gorm.io/gorm"
)

// Repository defines the collection-level accessors for registrations.
type Repository interface {
	Create(r *RegistrationData) error
	FindByID(id string) (*RegistrationData, error)
	FindByIDs(ids []string) ([]RegistrationData, error)
	FindForTeam(teamID string) ([]RegistrationData, error)
	FindForEvent(eventID string) ([]RegistrationData, error)
	FindForProgram(programID string) ([]RegistrationData, error)
	CountForEvent(eventID string) (int64, error)
	FindActiveByTeamEvent(teamID, eventID string) (*RegistrationData, error)
	Mutate(id string, mutate func(r *RegistrationData)) (*RegistrationData, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(reg *RegistrationData) error {
	return r.db.Create(reg).Error
}

func (r *registrationRepository) FindByID(id string) (*RegistrationData, error) {
	return findByID(r.db, id)
}

func findByID(db *gorm.DB, id string) (*RegistrationData, error) {
	var reg RegistrationData
	if err := db.Where("id = ?", id).First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) FindByIDs(ids []string) ([]RegistrationData, error) {
	var regs []RegistrationData
	if len(ids) == 0 {
		return regs, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) FindForTeam(teamID string) ([]RegistrationData, error) {
	var regs []RegistrationData
	err := r.db.Where("team_id = ?", teamID).Order("created_at asc").Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) FindForEvent(eventID string) ([]RegistrationData, error) {
	var regs []RegistrationData
	err := r.db.Where("event_id = ?", eventID).Order("created_at asc").Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) FindForProgram(programID string) ([]RegistrationData, error) {
	var regs []RegistrationData
	err := r.db.Where("program_id = ?", programID).Order("created_at asc").Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// CountForEvent counts active registrations only; canceled ones do not
// occupy a spot.
func (r *registrationRepository) CountForEvent(eventID string) (int64, error) {
	var count int64
	err := r.db.Model(&RegistrationData{}).
		Where("event_id = ? AND canceled_on IS NULL", eventID).
		Count(&count).Error
	return count, err
}

func (r *registrationRepository) FindActiveByTeamEvent(teamID, eventID string) (*RegistrationData, error) {
	var reg RegistrationData
	err := r.db.Where("team_id = ? AND event_id = ? AND canceled_on IS NULL", teamID, eventID).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

// Mutate applies an in-place document update inside a transaction.
func (r *registrationRepository) Mutate(id string, mutate func(reg *RegistrationData)) (*RegistrationData, error) {
	var out *RegistrationData
	err := r.db.Transaction(func(tx *gorm.DB) error {
		reg, err := findByID(tx, id)
		if err != nil {
			return err
		}
		if reg == nil {
			out = nil
			return nil
		}
		mutate(reg)
		if err := tx.Save(reg).Error; err != nil {
			return err
		}
		out = reg
		return nil
	})
	return out, err
}
