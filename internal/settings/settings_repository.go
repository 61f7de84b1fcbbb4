package settings

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Get() (*SettingsData, error)
	Save(s *SettingsData) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &settingsRepository{db: db}
}

// Get returns the singleton row, creating it empty on first access.
func (r *settingsRepository) Get() (*SettingsData, error) {
	var s SettingsData
	err := r.db.Where("id = ?", settingsID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = SettingsData{ID: settingsID}
		if err := r.db.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Save(s *SettingsData) error {
	return r.db.Save(s).Error
}
