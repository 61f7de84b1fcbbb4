package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository defines the collection-level accessors for user documents.
type Repository interface {
	Create(u *UserData) error
	FindByID(id string) (*UserData, error)
	FindByIDs(ids []string) ([]UserData, error)
	FindByUsername(username string) (*UserData, error)
	Find(filter Filter) ([]UserData, error)
	Save(u *UserData) error
	SetPassword(id string, passwordHash string) error
	SetAdmin(id string, isAdmin bool) (*UserData, error)
	SoftDelete(id string, deletedBy string) (*UserData, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(u *UserData) error {
	return r.db.Create(u).Error
}

func (r *userRepository) FindByID(id string) (*UserData, error) {
	var u UserData
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByIDs(ids []string) ([]UserData, error) {
	var users []UserData
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByUsername(username string) (*UserData, error) {
	var u UserData
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Find(filter Filter) ([]UserData, error) {
	q := r.db.Model(&UserData{})
	if filter.IsActive != nil && *filter.IsActive {
		q = q.Where("deleted_on IS NULL")
	}
	var users []UserData
	if err := q.Order("username asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Save(u *UserData) error {
	return r.db.Save(u).Error
}

func (r *userRepository) SetPassword(id string, passwordHash string) error {
	return r.db.Model(&UserData{}).Where("id = ?", id).Update("password", passwordHash).Error
}

func (r *userRepository) SetAdmin(id string, isAdmin bool) (*UserData, error) {
	if err := r.db.Model(&UserData{}).Where("id = ?", id).Update("is_admin", isAdmin).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *userRepository) SoftDelete(id string, deletedBy string) (*UserData, error) {
	now := time.Now()
	err := r.db.Model(&UserData{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_on": &now, "deleted_by": deletedBy}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
