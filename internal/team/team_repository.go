package team

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository defines the collection-level accessors for team documents.
type Repository interface {
	Create(t *TeamData) error
	FindByID(id string) (*TeamData, error)
	FindByIDs(ids []string) ([]TeamData, error)
	Find(filter Filter) ([]TeamData, error)
	FindCoachedBy(userID string) ([]TeamData, error)
	Save(t *TeamData) error
	SoftDelete(id string, deletedBy string) (*TeamData, error)
	AddCoach(teamID, userID string) (*TeamData, error)
	RemoveCoach(teamID, userID string) (*TeamData, error)
	AddTag(teamID, tagID string) (*TeamData, error)
	RemoveTag(teamID, tagID string) (*TeamData, error)
}

type teamRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(t *TeamData) error {
	return r.db.Create(t).Error
}

func (r *teamRepository) FindByID(id string) (*TeamData, error) {
	return findByID(r.db, id)
}

func findByID(db *gorm.DB, id string) (*TeamData, error) {
	var t TeamData
	if err := db.Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) FindByIDs(ids []string) ([]TeamData, error) {
	var teams []TeamData
	if len(ids) == 0 {
		return teams, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) Find(filter Filter) ([]TeamData, error) {
	q := r.db.Model(&TeamData{})
	if filter.IsActive != nil && *filter.IsActive {
		q = q.Where("deleted_on IS NULL")
	}
	for _, tagID := range filter.HasTags {
		q = q.Where("tag_ids LIKE ?", "%"+tagID+"%")
	}
	var teams []TeamData
	if err := q.Order("name asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) FindCoachedBy(userID string) ([]TeamData, error) {
	var teams []TeamData
	err := r.db.Where("deleted_on IS NULL AND coaches_ids LIKE ?", "%"+userID+"%").
		Order("name asc").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) Save(t *TeamData) error {
	return r.db.Save(t).Error
}

func (r *teamRepository) SoftDelete(id string, deletedBy string) (*TeamData, error) {
	now := time.Now()
	err := r.db.Model(&TeamData{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_on": &now, "deleted_by": deletedBy}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// mutateIDList applies an id-list update inside a transaction, standing in
// for the document store's atomic set add/remove.
func (r *teamRepository) mutateIDList(teamID string, mutate func(t *TeamData)) (*TeamData, error) {
	var out *TeamData
	err := r.db.Transaction(func(tx *gorm.DB) error {
		t, err := findByID(tx, teamID)
		if err != nil {
			return err
		}
		if t == nil {
			out = nil
			return nil
		}
		mutate(t)
		if err := tx.Save(t).Error; err != nil {
			return err
		}
		out = t
		return nil
	})
	return out, err
}

func (r *teamRepository) AddCoach(teamID, userID string) (*TeamData, error) {
	return r.mutateIDList(teamID, func(t *TeamData) {
		t.CoachesIDs = t.CoachesIDs.Add(userID)
	})
}

func (r *teamRepository) RemoveCoach(teamID, userID string) (*TeamData, error) {
	return r.mutateIDList(teamID, func(t *TeamData) {
		t.CoachesIDs = t.CoachesIDs.Remove(userID)
	})
}

func (r *teamRepository) AddTag(teamID, tagID string) (*TeamData, error) {
	return r.mutateIDList(teamID, func(t *TeamData) {
		t.TagIDs = t.TagIDs.Add(tagID)
	})
}

func (r *teamRepository) RemoveTag(teamID, tagID string) (*TeamData, error) {
	return r.mutateIDList(teamID, func(t *TeamData) {
		t.TagIDs = t.TagIDs.Remove(tagID)
	})
}
