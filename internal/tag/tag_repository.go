package tag

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(t *TagData) error
	FindByID(id string) (*TagData, error)
	FindByIDs(ids []string) ([]TagData, error)
	FindAll() ([]TagData, error)
	Save(t *TagData) error
	Delete(id string) error
	CountTeamsTagged(id string) (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(t *TagData) error {
	return r.db.Create(t).Error
}

func (r *tagRepository) FindByID(id string) (*TagData, error) {
	var t TagData
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tagRepository) FindByIDs(ids []string) ([]TagData, error) {
	var tags []TagData
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindAll() ([]TagData, error) {
	var tags []TagData
	if err := r.db.Order("label asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) Save(t *TagData) error {
	return r.db.Save(t).Error
}

// Delete removes the tag document. Tags have no soft-delete marker.
func (r *tagRepository) Delete(id string) error {
	return r.db.Delete(&TagData{}, "id = ?", id).Error
}

// CountTeamsTagged reports how many non-deleted teams carry the tag. Ids
// are UUIDs, so the JSON containment check cannot false-positive.
func (r *tagRepository) CountTeamsTagged(id string) (int64, error) {
	var count int64
	err := r.db.Table("teams").
		Where("deleted_on IS NULL AND tag_ids LIKE ?", "%"+id+"%").
		Count(&count).Error
	return count, err
}
