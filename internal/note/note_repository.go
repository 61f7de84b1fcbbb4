package note

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(n *NoteData) error
	FindByID(id string) (*NoteData, error)
	FindByRef(noteType, ref string) ([]NoteData, error)
	Save(n *NoteData) error
	Delete(id string) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(n *NoteData) error {
	return r.db.Create(n).Error
}

func (r *noteRepository) FindByID(id string) (*NoteData, error) {
	var n NoteData
	if err := r.db.Where("id = ?", id).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *noteRepository) FindByRef(noteType, ref string) ([]NoteData, error) {
	var notes []NoteData
	err := r.db.Where("type = ? AND ref = ?", noteType, ref).
		Order("created_at desc").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Save(n *NoteData) error {
	return r.db.Save(n).Error
}

func (r *noteRepository) Delete(id string) error {
	return r.db.Delete(&NoteData{}, "id = ?", id).Error
}
