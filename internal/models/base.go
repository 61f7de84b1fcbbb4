// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is the common shape of every persisted entity. IDs are opaque
// UUID strings assigned on first insert.
type Document struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// IDList is an inline list of related document ids, stored as a JSON array
// column the same way Mongo documents keep reference arrays.
type IDList []string

func (l IDList) GormDataType() string {
	return "json"
}

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column into the list.
func (l *IDList) Scan(src interface{}) error {
	if src == nil {
		*l = IDList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("IDList: expected []byte or string, got %T", src)
	}
}

func (l IDList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Add returns the list with id appended; adding a present id is a no-op.
func (l IDList) Add(id string) IDList {
	if l.Contains(id) {
		return l
	}
	return append(l, id)
}

// Remove returns the list without id; removing an absent id is a no-op.
func (l IDList) Remove(id string) IDList {
	out := make(IDList, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
