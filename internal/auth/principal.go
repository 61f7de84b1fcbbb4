package auth

import (
	"errors"
	"fmt"

	"github.com/teamreg/backend/internal/models"
	"gorm.io/gorm"
)

// CurrentUser is the authenticated principal attached to a request. The role
// id-sets are derived from relations at authentication time: coach of the
// teams whose coachesIds contain the user, manager of the events/programs
// whose managersIds do.
type CurrentUser struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	IsAdmin   bool

	CoachingTeams   models.IDList
	ManagedEvents   models.IDList
	ManagedPrograms models.IDList
}

func (u *CurrentUser) IsCoachOf(teamID string) bool {
	return u != nil && u.CoachingTeams.Contains(teamID)
}

func (u *CurrentUser) IsEventManagerOf(eventID string) bool {
	return u != nil && u.ManagedEvents.Contains(eventID)
}

func (u *CurrentUser) IsProgramManagerOf(programID string) bool {
	return u != nil && u.ManagedPrograms.Contains(programID)
}

func (u *CurrentUser) IsUser(userID string) bool {
	return u != nil && u.ID == userID
}

type principalRow struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	IsAdmin   bool
}

// LoadCurrentUser resolves a user id into a CurrentUser with its role
// id-sets. Returns nil if the user does not exist or is deleted.
//
// The id-list membership checks run as raw containment queries against the
// JSON columns; ids are UUIDs so a substring match cannot false-positive.
func LoadCurrentUser(db *gorm.DB, userID string) (*CurrentUser, error) {
	var row principalRow
	err := db.Table("users").
		Select("id", "username", "first_name", "last_name", "is_admin").
		Where("id = ? AND deleted_on IS NULL", userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}

	cu := &CurrentUser{
		ID:        row.ID,
		Username:  row.Username,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		IsAdmin:   row.IsAdmin,
	}

	needle := "%" + userID + "%"
	if err := db.Table("teams").
		Where("deleted_on IS NULL AND coaches_ids LIKE ?", needle).
		Pluck("id", &cu.CoachingTeams).Error; err != nil {
		return nil, fmt.Errorf("load coached teams: %w", err)
	}
	if err := db.Table("events").
		Where("deleted_on IS NULL AND managers_ids LIKE ?", needle).
		Pluck("id", &cu.ManagedEvents).Error; err != nil {
		return nil, fmt.Errorf("load managed events: %w", err)
	}
	if err := db.Table("programs").
		Where("managers_ids LIKE ?", needle).
		Pluck("id", &cu.ManagedPrograms).Error; err != nil {
		return nil, fmt.Errorf("load managed programs: %w", err)
	}
	return cu, nil
}
