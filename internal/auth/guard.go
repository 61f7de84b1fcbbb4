package auth

import (
	"github.com/teamreg/backend/internal/apperr"
)

// Guard is an authorization predicate evaluated against the current user.
// Guards return an error instead of throwing, so composition is explicit.
type Guard func(u *CurrentUser) error

func Admin() Guard {
	return func(u *CurrentUser) error {
		if u == nil || !u.IsAdmin {
			return apperr.Unauthorized("admin required")
		}
		return nil
	}
}

func CoachOf(teamID string) Guard {
	return func(u *CurrentUser) error {
		if !u.IsCoachOf(teamID) {
			return apperr.Unauthorized("coach of team required")
		}
		return nil
	}
}

func EventManagerOf(eventID string) Guard {
	return func(u *CurrentUser) error {
		if !u.IsEventManagerOf(eventID) {
			return apperr.Unauthorized("event manager required")
		}
		return nil
	}
}

func ProgramManagerOf(programID string) Guard {
	return func(u *CurrentUser) error {
		if !u.IsProgramManagerOf(programID) {
			return apperr.Unauthorized("program manager required")
		}
		return nil
	}
}

func Self(userID string) Guard {
	return func(u *CurrentUser) error {
		if !u.IsUser(userID) {
			return apperr.Unauthorized("operation limited to the account owner")
		}
		return nil
	}
}

// Authorize passes when at least one guard accepts the user. An
// unauthenticated request fails before any guard runs.
func Authorize(u *CurrentUser, anyOf ...Guard) error {
	if u == nil {
		return apperr.Unauthorized("not signed in")
	}
	var firstErr error
	for _, g := range anyOf {
		err := g(u)
		if err == nil {
			return nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		return apperr.Unauthorized("no guard configured")
	}
	return firstErr
}
