package auth

import (
	"errors"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

// Denial reasons, in the order the gate checks them. An inactive admin
// is denied ErrInactiveAccount, never ErrForbidden: activity is decided
// before the role is even looked at.
var (
	ErrNotAuthenticated = errors.New("not_authenticated")
	ErrInactiveAccount  = errors.New("inactive_account")
	ErrForbidden        = errors.New("forbidden")
)

// Authorize is the access gate applied to every protected operation.
// A nil user means no authenticated session. An empty allowed set only
// requires an active authenticated user.
func Authorize(user *models.User, allowed ...string) error {
	if user == nil {
		return ErrNotAuthenticated
	}
	if !user.IsActive {
		return ErrInactiveAccount
	}
	if len(allowed) == 0 {
		return nil
	}
	for _, role := range allowed {
		if user.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

// DenialReason maps a gate error to its stable wire code.
func DenialReason(err error) string {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, ErrInactiveAccount):
		return "inactive_account"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	}
	return "forbidden"
}
