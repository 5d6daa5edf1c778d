package auth

import (
	"fmt"

	"github.com/aanand-mishra/people-api/internal/apperr"
	"github.com/aanand-mishra/people-api/internal/types"
)

// Operation names an action on the person collection for the role policy
// and for the denial message shown to the caller.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Authorize applies the role policy:
//
//	operation        admin   viewer
//	read             allow   allow
//	create           allow   deny
//	update           allow   deny
//	delete           allow   deny
//
// An account with an unrecognised role gets the most restricted
// treatment: reads only. Denials wrap apperr.ErrForbidden with a message
// naming the denied operation and the role it requires.
func Authorize(account types.Account, op Operation) error {
	if op == OpRead {
		return nil
	}
	if account.Role == types.RoleAdmin {
		return nil
	}
	return fmt.Errorf("%w: role %q may not %s a person; the admin role is required",
		apperr.ErrForbidden, account.Role, op)
}
