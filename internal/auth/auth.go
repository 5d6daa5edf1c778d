// Package auth holds the credential layer: the default-account
// bootstrap, the Authenticator that validates username/password pairs,
// and the role policy that gates mutating operations.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/aanand-mishra/people-api/internal/apperr"
	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/types"
)

// defaultAccounts are seeded when the account collection is empty.
// Credentials are stored in plaintext — a documented compatibility
// constraint of this API, not a recommendation.
var defaultAccounts = []types.Account{
	{Username: "admin", Password: "admin123", Role: types.RoleAdmin},
	{Username: "viewer", Password: "viewer123", Role: types.RoleViewer},
}

// EnsureDefaultAccounts seeds the bootstrap accounts if — and only if —
// the account collection is empty. Running it again is a no-op, so a
// restart never duplicates accounts.
func EnsureDefaultAccounts(store storage.Storage) error {
	accounts, err := store.LoadAccounts()
	if err != nil {
		return fmt.Errorf("bootstrap accounts: %w", err)
	}
	if len(accounts) > 0 {
		return nil
	}
	return store.SaveAccounts(defaultAccounts)
}

// Authenticator validates credentials against the account collection.
type Authenticator struct {
	store storage.Storage
}

func NewAuthenticator(store storage.Storage) *Authenticator {
	return &Authenticator{store: store}
}

// Authenticate returns the account whose username and password both
// match exactly (case-sensitive). Every failure — missing credentials,
// unknown username, wrong password — returns the same
// apperr.ErrUnauthorized, so the response leaks nothing about which part
// was wrong. Comparison is constant-time.
func (a *Authenticator) Authenticate(username, password string) (types.Account, error) {
	accounts, err := a.store.LoadAccounts()
	if err != nil {
		return types.Account{}, err
	}

	for _, acct := range accounts {
		userOK := subtle.ConstantTimeCompare([]byte(acct.Username), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(acct.Password), []byte(password)) == 1
		if userOK && passOK {
			return acct, nil
		}
	}

	return types.Account{}, apperr.ErrUnauthorized
}
