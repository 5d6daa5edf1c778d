package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/aanand-mishra/people-api/internal/apperr"
	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/storage/jsonfile"
	"github.com/aanand-mishra/people-api/internal/types"
)

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()

	store, err := jsonfile.New(t.TempDir())
	if err != nil {
		t.Fatalf("jsonfile.New: %v", err)
	}
	return store
}

func TestEnsureDefaultAccounts(t *testing.T) {
	t.Run("SeedsWhenEmpty", func(t *testing.T) {
		store := newTestStore(t)

		if err := EnsureDefaultAccounts(store); err != nil {
			t.Fatalf("EnsureDefaultAccounts: %v", err)
		}

		accounts, err := store.LoadAccounts()
		if err != nil {
			t.Fatalf("LoadAccounts: %v", err)
		}
		if len(accounts) != 2 {
			t.Fatalf("expected 2 bootstrap accounts, got %d", len(accounts))
		}
		if accounts[0].Username != "admin" || accounts[0].Role != types.RoleAdmin {
			t.Errorf("unexpected first account %+v", accounts[0])
		}
		if accounts[1].Username != "viewer" || accounts[1].Role != types.RoleViewer {
			t.Errorf("unexpected second account %+v", accounts[1])
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		store := newTestStore(t)

		for i := 0; i < 3; i++ {
			if err := EnsureDefaultAccounts(store); err != nil {
				t.Fatalf("EnsureDefaultAccounts run %d: %v", i, err)
			}
		}

		accounts, err := store.LoadAccounts()
		if err != nil {
			t.Fatalf("LoadAccounts: %v", err)
		}
		if len(accounts) != 2 {
			t.Errorf("repeated bootstrap must not duplicate accounts, got %d", len(accounts))
		}
	})

	t.Run("LeavesExistingAccountsAlone", func(t *testing.T) {
		store := newTestStore(t)
		custom := []types.Account{{Username: "ops", Password: "s3cret", Role: types.RoleAdmin}}
		if err := store.SaveAccounts(custom); err != nil {
			t.Fatalf("SaveAccounts: %v", err)
		}

		if err := EnsureDefaultAccounts(store); err != nil {
			t.Fatalf("EnsureDefaultAccounts: %v", err)
		}

		accounts, err := store.LoadAccounts()
		if err != nil {
			t.Fatalf("LoadAccounts: %v", err)
		}
		if len(accounts) != 1 || accounts[0].Username != "ops" {
			t.Errorf("non-empty collection must not be reseeded, got %+v", accounts)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	store := newTestStore(t)
	if err := EnsureDefaultAccounts(store); err != nil {
		t.Fatalf("EnsureDefaultAccounts: %v", err)
	}
	authn := NewAuthenticator(store)

	t.Run("ValidCredentials", func(t *testing.T) {
		account, err := authn.Authenticate("admin", "admin123")
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if account.Role != types.RoleAdmin {
			t.Errorf("expected admin role, got %q", account.Role)
		}
	})

	t.Run("FailuresAreIndistinguishable", func(t *testing.T) {
		_, wrongPass := authn.Authenticate("admin", "nope")
		_, wrongUser := authn.Authenticate("nobody", "admin123")
		_, missing := authn.Authenticate("", "")

		for _, err := range []error{wrongPass, wrongUser, missing} {
			if !errors.Is(err, apperr.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		}
		if wrongPass.Error() != wrongUser.Error() {
			t.Errorf("wrong-password and wrong-username errors must be identical: %q vs %q",
				wrongPass, wrongUser)
		}
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		if _, err := authn.Authenticate("Admin", "admin123"); !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("username comparison must be case-sensitive, got %v", err)
		}
	})
}

func TestAuthorize(t *testing.T) {
	admin := types.Account{Username: "admin", Role: types.RoleAdmin}
	viewer := types.Account{Username: "viewer", Role: types.RoleViewer}
	unknown := types.Account{Username: "odd", Role: "superuser"}

	tests := []struct {
		name    string
		account types.Account
		op      Operation
		allowed bool
	}{
		{"AdminRead", admin, OpRead, true},
		{"AdminCreate", admin, OpCreate, true},
		{"AdminUpdate", admin, OpUpdate, true},
		{"AdminDelete", admin, OpDelete, true},
		{"ViewerRead", viewer, OpRead, true},
		{"ViewerCreate", viewer, OpCreate, false},
		{"ViewerUpdate", viewer, OpUpdate, false},
		{"ViewerDelete", viewer, OpDelete, false},
		// Unrecognised roles fall back to read-only.
		{"UnknownRoleRead", unknown, OpRead, true},
		{"UnknownRoleDelete", unknown, OpDelete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.account, tt.op)
			if tt.allowed && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tt.allowed {
				if !errors.Is(err, apperr.ErrForbidden) {
					t.Fatalf("expected ErrForbidden, got %v", err)
				}
				// The denial names the operation so the caller knows
				// what was refused.
				if want := string(tt.op); !strings.Contains(err.Error(), want) {
					t.Errorf("denial %q should mention operation %q", err, want)
				}
			}
		})
	}
}
