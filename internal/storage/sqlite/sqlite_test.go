package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/aanand-mishra/people-api/internal/types"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { store.Db.Close() })
	return store
}

func TestEmptyCollections(t *testing.T) {
	store := newTestDB(t)

	people, err := store.LoadPeople()
	if err != nil {
		t.Fatalf("LoadPeople: %v", err)
	}
	if people == nil || len(people) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", people)
	}

	accounts, err := store.LoadAccounts()
	if err != nil {
		t.Fatalf("LoadAccounts: %v", err)
	}
	if accounts == nil || len(accounts) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", accounts)
	}
}

func TestPeopleRoundTripKeepsOrder(t *testing.T) {
	store := newTestDB(t)

	// Deliberately not sorted by id — load must return insertion order.
	want := []types.Person{
		{ID: 9, Name: "Cid", Age: 52, Email: "c@x.com"},
		{ID: 1, Name: "Ann", Age: 30, Email: "a@x.com"},
		{ID: 5, Name: "Bob", Age: 41, Email: "b@x.com"},
	}
	if err := store.SavePeople(want); err != nil {
		t.Fatalf("SavePeople: %v", err)
	}

	got, err := store.LoadPeople()
	if err != nil {
		t.Fatalf("LoadPeople: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSaveIsFullOverwrite(t *testing.T) {
	store := newTestDB(t)

	if err := store.SavePeople([]types.Person{
		{ID: 1, Name: "Ann", Age: 30, Email: "a@x.com"},
		{ID: 2, Name: "Bob", Age: 41, Email: "b@x.com"},
	}); err != nil {
		t.Fatalf("SavePeople: %v", err)
	}
	if err := store.SavePeople([]types.Person{
		{ID: 2, Name: "Bob", Age: 42, Email: "b@x.com"},
	}); err != nil {
		t.Fatalf("SavePeople: %v", err)
	}

	got, err := store.LoadPeople()
	if err != nil {
		t.Fatalf("LoadPeople: %v", err)
	}
	if len(got) != 1 || got[0].Age != 42 {
		t.Errorf("save must leave exactly the given sequence, got %+v", got)
	}
}

func TestAccountsRoundTrip(t *testing.T) {
	store := newTestDB(t)

	want := []types.Account{
		{Username: "admin", Password: "admin123", Role: types.RoleAdmin},
		{Username: "viewer", Password: "viewer123", Role: types.RoleViewer},
	}
	if err := store.SaveAccounts(want); err != nil {
		t.Fatalf("SaveAccounts: %v", err)
	}

	got, err := store.LoadAccounts()
	if err != nil {
		t.Fatalf("LoadAccounts: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
