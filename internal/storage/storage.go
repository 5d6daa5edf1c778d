// Package storage defines the Storage interface — the contract any
// persistence backend must satisfy to work with this application.
//
// The unit of persistence is a whole collection: Load returns every
// record in insertion order, and Save fully overwrites the stored state
// with the given sequence. There is no incremental patching and no
// in-memory cache across requests — the durable medium is the single
// source of truth, re-read at the start of every operation.
//
// Handlers and the domain service depend only on this interface, so
// swapping the flat-file backend for SQLite is one line in main.go.
package storage

import "github.com/aanand-mishra/people-api/internal/types"

// Storage is the persistence contract.
//
// Save guarantees that after a successful call the persisted state is
// exactly the given sequence, and that a Load running after Save returns
// never observes a partial write. Load on an empty collection returns an
// empty (non-nil) slice; an unreadable medium fails with
// apperr.ErrIOFailure and an unparsable one with apperr.ErrCorruptData —
// never a silently empty result.
type Storage interface {
	LoadPeople() ([]types.Person, error)
	SavePeople(people []types.Person) error

	LoadAccounts() ([]types.Account, error)
	SaveAccounts(accounts []types.Account) error
}
