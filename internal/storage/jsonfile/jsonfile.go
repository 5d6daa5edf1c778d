// Package jsonfile provides the flat-file implementation of
// storage.Storage: each collection is one file holding a JSON array of
// flat objects (people.json, accounts.json).
//
// Saves are atomic from the caller's viewpoint — the new content is
// written to a temporary file in the same directory and renamed over the
// old one, so a concurrent load never observes a partial write.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/people-api/internal/apperr"
	"github.com/aanand-mishra/people-api/internal/types"
)

const (
	peopleFile   = "people.json"
	accountsFile = "accounts.json"
)

// Store reads and writes the two collection files under one directory.
type Store struct {
	peoplePath   string
	accountsPath string
}

// New creates the data directory if needed and seeds any missing
// collection file with an empty JSON array. After New succeeds, a missing
// file is an I/O failure, not an empty collection — resetting silently
// would look like data loss.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir %s: %v", apperr.ErrIOFailure, dir, err)
	}

	s := &Store{
		peoplePath:   filepath.Join(dir, peopleFile),
		accountsPath: filepath.Join(dir, accountsFile),
	}

	for _, path := range []string{s.peoplePath, s.accountsPath} {
		if err := ensureFile(path); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) LoadPeople() ([]types.Person, error) {
	return load[types.Person](s.peoplePath)
}

func (s *Store) SavePeople(people []types.Person) error {
	return save(s.peoplePath, people)
}

func (s *Store) LoadAccounts() ([]types.Account, error) {
	return load[types.Account](s.accountsPath)
}

func (s *Store) SaveAccounts(accounts []types.Account) error {
	return save(s.accountsPath, accounts)
}

// ensureFile seeds path with an empty array if it does not exist yet.
func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", apperr.ErrIOFailure, path, err)
	}
	return writeAtomic(path, []byte("[]\n"))
}

func load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperr.ErrIOFailure, path, err)
	}

	// An empty file counts as an empty collection; anything else must be
	// a parsable JSON array.
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperr.ErrCorruptData, path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func save[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", apperr.ErrIOFailure, path, err)
	}

	return writeAtomic(path, append(data, '\n'))
}

// writeAtomic replaces the file at path with data via a temp file and
// rename, so readers see either the old content or the new, never a mix.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", apperr.ErrIOFailure, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", apperr.ErrIOFailure, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", apperr.ErrIOFailure, path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename %s: %v", apperr.ErrIOFailure, path, err)
	}
	return nil
}
