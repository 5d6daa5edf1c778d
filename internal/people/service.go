// Package people implements the domain operations on the person
// collection: list, get, create, update, upsert, and delete.
//
// Every operation is a full load–mutate–save cycle against the store.
// A single RWMutex spans each whole cycle: mutations are serialized so
// two concurrent writes cannot lose an update, while reads share the
// lock and proceed concurrently.
package people

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/people-api/internal/apperr"
	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/types"
)

// Service owns all access to the person collection.
type Service struct {
	store    storage.Storage
	validate *validator.Validate

	// mu serializes whole read-modify-write cycles, not individual
	// store calls — locking only inside Load/Save would still lose
	// concurrent updates.
	mu sync.RWMutex
}

func NewService(store storage.Storage) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

// List returns the full collection in stored (insertion) order.
func (s *Service) List() ([]types.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.LoadPeople()
}

// Get returns the record with the given id or apperr.ErrNotFound.
func (s *Service) Get(id int) (types.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	people, err := s.store.LoadPeople()
	if err != nil {
		return types.Person{}, err
	}
	for _, p := range people {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Person{}, fmt.Errorf("%w: id %d", apperr.ErrNotFound, id)
}

// Create validates the input (after defaulting absent fields), rejects a
// duplicate id with apperr.ErrConflict, and appends the new record.
// A failed validation or duplicate leaves the persisted collection
// unchanged.
func (s *Service) Create(in types.CreatePersonInput) (types.Person, error) {
	person, err := s.buildPerson(in)
	if err != nil {
		return types.Person{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	people, err := s.store.LoadPeople()
	if err != nil {
		return types.Person{}, err
	}
	for _, p := range people {
		if p.ID == person.ID {
			return types.Person{}, fmt.Errorf("%w (id %d)", apperr.ErrConflict, person.ID)
		}
	}

	people = append(people, person)
	if err := s.store.SavePeople(people); err != nil {
		return types.Person{}, err
	}
	return person, nil
}

// Upsert is the create-or-replace variant of Create: the same defaulting
// and validation run first, then an existing record with the same id is
// overwritten in place (keeping its position) or a new one is appended.
// The second return value reports whether a record was created.
func (s *Service) Upsert(in types.CreatePersonInput) (types.Person, bool, error) {
	person, err := s.buildPerson(in)
	if err != nil {
		return types.Person{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	people, err := s.store.LoadPeople()
	if err != nil {
		return types.Person{}, false, err
	}

	for i := range people {
		if people[i].ID == person.ID {
			people[i] = person
			if err := s.store.SavePeople(people); err != nil {
				return types.Person{}, false, err
			}
			return person, false, nil
		}
	}

	people = append(people, person)
	if err := s.store.SavePeople(people); err != nil {
		return types.Person{}, false, err
	}
	return person, true, nil
}

// Update merges the supplied fields into the stored record and
// re-validates the result. Validation runs on the post-merge state, so an
// update can fail on a field it did not touch. The persisted collection
// is only rewritten after validation passes.
func (s *Service) Update(id int, in types.UpdatePersonInput) (types.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	people, err := s.store.LoadPeople()
	if err != nil {
		return types.Person{}, err
	}

	idx := -1
	for i := range people {
		if people[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.Person{}, fmt.Errorf("%w: id %d", apperr.ErrNotFound, id)
	}

	merged := people[idx]
	in.ApplyTo(&merged)
	if err := s.validate.Struct(merged); err != nil {
		return types.Person{}, err
	}

	people[idx] = merged
	if err := s.store.SavePeople(people); err != nil {
		return types.Person{}, err
	}
	return merged, nil
}

// Delete removes the record with the given id or fails with
// apperr.ErrNotFound.
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	people, err := s.store.LoadPeople()
	if err != nil {
		return err
	}

	idx := -1
	for i := range people {
		if people[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: id %d", apperr.ErrNotFound, id)
	}

	people = append(people[:idx], people[idx+1:]...)
	return s.store.SavePeople(people)
}

// buildPerson checks the input schema (id is mandatory), applies the
// documented defaults, and validates the resulting record. Both failure
// modes return validator.ValidationErrors.
func (s *Service) buildPerson(in types.CreatePersonInput) (types.Person, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.Person{}, err
	}
	person := in.Person()
	if err := s.validate.Struct(person); err != nil {
		return types.Person{}, err
	}
	return person, nil
}
