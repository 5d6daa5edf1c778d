// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// Each collection is one table with a seq column that preserves the
// insertion order a flat-file array would have. Save keeps the
// full-overwrite contract of the interface: one transaction deletes every
// row and re-inserts the given sequence, so a load never observes a
// partial rewrite.
//
// The blank import below registers the sqlite3 driver with database/sql;
// nothing from the package is called directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/people-api/internal/apperr"
	"github.com/aanand-mishra/people-api/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is a connection pool and is safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

// New opens the database at path and creates both collection tables if
// they do not already exist.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS people (
			seq   INTEGER PRIMARY KEY AUTOINCREMENT,
			id    INTEGER NOT NULL,
			name  TEXT    NOT NULL,
			age   INTEGER NOT NULL,
			email TEXT    NOT NULL
		);
		CREATE TABLE IF NOT EXISTS accounts (
			seq      INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password TEXT NOT NULL,
			role     TEXT NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create tables: %w", err)
	}

	return &SQLite{Db: db}, nil
}

func (s *SQLite) LoadPeople() ([]types.Person, error) {
	rows, err := s.Db.Query("SELECT id, name, age, email FROM people ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("%w: load people: %v", apperr.ErrIOFailure, err)
	}
	defer rows.Close()

	people := []types.Person{}
	for rows.Next() {
		var p types.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Email); err != nil {
			return nil, fmt.Errorf("%w: scan person: %v", apperr.ErrCorruptData, err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load people: %v", apperr.ErrIOFailure, err)
	}
	return people, nil
}

func (s *SQLite) SavePeople(people []types.Person) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("%w: save people: %v", apperr.ErrIOFailure, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM people"); err != nil {
		return fmt.Errorf("%w: save people: %v", apperr.ErrIOFailure, err)
	}

	stmt, err := tx.Prepare("INSERT INTO people (id, name, age, email) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("%w: save people: %v", apperr.ErrIOFailure, err)
	}
	defer stmt.Close()

	for _, p := range people {
		if _, err := stmt.Exec(p.ID, p.Name, p.Age, p.Email); err != nil {
			return fmt.Errorf("%w: save people: %v", apperr.ErrIOFailure, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: save people: %v", apperr.ErrIOFailure, err)
	}
	return nil
}

func (s *SQLite) LoadAccounts() ([]types.Account, error) {
	rows, err := s.Db.Query("SELECT username, password, role FROM accounts ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("%w: load accounts: %v", apperr.ErrIOFailure, err)
	}
	defer rows.Close()

	accounts := []types.Account{}
	for rows.Next() {
		var a types.Account
		if err := rows.Scan(&a.Username, &a.Password, &a.Role); err != nil {
			return nil, fmt.Errorf("%w: scan account: %v", apperr.ErrCorruptData, err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load accounts: %v", apperr.ErrIOFailure, err)
	}
	return accounts, nil
}

func (s *SQLite) SaveAccounts(accounts []types.Account) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("%w: save accounts: %v", apperr.ErrIOFailure, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM accounts"); err != nil {
		return fmt.Errorf("%w: save accounts: %v", apperr.ErrIOFailure, err)
	}

	stmt, err := tx.Prepare("INSERT INTO accounts (username, password, role) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("%w: save accounts: %v", apperr.ErrIOFailure, err)
	}
	defer stmt.Close()

	for _, a := range accounts {
		if _, err := stmt.Exec(a.Username, a.Password, string(a.Role)); err != nil {
			return fmt.Errorf("%w: save accounts: %v", apperr.ErrIOFailure, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: save accounts: %v", apperr.ErrIOFailure, err)
	}
	return nil
}
