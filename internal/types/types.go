// Package types holds the shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, auth, and the domain service can all import types
// without depending on each other.
package types

// Role is the access level attached to an Account.
// Only the two values below are recognised; anything else is treated as
// read-only by the authorization layer.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// Person is one record in the people collection.
//
// The id is supplied by the client on creation and never changes.
// The validate tags describe the rules a record must satisfy AFTER
// defaulting (create) or merging (update):
//
//	gt=0       — age must be a positive integer
//	contains=@ — email must contain an @ sign
type Person struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"   validate:"gt=0"`
	Email string `json:"email" validate:"contains=@"`
}

// Account is one credential record in the accounts collection.
// Accounts are read-only from the API's perspective — they are only ever
// written by the startup bootstrap step.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// CreatePersonInput is the POST /people request body.
//
// Pointer fields distinguish "absent" from "zero": a missing name, age,
// or email is defaulted (empty string / 0 / empty string) before the
// record is validated. Only the id is mandatory.
type CreatePersonInput struct {
	ID    *int    `json:"id" validate:"required"`
	Name  *string `json:"name"`
	Age   *int    `json:"age"`
	Email *string `json:"email"`
}

// Person builds the full record from the input, filling absent fields
// with their documented defaults.
func (in CreatePersonInput) Person() Person {
	p := Person{}
	if in.ID != nil {
		p.ID = *in.ID
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	return p
}

// UpdatePersonInput is the PUT /people/{id} request body.
// A nil field means "keep the stored value" — the id itself is taken
// from the URL and cannot be changed.
type UpdatePersonInput struct {
	Name  *string `json:"name"`
	Age   *int    `json:"age"`
	Email *string `json:"email"`
}

// ApplyTo merges the supplied fields into an existing record.
// Absent fields retain their prior value.
func (in UpdatePersonInput) ApplyTo(p *Person) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
}
