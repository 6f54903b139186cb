package models

import "time"

// User represents a person record keyed by an Israeli national ID.
// The stored form is always canonical: ID is zero-padded to 9 digits and
// PhoneNumber contains digits only.
type User struct {
	// ID is the Israeli national ID in canonical 9-digit form.
	// It is the primary key and is immutable after creation.
	ID string `json:"id"`

	// Name is the person's full name, trimmed, 2-100 characters.
	Name string `json:"name"`

	// PhoneNumber is the Israeli mobile number in canonical digits-only
	// form: exactly 10 digits starting with "05".
	PhoneNumber string `json:"phone_number"`

	// Address is the person's address, trimmed, 1-200 characters.
	Address string `json:"address"`

	// CreatedAt is set once when the record is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
