package models

// UserCreate carries the raw field values of a create-user request.
// All four fields are required; validation and canonicalization happen in
// the validators package before the value reaches storage.
type UserCreate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// UserUpdate carries a partial update of a user record. Nil means
// "do not touch this field"; at least one field must be non-nil.
// The record ID comes from the URL and is never updatable.
type UserUpdate struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// IsEmpty reports whether the update supplies no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.PhoneNumber == nil && u.Address == nil
}

// LoginRequest carries the credentials of an authentication attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
