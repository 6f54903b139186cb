package models

// Credential is an account entry used by the authentication collaborator.
// PasswordHash must be a bcrypt hash, never plaintext.
type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`
}
