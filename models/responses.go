package models

import "time"

// UserList is the paginated response of the detailed user listing.
type UserList struct {
	// Users holds the records of the requested page.
	Users []User `json:"users"`

	// Total is the number of records matching the filter across all pages.
	Total int64 `json:"total"`

	// Page is the 1-based page number that was served.
	Page int `json:"page"`

	// PerPage is the page size that was applied.
	PerPage int `json:"per_page"`
}

// HealthResponse reports service and database health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Database  bool      `json:"database"`
}

// LoginResponse carries a freshly issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int `json:"expires_in"`
}

// FieldError describes a single rejected field of a create or update
// request: which field, why, and the value that was rejected.
type FieldError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue string `json:"rejected_value"`
}

// ErrorResponse is the uniform error body returned by every endpoint.
//
// Error is a stable category string ("ValidationError", "ConflictError",
// "NotFoundError", "AuthenticationError", "InternalError"); Message is
// human-readable. ValidationErrors is populated only for validation
// failures and lists every rejected field in one response. ResourceType
// and ResourceID are populated for not-found and conflict errors.
type ErrorResponse struct {
	Error            string       `json:"error"`
	Message          string       `json:"message"`
	ValidationErrors []FieldError `json:"validation_errors,omitempty"`
	ResourceType     string       `json:"resource_type,omitempty"`
	ResourceID       string       `json:"resource_id,omitempty"`
	Timestamp        time.Time    `json:"timestamp"`
	Path             string       `json:"path,omitempty"`
	RequestID        string       `json:"request_id,omitempty"`
}
