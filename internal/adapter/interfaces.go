// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client library for the user directory API.
//
// The primary abstraction is [UserAPIClient], which decouples callers from
// the underlying transport. The package ships an HTTP/REST implementation
// over resty ([NewHTTPUserAPIClient]) with a transport-level retry policy:
// network errors, 5xx responses, and 429 are retried with exponential
// backoff; other 4xx responses never are.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/muzaparoff/rest-api-exam/models"
)

// UserAPIClient defines transport-agnostic access to the user directory
// server. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type UserAPIClient interface {
	// HealthCheck calls the health endpoint and returns the decoded status.
	// An unhealthy response (503) is returned as data, not as an error; the
	// error is reserved for transport failures.
	HealthCheck(ctx context.Context) (models.HealthResponse, error)

	// Login authenticates with the server and stores the returned bearer
	// token on the client for subsequent requests.
	Login(ctx context.Context, username, password string) error

	// SetToken stores the bearer token attached to subsequent requests.
	// Safe for concurrent use.
	SetToken(token string)

	// Token returns the bearer token currently held by the client, or an
	// empty string if none has been set.
	Token() string

	// CreateUser validates req locally with the same rules the server
	// applies, then creates the record. A local validation failure surfaces
	// as a *validators.ValidationError without any request being sent.
	CreateUser(ctx context.Context, req models.UserCreate) (models.User, error)

	// GetUser fetches one record by id.
	GetUser(ctx context.Context, id string) (models.User, error)

	// ListUserIDs returns the ids of all stored records.
	ListUserIDs(ctx context.Context) ([]string, error)

	// ListUsersDetailed returns one page of full records with the total
	// matching count.
	ListUsersDetailed(ctx context.Context, page, perPage int, search string) (models.UserList, error)

	// UpdateUser validates the partial update locally (an empty field set
	// fails without a request being sent), then applies it.
	UpdateUser(ctx context.Context, id string, req models.UserUpdate) (models.User, error)

	// DeleteUser removes one record by id.
	DeleteUser(ctx context.Context, id string) error

	// BulkCreateUsers creates each request in order and collects per-item
	// outcomes. A failing item never aborts the batch.
	BulkCreateUsers(ctx context.Context, reqs []models.UserCreate) BulkResult

	// BulkUpdateUsers applies each update in order and collects per-item
	// outcomes.
	BulkUpdateUsers(ctx context.Context, updates []BulkUpdate) BulkResult

	// BulkDeleteUsers deletes each id in order and collects per-item
	// outcomes.
	BulkDeleteUsers(ctx context.Context, ids []string) BulkResult

	// WaitForServer polls the health endpoint until the server reports
	// healthy or ctx is done.
	WaitForServer(ctx context.Context) error
}

// BulkUpdate pairs a record id with the partial update to apply to it.
type BulkUpdate struct {
	ID     string
	Update models.UserUpdate
}

// BulkItemResult is the outcome of one item of a bulk operation.
type BulkItemResult struct {
	// ID is the record id the item addressed.
	ID string

	// User holds the server's record for successful create and update
	// items; zero otherwise.
	User models.User

	// Err is nil for successful items.
	Err error
}

// BulkResult aggregates the outcomes of a bulk operation.
type BulkResult struct {
	// Items holds one entry per input, in input order.
	Items []BulkItemResult

	// Succeeded and Failed count the items with nil and non-nil Err.
	Succeeded int
	Failed    int
}

// Total is the number of items the bulk operation attempted.
func (r BulkResult) Total() int {
	return len(r.Items)
}
