// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/muzaparoff/rest-api-exam/models"
)

// UserRepository is the persistence contract for user records. The record
// key is the canonical 9-digit national ID; canonicalization happens above
// this layer, so every id passed in is already in stored form.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	ListUsers(ctx context.Context, search string, page, perPage int) ([]models.User, int64, error)
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// CredentialStore resolves login credentials for the auth service. The
// default implementation is in-memory; swapping in a database-backed store
// only requires satisfying this interface.
type CredentialStore interface {
	Find(ctx context.Context, username string) (models.Credential, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Each backend supplies its own implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
