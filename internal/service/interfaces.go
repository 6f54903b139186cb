// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/muzaparoff/rest-api-exam/models"
)

// UserService is the business layer over user records. Every write path
// validates its input through the injected validator before touching
// storage, and every id reaching storage is in canonical 9-digit form.
type UserService interface {
	CreateUser(ctx context.Context, req models.UserCreate) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	ListUsers(ctx context.Context, search string, page, perPage int) (models.UserList, error)
	UpdateUser(ctx context.Context, id string, req models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// AuthService issues the JWT tokens handed out at login and verifies the
// ones presented back by callers. Identity is informational: requests
// without a token are still served, they are just logged as anonymous.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	TokenDurationSeconds() int64
}
