// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/store"
	"github.com/muzaparoff/rest-api-exam/internal/validators"
	"github.com/muzaparoff/rest-api-exam/models"
)

// Pagination bounds for the detailed listing.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// userService is the concrete implementation of UserService. It owns the
// validate-canonicalize-persist pipeline: requests are checked field by
// field, rewritten into stored form (padded id, digits-only phone, trimmed
// text), and only then handed to the repository.
type userService struct {
	users     store.UserRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewUserService constructs a UserService over the given repository and
// validator. The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewUserService(users store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		users:     users,
		validator: validator,
		logger:    logger,
	}
}

// CreateUser validates the request, canonicalizes it, and persists a new
// record. Validation failures surface as *validators.ValidationError
// listing every rejected field; a duplicate id surfaces as
// store.ErrUserAlreadyExists.
func (s *userService) CreateUser(ctx context.Context, req models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("id", req.ID).Msg("create request rejected by validation")
		return models.User{}, err
	}

	canonical := validators.CanonicalizeCreate(req)

	user, err := s.users.CreateUser(ctx, models.User{
		ID:          canonical.ID,
		Name:        canonical.Name,
		PhoneNumber: canonical.PhoneNumber,
		Address:     canonical.Address,
	})
	if err != nil {
		log.Err(err).Str("id", canonical.ID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// GetUser fetches one record by path id.
func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.users.GetUserByID(ctx, lookupID(id))
}

// ListUserIDs returns the id of every stored record.
func (s *userService) ListUserIDs(ctx context.Context) ([]string, error) {
	return s.users.ListUserIDs(ctx)
}

// ListUsers returns one page of records with the total matching count.
// Out-of-range paging inputs are clamped rather than rejected.
func (s *userService) ListUsers(ctx context.Context, search string, page, perPage int) (models.UserList, error) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	users, total, err := s.users.ListUsers(ctx, search, page, perPage)
	if err != nil {
		return models.UserList{}, err
	}

	return models.UserList{
		Users:   users,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// UpdateUser validates the partial update (an empty field set is itself a
// validation failure), canonicalizes the supplied fields, and applies them.
func (s *userService) UpdateUser(ctx context.Context, id string, req models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	canonical := lookupID(id)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("id", canonical).Msg("update request rejected by validation")
		return models.User{}, err
	}

	updated, err := s.users.UpdateUser(ctx, canonical, validators.CanonicalizeUpdate(req))
	if err != nil {
		log.Err(err).Str("id", canonical).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes one record by path id.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return s.users.DeleteUser(ctx, lookupID(id))
}

// Ping reports storage connectivity for the health endpoint.
func (s *userService) Ping(ctx context.Context) error {
	return s.users.Ping(ctx)
}

// lookupID maps a path id to the form used for storage lookups. A valid id
// resolves to its canonical padded form; anything else passes through as
// given and simply misses, so an unparseable path id reads as an absent
// record, never as a bad request. Only create and update bodies are
// validated.
func lookupID(id string) string {
	if canonical, ok := validators.CanonicalIsraeliID(id); ok {
		return canonical
	}

	return id
}
