// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. It
// works against either backend through the squirrel builder and error
// classifier carried by *DB.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. CreatedAt and UpdatedAt are
// assigned here so the returned value matches what was stored.
//
// Error handling:
//   - duplicate primary key (PostgreSQL 23505 or the SQLite constraint
//     equivalent) → [ErrUserAlreadyExists];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation || sqliteUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: executing insert")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a single record by its canonical national ID.
// An empty result maps to [ErrUserNotFound].
func (r *userRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: building query")
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanUser(row, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning row")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return user, nil
}

// ListUserIDs returns the id of every stored record, ordered by creation
// time.
func (r *userRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserIDsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUserIDs").Msg("error: building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListUserIDs").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUserIDs").Msg("error: scanning row")
			return nil, errors.Join(ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUserIDs").Msg("error: iterating rows")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return ids, nil
}

// ListUsers returns one page of records plus the total count matching the
// search filter. page is 1-based.
func (r *userRepository) ListUsers(ctx context.Context, search string, page, perPage int) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountUsersQuery(r.db.builder, search)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: building count query")
		return nil, 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: executing count query")
		return nil, 0, errors.Join(ErrExecutingQuery, err)
	}

	query, args, err := buildListUsersQuery(r.db.builder, search, page, perPage)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: building list query")
		return nil, 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	users, err := r.queryUsers(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateUser applies the supplied fields to an existing record and returns
// the record as stored afterwards. Zero affected rows maps to
// [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, id, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building query")
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: executing update")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: reading affected rows")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.GetUserByID(ctx, id)
}

// DeleteUser removes a record. Zero affected rows maps to [ErrUserNotFound].
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: building query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Ping verifies database connectivity for the health endpoint.
func (r *userRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.queryUsers").Msg("error: executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.queryUsers").Msg("error: scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.queryUsers").Msg("error: iterating rows")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return users, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one row in the userColumns order.
func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Name, &user.PhoneNumber, &user.Address, &user.CreatedAt, &user.UpdatedAt)
}
