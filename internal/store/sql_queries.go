// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/muzaparoff/rest-api-exam/models"
)

// userColumns is the canonical column order shared by every SELECT and
// every row scan in this package.
var userColumns = []string{"id", "name", "phone_number", "address", "created_at", "updated_at"}

func buildInsertUserQuery(b squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.PhoneNumber, user.Address, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildSelectUserByIDQuery(b squirrel.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildSelectUserIDsQuery selects the id of every stored record, ordered by
// creation time so the listing is stable across calls.
func buildSelectUserIDsQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	return b.Select("id").
		From(models.User{}.TableName()).
		OrderBy("created_at ASC").
		ToSql()
}

// buildListUsersQuery builds a paginated SELECT with an optional
// case-insensitive substring search over name and address. page is 1-based.
func buildListUsersQuery(b squirrel.StatementBuilderType, search string, page, perPage int) (string, []any, error) {
	q := b.Select(userColumns...).
		From(models.User{}.TableName())

	q = withSearchFilter(q, search)

	return q.OrderBy("created_at ASC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
}

// buildCountUsersQuery builds the total count matching the same search
// filter as buildListUsersQuery.
func buildCountUsersQuery(b squirrel.StatementBuilderType, search string) (string, []any, error) {
	q := b.Select("COUNT(*)").
		From(models.User{}.TableName())

	q = withSearchFilter(q, search)

	return q.ToSql()
}

// withSearchFilter applies a case-insensitive substring match on name and
// address. LOWER(...) LIKE behaves identically on PostgreSQL and SQLite.
func withSearchFilter(q squirrel.SelectBuilder, search string) squirrel.SelectBuilder {
	if search == "" {
		return q
	}

	pattern := "%" + strings.ToLower(search) + "%"
	return q.Where(squirrel.Or{
		squirrel.Like{"LOWER(name)": pattern},
		squirrel.Like{"LOWER(address)": pattern},
	})
}

// buildUpdateUserQuery builds an UPDATE touching only the supplied fields.
// The caller guarantees at least one field is present; updated_at is always
// refreshed.
func buildUpdateUserQuery(b squirrel.StatementBuilderType, id string, update models.UserUpdate, updatedAt any) (string, []any, error) {
	q := b.Update(models.User{}.TableName()).
		Set("updated_at", updatedAt)

	if update.Name != nil {
		q = q.Set("name", *update.Name)
	}
	if update.PhoneNumber != nil {
		q = q.Set("phone_number", *update.PhoneNumber)
	}
	if update.Address != nil {
		q = q.Set("address", *update.Address)
	}

	return q.Where(squirrel.Eq{"id": id}).ToSql()
}

func buildDeleteUserQuery(b squirrel.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(models.User{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}
