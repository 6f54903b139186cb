// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muzaparoff/rest-api-exam/internal/adapter"
	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/models"
)

// ErrUsage is returned for an unknown subcommand or wrong arguments; main
// prints the usage text when it sees this error.
var ErrUsage = errors.New("usage error")

const usage = `usage: client <command> [arguments]

commands:
  health                                  show server health
  wait                                    block until the server is healthy
  login <username> <password>             obtain a bearer token
  create <id> <name> <phone> <address>    create a record
  get <id>                                fetch one record
  ids                                     list all record ids
  list [page] [per_page] [search]         list records with paging
  update <id> <field>=<value> ...         update fields (name, phone_number, address)
  delete <id>                             delete a record
  bulk-delete <id> ...                    delete several records
`

// App dispatches one CLI subcommand to the API client.
type App struct {
	api adapter.UserAPIClient
	out io.Writer

	logger *logger.Logger
}

func NewApp(api adapter.UserAPIClient, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, out: out, logger: logger}
}

// Usage returns the CLI help text.
func (a *App) Usage() string {
	return usage
}

// Run executes one subcommand. args is the command line after the program
// name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	command, rest := args[0], args[1:]

	switch command {
	case "health":
		health, err := a.api.HealthCheck(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(health)

	case "wait":
		if err := a.api.WaitForServer(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "server is healthy")
		return nil

	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("%w: login <username> <password>", ErrUsage)
		}
		if err := a.api.Login(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "logged in")
		return nil

	case "create":
		if len(rest) != 4 {
			return fmt.Errorf("%w: create <id> <name> <phone> <address>", ErrUsage)
		}
		user, err := a.api.CreateUser(ctx, models.UserCreate{
			ID:          rest[0],
			Name:        rest[1],
			PhoneNumber: rest[2],
			Address:     rest[3],
		})
		if err != nil {
			return err
		}
		return a.printJSON(user)

	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("%w: get <id>", ErrUsage)
		}
		user, err := a.api.GetUser(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.printJSON(user)

	case "ids":
		ids, err := a.api.ListUserIDs(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(ids)

	case "list":
		page, perPage, search, err := parseListArgs(rest)
		if err != nil {
			return err
		}
		list, err := a.api.ListUsersDetailed(ctx, page, perPage, search)
		if err != nil {
			return err
		}
		return a.printJSON(list)

	case "update":
		if len(rest) < 2 {
			return fmt.Errorf("%w: update <id> <field>=<value> ...", ErrUsage)
		}
		update, err := parseUpdateArgs(rest[1:])
		if err != nil {
			return err
		}
		user, err := a.api.UpdateUser(ctx, rest[0], update)
		if err != nil {
			return err
		}
		return a.printJSON(user)

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("%w: delete <id>", ErrUsage)
		}
		if err := a.api.DeleteUser(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "deleted")
		return nil

	case "bulk-delete":
		if len(rest) == 0 {
			return fmt.Errorf("%w: bulk-delete <id> ...", ErrUsage)
		}
		result := a.api.BulkDeleteUsers(ctx, rest)
		return a.printBulkResult(result)

	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printBulkResult(result adapter.BulkResult) error {
	fmt.Fprintf(a.out, "%d succeeded, %d failed of %d\n",
		result.Succeeded, result.Failed, result.Total())
	for _, item := range result.Items {
		if item.Err != nil {
			fmt.Fprintf(a.out, "  %s: %v\n", item.ID, item.Err)
		}
	}
	return nil
}

func parseListArgs(args []string) (page, perPage int, search string, err error) {
	page, perPage = 1, 10

	if len(args) > 0 {
		if page, err = strconv.Atoi(args[0]); err != nil {
			return 0, 0, "", fmt.Errorf("%w: page must be a number", ErrUsage)
		}
	}
	if len(args) > 1 {
		if perPage, err = strconv.Atoi(args[1]); err != nil {
			return 0, 0, "", fmt.Errorf("%w: per_page must be a number", ErrUsage)
		}
	}
	if len(args) > 2 {
		search = args[2]
	}

	return page, perPage, search, nil
}

func parseUpdateArgs(pairs []string) (models.UserUpdate, error) {
	var update models.UserUpdate

	for _, pair := range pairs {
		field, value, found := strings.Cut(pair, "=")
		if !found {
			return models.UserUpdate{}, fmt.Errorf("%w: expected <field>=<value>, got %q", ErrUsage, pair)
		}

		v := value
		switch field {
		case "name":
			update.Name = &v
		case "phone_number", "phone":
			update.PhoneNumber = &v
		case "address":
			update.Address = &v
		default:
			return models.UserUpdate{}, fmt.Errorf("%w: unknown field %q", ErrUsage, field)
		}
	}

	return update, nil
}
