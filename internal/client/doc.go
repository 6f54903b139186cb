// Package client implements the command-line client of the user directory
// service. It parses a single subcommand per invocation and exercises the
// adapter client library against a running server.
package client
