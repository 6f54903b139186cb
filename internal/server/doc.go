// Package server wires and runs the HTTP server of the user directory
// service, including startup, signal handling, and graceful shutdown.
package server
