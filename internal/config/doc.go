// Package config provides configuration loading, merging, and validation
// for the user directory service and its command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order, where earlier sources win for any field they set:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path taken from sources 1 and 2)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client binary.
package config
