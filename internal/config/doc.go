// Package config loads, merges and validates configuration for the
// custodian server and the keyplace CLI.
//
// Sources, highest priority first:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
