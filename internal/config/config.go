// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported dataset store drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// StructuredConfig is the top-level configuration container for the
// anything-list application. It is populated by merging built-in defaults,
// environment variables, command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the dataset store and settings file locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the account status source settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the local HTTP API settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds settings of background workers run by the local API.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ContainerID names the cloud container whose signed-in account is
	// queried from the account status source.
	// Env: APP_CONTAINER_ID
	ContainerID string `env:"CONTAINER_ID"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the dataset store connection settings.
	DB DB `envPrefix:"DB_"`

	// SettingsPath is the JSON file holding persisted settings such as the
	// bound account. Empty keeps settings in memory only.
	// Env: STORAGE_SETTINGS_PATH
	SettingsPath string `env:"SETTINGS_PATH"`
}

// DB holds connection settings for the dataset store.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name, a file path for sqlite3 or a connection
	// URL for pgx.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the account status source.
type Adapter struct {
	// HTTPAddress is the base URL of the account status endpoint. When empty
	// the static source is used.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single account status request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is sent as a bearer token with account status requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// StaticAccountID is reported by the static source. Empty means that no
	// account is signed in.
	// Env: ADAPTER_STATIC_ACCOUNT_ID
	StaticAccountID string `env:"STATIC_ACCOUNT_ID"`
}

// Server holds network and timeout settings of the local HTTP API.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// BindingPollInterval is how often the binding watcher re-reads the
	// account status while the local API runs.
	// Env: WORKERS_BINDING_POLL_INTERVAL
	BindingPollInterval time.Duration `env:"BINDING_POLL_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File receives log output. Empty means stderr.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Configuration file (path resolved from sources 2 and 3)
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
