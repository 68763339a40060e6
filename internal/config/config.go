// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-seed-keeper client. It is populated by merging values from defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the wallet identity, the seed to back up and logging
	// settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local preference database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote record store endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds polling intervals of the background monitors.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds wallet and application-level settings.
type App struct {
	// Chain is the chain name the wallet runs on (e.g. "mainnet",
	// "testnet"). It selects the remote record namespace.
	// Env: APP_CHAIN
	Chain string `env:"CHAIN"`

	// NodeID is the wallet's public node identifier.
	// Env: APP_NODE_ID
	NodeID string `env:"NODE_ID"`

	// CloudKey is the secret key mixed with NodeID to derive the remote
	// record name. Must be kept confidential.
	// Env: APP_CLOUD_KEY
	CloudKey string `env:"CLOUD_KEY"`

	// SeedFile is the path of the file holding the recovery phrase.
	// Env: APP_SEED_FILE
	SeedFile string `env:"SEED_FILE"`

	// SeedLanguage is the wordlist language of the recovery phrase.
	// Env: APP_SEED_LANGUAGE
	SeedLanguage string `env:"SEED_LANGUAGE"`

	// SeedLabel is an optional human-readable wallet name stored with the
	// backup.
	// Env: APP_SEED_LABEL
	SeedLabel string `env:"SEED_LABEL"`

	// SessionToken is a bearer token for the remote store. When set it is
	// persisted to the local session on startup.
	// Env: APP_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path the client log is appended to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for local storage.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the remote record store.
type Adapter struct {
	// HTTPAddress is the base address of the remote store
	// (e.g. "https://backup.example.com" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single remote request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageSize is the number of records requested per listing page.
	// Env: ADAPTER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Workers holds the polling intervals of background monitors.
type Workers struct {
	// ReachabilityInterval is how often the remote store is pinged.
	// Env: WORKERS_REACHABILITY_INTERVAL
	ReachabilityInterval time.Duration `env:"REACHABILITY_INTERVAL"`

	// CredentialsInterval is how often the stored session is checked for
	// account changes.
	// Env: WORKERS_CREDENTIALS_INTERVAL
	CredentialsInterval time.Duration `env:"CREDENTIALS_INTERVAL"`
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Chain:        "mainnet",
			SeedLanguage: "en",
			LogLevel:     "info",
		},
		Storage: Storage{DB: DB{DSN: "seed-keeper.db"}},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
			PageSize:       50,
		},
		Workers: Workers{
			ReachabilityInterval: 10 * time.Second,
			CredentialsInterval:  30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
