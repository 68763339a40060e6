// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the wallet identity and seed settings of the client.
type ClientApp struct {
	Chain        string
	NodeID       string
	CloudKey     string
	SeedFile     string
	SeedLanguage string
	SeedLabel    string
	SessionToken string
	LogLevel     string
	LogFile      string
}

// ClientAdapter holds remote store settings used by the client transport
// layer.
type ClientAdapter struct {
	// HTTPAddress is the remote store base address.
	HTTPAddress string
	// RequestTimeout is the timeout of a single remote request.
	RequestTimeout time.Duration
	// PageSize is the listing page size.
	PageSize int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background monitor settings.
type ClientWorkers struct {
	ReachabilityInterval time.Duration
	CredentialsInterval  time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Chain:        cfg.App.Chain,
			NodeID:       cfg.App.NodeID,
			CloudKey:     cfg.App.CloudKey,
			SeedFile:     cfg.App.SeedFile,
			SeedLanguage: cfg.App.SeedLanguage,
			SeedLabel:    cfg.App.SeedLabel,
			SessionToken: cfg.App.SessionToken,
			LogLevel:     cfg.App.LogLevel,
			LogFile:      cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PageSize:       cfg.Adapter.PageSize,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			ReachabilityInterval: cfg.Workers.ReachabilityInterval,
			CredentialsInterval:  cfg.Workers.CredentialsInterval,
		},
	}
}
