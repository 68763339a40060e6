// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Field-level requirements
// are enforced on the [ClientConfig] view; here only values that can never
// be valid are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.PageSize < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.ReachabilityInterval < 0 || cfg.Workers.CredentialsInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PageSize <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ReachabilityInterval <= 0 || cfg.Workers.CredentialsInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.NodeID == "" || cfg.App.CloudKey == "" || cfg.App.Chain == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.SeedFile == "" {
		return ErrNoSeedFile
	}

	return nil
}
