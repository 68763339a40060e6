// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-seed-keeper/internal/config"
	"github.com/MKhiriev/go-seed-keeper/internal/logger"
	"github.com/MKhiriev/go-seed-keeper/models"
)

type ClientServices struct {
	SeedSync SeedSyncManager
}

// NewClientServices builds the client services for the wallet configured in
// cfg. seed is the record uploaded while backup is enabled.
func NewClientServices(ctx context.Context, cfg *config.ClientConfig, seed models.SeedBackup, deps SeedSyncDeps, logger *logger.Logger) (*ClientServices, error) {
	seedSync, err := NewSeedSyncManager(ctx, SeedSyncConfig{
		Chain:          cfg.App.Chain,
		NodeID:         cfg.App.NodeID,
		CloudKey:       cfg.App.CloudKey,
		Seed:           seed,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}, deps, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{SeedSync: seedSync}, nil
}
