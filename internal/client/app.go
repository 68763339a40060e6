// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-seed-keeper/internal/adapter"
	"github.com/MKhiriev/go-seed-keeper/internal/config"
	"github.com/MKhiriev/go-seed-keeper/internal/logger"
	"github.com/MKhiriev/go-seed-keeper/internal/service"
	"github.com/MKhiriev/go-seed-keeper/internal/store"
	"github.com/MKhiriev/go-seed-keeper/internal/tui"
	"github.com/MKhiriev/go-seed-keeper/internal/validators"
	"github.com/MKhiriev/go-seed-keeper/internal/workers"
	"github.com/MKhiriev/go-seed-keeper/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp opens local storage, connects the remote store and builds the sync
// engine for the configured wallet. The caller must Close the app.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	seed, err := LoadSeed(cfg.App.SeedFile, cfg.App.SeedLanguage, cfg.App.SeedLabel)
	if err != nil {
		return nil, err
	}
	if err = validators.NewSeedBackupValidator().Validate(ctx, seed); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", cfg.App.SeedFile, err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(ctx, cfg, seed, storages, buildInfo, logger)
	if err != nil {
		storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.ClientConfig, seed models.SeedBackup, storages *store.ClientStorages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg.App.SessionToken != "" {
		if err := storages.Preferences.SetSessionToken(ctx, cfg.App.SessionToken); err != nil {
			return nil, fmt.Errorf("save session token: %w", err)
		}
	}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	credentials := workers.NewSessionCredentials(storages.Preferences, remote, cfg.Workers.CredentialsInterval, logger)
	if err = credentials.Load(ctx); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	probe := workers.NewReachabilityProbe(remote, cfg.Workers.ReachabilityInterval, logger)

	services, err := service.NewClientServices(ctx, cfg, seed, service.SeedSyncDeps{
		Preferences:  storages.Preferences,
		Reachability: probe,
		Credentials:  credentials,
		Remote:       remote,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	ui, err := tui.New(services, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(logger, probe, credentials),
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run starts the background monitors and the sync engine, then blocks in the
// terminal UI until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan error, 1)
	go func() { workersDone <- a.workers.Run(ctx) }()

	if err := a.services.SeedSync.Start(ctx); err != nil {
		cancel()
		<-workersDone
		return fmt.Errorf("start seed sync: %w", err)
	}

	enabled, err := a.storages.Preferences.BackupEnabled(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("error reading backup toggle")
	}

	uiErr := a.ui.Run(ctx, enabled)

	a.services.SeedSync.Stop()
	cancel()
	workersErr := <-workersDone

	if errors.Is(uiErr, tui.ErrUserQuit) {
		uiErr = nil
	}
	return errors.Join(uiErr, workersErr)
}

// Close releases the local database.
func (a *App) Close() error {
	return a.storages.Close()
}
