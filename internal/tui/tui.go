// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the live backup status and the restore list in the
// terminal.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-seed-keeper/internal/logger"
	"github.com/MKhiriev/go-seed-keeper/internal/service"
	"github.com/MKhiriev/go-seed-keeper/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	sync      service.SeedSyncManager
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SeedSync == nil {
		return nil, errors.New("tui: seed sync service is required")
	}
	return &TUI{sync: services.SeedSync, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the status screen until the user quits or ctx is done.
// enabled is the backup toggle at startup.
func (t *TUI) Run(ctx context.Context, enabled bool) error {
	states, cancel := t.sync.Subscribe()
	defer cancel()

	model := newStatusModel(ctx, t.sync, states, enabled, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		if ctx.Err() != nil {
			return nil
		}
		return runErr
	}

	result, ok := finalModel.(statusModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
