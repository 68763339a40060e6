// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-seed-keeper/models"
)

type stateMsg struct {
	state models.SyncState
}

type stateClosedMsg struct{}

type clockMsg time.Time

type toggledMsg struct {
	enabled bool
	err     error
}

type backupsLoadedMsg struct {
	items []models.SeedBackup
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
