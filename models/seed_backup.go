// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// SeedBackup is the remote record holding a wallet recovery phrase.
// Exactly one record exists per account; uploads overwrite it.
type SeedBackup struct {
	Phrase    string    `json:"phrase"`
	Language  string    `json:"language"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// SeedBackupPage is one page of a paginated record listing.
type SeedBackupPage struct {
	Records    []SeedBackup `json:"records"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// RecordNamespace returns the record table name used for the given chain,
// e.g. "seeds_bitcoin_testnet". Characters other than [a-z0-9_] are dropped.
func RecordNamespace(chain string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(chain) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return "seeds_bitcoin_" + b.String()
}
