// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-seed-keeper/models"
)

var ErrEmptySeed = errors.New("seed file holds no recovery phrase")

// LoadSeed reads the recovery phrase from path. Words may be split across
// lines; they are joined with single spaces.
func LoadSeed(path, language, label string) (models.SeedBackup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.SeedBackup{}, fmt.Errorf("read seed file: %w", err)
	}

	words := strings.Fields(string(raw))
	if len(words) == 0 {
		return models.SeedBackup{}, ErrEmptySeed
	}

	return models.SeedBackup{
		Phrase:   strings.Join(words, " "),
		Language: language,
		Name:     label,
	}, nil
}
