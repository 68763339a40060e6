// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-seed-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPhrase targets the recovery phrase words.
	FieldPhrase = "phrase"

	// FieldLanguage targets the wordlist language.
	FieldLanguage = "language"

	// FieldName targets the optional wallet label.
	FieldName = "name"

	// FieldCreatedAt targets the record creation time.
	FieldCreatedAt = "created_at"
)

// maxNameLength bounds the wallet label in runes.
const maxNameLength = 64

// allowedWordCounts are the BIP-39 mnemonic lengths.
var allowedWordCounts = []int{12, 15, 18, 21, 24}

// allowedLanguages are the codes of the BIP-39 wordlists.
var allowedLanguages = []string{
	"en",
	"ja",
	"ko",
	"es",
	"zh-hans",
	"zh-hant",
	"fr",
	"it",
	"cs",
	"pt",
}

// SeedBackupValidator implements the Validator interface for
// models.SeedBackup, by value or by pointer.
type SeedBackupValidator struct {
	now func() time.Time
}

func NewSeedBackupValidator() Validator {
	return &SeedBackupValidator{now: time.Now}
}

// Validate checks the given fields of a seed backup, or all of them when no
// field is named.
func (v *SeedBackupValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SeedBackup:
		return v.validateSeedBackup(ctx, value, fields...)
	case *models.SeedBackup:
		if value == nil {
			return fmt.Errorf("%w: nil *models.SeedBackup", ErrUnsupportedType)
		}
		return v.validateSeedBackup(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *SeedBackupValidator) validateSeedBackup(_ context.Context, seed models.SeedBackup, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhrase, FieldLanguage, FieldName, FieldCreatedAt}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldPhrase:
			err = validatePhrase(seed.Phrase)
		case FieldLanguage:
			if !slices.Contains(allowedLanguages, strings.ToLower(seed.Language)) {
				err = fmt.Errorf("%w: %q", ErrInvalidLanguage, seed.Language)
			}
		case FieldName:
			if n := len([]rune(seed.Name)); n > maxNameLength {
				err = fmt.Errorf("%w: %d > %d", ErrNameTooLong, n, maxNameLength)
			}
		case FieldCreatedAt:
			if seed.CreatedAt.After(v.now().Add(time.Minute)) {
				err = ErrCreatedAtInFuture
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validatePhrase(phrase string) error {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return ErrEmptyPhrase
	}
	if !slices.Contains(allowedWordCounts, len(words)) {
		return fmt.Errorf("%w: %d", ErrInvalidWordCount, len(words))
	}
	for i, w := range words {
		for _, r := range w {
			if !unicode.IsLetter(r) {
				return fmt.Errorf("%w: word %d", ErrInvalidWord, i+1)
			}
		}
	}
	return nil
}
