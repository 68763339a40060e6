// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPhrase       = errors.New("recovery phrase is required")
	ErrInvalidWordCount  = errors.New("invalid recovery phrase word count")
	ErrInvalidWord       = errors.New("invalid recovery phrase word")
	ErrInvalidLanguage   = errors.New("invalid recovery phrase language")
	ErrNameTooLong       = errors.New("wallet name is too long")
	ErrCreatedAtInFuture = errors.New("creation time is in the future")
)
