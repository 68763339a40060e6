// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidSeedSyncConfig = errors.New("invalid seed sync config")
	ErrAlreadyStarted        = errors.New("seed sync already started")
	ErrStopped               = errors.New("seed sync stopped")
)
