// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote store settings
	// (for example, missing address, non-positive timeout or page size).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing wallet identity
	// (node id, cloud key or chain).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates non-positive monitor intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrNoSeedFile indicates that no recovery phrase file was configured.
	ErrNoSeedFile = errors.New("no seed file configured")
)
