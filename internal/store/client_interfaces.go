// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

// LocalPreferences is the client's durable key-value state: the backup
// toggle, which seed records were uploaded, and the remote session token.
type LocalPreferences interface {
	BackupEnabled(ctx context.Context) (bool, error)
	SetBackupEnabled(ctx context.Context, enabled bool) error
	SubscribeBackupEnabled(ctx context.Context) (<-chan bool, error)

	HasUploadedSeed(ctx context.Context, recordName string) (bool, error)
	SetHasUploadedSeed(ctx context.Context, recordName string, uploaded bool) error

	SessionToken(ctx context.Context) (string, error)
	SetSessionToken(ctx context.Context, token string) error
}
