// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-seed-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// PreferenceStore persists the two booleans the sync engine depends on: the
// user's "backup enabled" toggle and, per record, whether the seed has ever
// been uploaded.
type PreferenceStore interface {
	// BackupEnabled returns the current toggle value.
	BackupEnabled(ctx context.Context) (bool, error)

	// SetBackupEnabled stores the toggle and notifies every subscriber.
	SetBackupEnabled(ctx context.Context, enabled bool) error

	// SubscribeBackupEnabled returns a stream that first delivers the current
	// toggle value and then every change. The stream is closed when ctx is
	// done.
	SubscribeBackupEnabled(ctx context.Context) (<-chan bool, error)

	// HasUploadedSeed reports whether the record named recordName has been
	// uploaded and not deleted since.
	HasUploadedSeed(ctx context.Context, recordName string) (bool, error)

	// SetHasUploadedSeed records the outcome of the last successful upload
	// (true) or delete (false) of recordName.
	SetHasUploadedSeed(ctx context.Context, recordName string, uploaded bool) error
}

// ReachabilityMonitor reports changes of the network path to the remote
// store. PathRequiresConnection counts as reachable.
type ReachabilityMonitor interface {
	PathChanges(ctx context.Context) <-chan models.PathStatus
}

// CredentialStatusProvider reports whether remote-account credentials are
// usable. CurrentStatus is queried on demand; AccountChanges signals that the
// account may have changed and the status should be queried again.
type CredentialStatusProvider interface {
	CurrentStatus(ctx context.Context) (models.AccountStatus, error)
	AccountChanges(ctx context.Context) <-chan struct{}
}

// RemoteStore is the subset of the remote record store used by the sync
// engine. Errors are classified by classifyFailure.
type RemoteStore interface {
	Upload(ctx context.Context, namespace, name string, record models.SeedBackup) error
	Delete(ctx context.Context, namespace, name string) error
	FetchAll(ctx context.Context, namespace string) iter.Seq2[models.SeedBackup, error]
}

// SeedSyncManager keeps the wallet's seed backup in the remote store
// consistent with the user's toggle, and reports its progress as a single
// [models.SyncState] value.
type SeedSyncManager interface {
	// Start subscribes to the toggle, reachability and account monitors and
	// performs the initial credential check. It returns once the monitors
	// are running.
	Start(ctx context.Context) error

	// Stop cancels the monitors, stops any pending wait and blocks until
	// in-flight remote operations have returned.
	Stop()

	// State returns the most recently published state.
	State() models.SyncState

	// Subscribe returns a channel that holds the current state and then
	// every later one. Only the latest value is kept: a slow reader skips
	// intermediate states but never sees them out of order. cancel releases
	// the subscription.
	Subscribe() (states <-chan models.SyncState, cancel func())

	// Skip ends the given wait early. It is ignored unless the current state
	// is still exactly that wait.
	Skip(waiting models.SyncState)

	// SetBackupEnabled changes the user's toggle through the preference
	// store; the engine reacts through its toggle monitor.
	SetBackupEnabled(ctx context.Context, enabled bool) error

	// FetchBackups lists the seed backups stored for the configured chain,
	// newest first.
	FetchBackups(ctx context.Context) iter.Seq2[models.SeedBackup, error]
}
