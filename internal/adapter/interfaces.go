// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote record store
// that holds seed backups.
//
// The primary abstraction is [RemoteStore], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]).
//
// Every failure is returned as a *[RemoteError] whose Kind is one of the
// sentinels in errors.go, so callers can use [errors.Is] for
// transport-agnostic handling (e.g. [ErrNotAuthenticated] for 401,
// [ErrRateLimited] for 429) and [errors.As] to read the server's retry hint.
package adapter

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-seed-keeper/models"
)

// RemoteStore defines communication with the per-user remote record store.
type RemoteStore interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently in use.
	Token() string

	// Upload writes record under namespace/name, overwriting any existing
	// record. Only non-empty fields are written.
	Upload(ctx context.Context, namespace, name string, record models.SeedBackup) error

	// Delete removes namespace/name. A missing record is not an error.
	Delete(ctx context.Context, namespace, name string) error

	// FetchAll lists the records of namespace, newest first. Pages are
	// requested lazily while the caller keeps ranging; a failed page is
	// yielded once as a terminal error. Each range restarts from the first
	// page.
	FetchAll(ctx context.Context, namespace string) iter.Seq2[models.SeedBackup, error]

	// Ping checks that the remote store answers.
	Ping(ctx context.Context) error
}
