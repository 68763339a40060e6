// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background monitors: the reachability
// probe of the remote store and the session credential watcher.
//
// Each monitor implements [Worker]; [Workers] runs all of them in one
// errgroup and stops them together when the context is cancelled.
package workers

import "context"

// Worker is a long-running background task. Run blocks until ctx is done
// or the worker fails; a nil return means a clean shutdown.
type Worker interface {
	Run(ctx context.Context) error
}

// Pinger checks that the remote store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TokenSource reads the persisted session token. "" means no session.
type TokenSource interface {
	SessionToken(ctx context.Context) (string, error)
}

// TokenSink receives the token to attach to remote requests.
type TokenSink interface {
	SetToken(token string)
}
