// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-seed-keeper/internal/adapter"
	"github.com/MKhiriev/go-seed-keeper/models"
)

// classifyFailure sorts a remote-operation error into the failure taxonomy
// and extracts the server's retry hint, if any.
func classifyFailure(err error) *models.Failure {
	var failure *models.Failure
	if errors.As(err, &failure) {
		return failure
	}

	failure = &models.Failure{Kind: models.FailureTransient, Err: err}

	var remoteErr *adapter.RemoteError
	if errors.As(err, &remoteErr) {
		failure.RetryAfter = remoteErr.RetryAfter
	}

	switch {
	case errors.Is(err, adapter.ErrCancelled), errors.Is(err, context.Canceled):
		failure.Kind = models.FailureCancelled
	case errors.Is(err, adapter.ErrNotAuthenticated), hasNestedNotAuthenticated(remoteErr):
		failure.Kind = models.FailureNotAuthenticated
	case errors.Is(err, adapter.ErrRateLimited):
		failure.Kind = models.FailureRateLimited
	}

	return failure
}

// hasNestedNotAuthenticated reports whether any item of a partial failure was
// rejected for missing authentication.
func hasNestedNotAuthenticated(remoteErr *adapter.RemoteError) bool {
	if remoteErr == nil {
		return false
	}
	for _, item := range remoteErr.Items {
		if errors.Is(item, adapter.ErrNotAuthenticated) {
			return true
		}
	}
	return false
}

// usesBackoff reports whether f should be retried after an exponential
// backoff wait. Cancelled and unauthenticated operations are retried through
// reconciliation instead, unless the server asked for a delay.
func usesBackoff(f *models.Failure) bool {
	switch f.Kind {
	case models.FailureCancelled, models.FailureNotAuthenticated:
		return f.RetryAfter > 0
	default:
		return true
	}
}
