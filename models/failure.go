// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// FailureKind is the taxonomy remote-operation failures are classified into.
type FailureKind int

const (
	FailureTransient FailureKind = iota
	FailureCancelled
	FailureNotAuthenticated
	FailureRateLimited
)

func (k FailureKind) String() string {
	switch k {
	case FailureCancelled:
		return "cancelled"
	case FailureNotAuthenticated:
		return "not_authenticated"
	case FailureRateLimited:
		return "rate_limited"
	default:
		return "transient"
	}
}

// Failure is a classified remote-operation error. RetryAfter is the minimum
// delay suggested by the server, zero when none was given.
type Failure struct {
	Kind       FailureKind
	RetryAfter time.Duration
	Err        error
}

func (f *Failure) Error() string {
	if f.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %s): %v", f.Kind, f.RetryAfter, f.Err)
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
