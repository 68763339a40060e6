// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotAuthenticated = errors.New("remote store: not authenticated")
	ErrRateLimited      = errors.New("remote store: rate limited")
	ErrPartialFailure   = errors.New("remote store: partial failure")
	ErrCancelled        = errors.New("remote store: request cancelled")
	ErrRemote           = errors.New("remote store: request failed")
	ErrNotFound         = errors.New("remote store: record not found")
	ErrPagination       = errors.New("remote store: pagination did not advance")
)

// Per-item error codes carried in a 207 response body.
const (
	ItemCodeNotAuthenticated = "NOT_AUTHENTICATED"
	ItemCodeRateLimited      = "RATE_LIMITED"
)

// ItemError is the failure of a single item within a partial failure.
type ItemError struct {
	Item    string `json:"item"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ItemError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Item, e.Code, e.Message)
}

// Unwrap maps the item code to the package sentinel so that errors.Is works
// on individual items.
func (e ItemError) Unwrap() error {
	switch strings.ToUpper(e.Code) {
	case ItemCodeNotAuthenticated:
		return ErrNotAuthenticated
	case ItemCodeRateLimited:
		return ErrRateLimited
	default:
		return ErrRemote
	}
}

// RemoteError is returned by every [RemoteStore] operation that fails.
// Kind is one of the sentinels above and is what errors.Is matches on;
// Cause is the underlying transport error, if any.
type RemoteError struct {
	Op         string
	StatusCode int
	RetryAfter time.Duration
	Items      []ItemError
	Kind       error
	Cause      error
}

func (e *RemoteError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (http %d)", e.StatusCode)
	}
	if e.RetryAfter > 0 {
		fmt.Fprintf(&b, ", retry after %s", e.RetryAfter)
	}
	if len(e.Items) > 0 {
		fmt.Fprintf(&b, ", %d item error(s)", len(e.Items))
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *RemoteError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
