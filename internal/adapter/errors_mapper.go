// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type partialFailureBody struct {
	Errors []ItemError `json:"errors"`
}

// mapHTTPError converts a completed response into a *RemoteError, or nil for
// a plain 2xx. A 207 is a failure: at least one item was rejected.
func mapHTTPError(op string, resp *resty.Response, now time.Time) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices && code != http.StatusMultiStatus {
		return nil
	}

	remoteErr := &RemoteError{
		Op:         op,
		StatusCode: code,
		RetryAfter: parseRetryAfter(resp.Header().Get("Retry-After"), now),
	}

	switch code {
	case http.StatusUnauthorized:
		remoteErr.Kind = ErrNotAuthenticated
	case http.StatusTooManyRequests:
		remoteErr.Kind = ErrRateLimited
	case http.StatusNotFound:
		remoteErr.Kind = ErrNotFound
	case http.StatusMultiStatus:
		remoteErr.Kind = ErrPartialFailure
		var body partialFailureBody
		if err := json.Unmarshal(resp.Body(), &body); err == nil {
			remoteErr.Items = body.Errors
		}
	default:
		remoteErr.Kind = ErrRemote
	}

	if msg := strings.TrimSpace(string(resp.Body())); msg != "" && remoteErr.Kind != ErrPartialFailure {
		remoteErr.Cause = errors.New(msg)
	}

	return remoteErr
}

// mapTransportError wraps an error returned before any response was read.
func mapTransportError(op string, err error) error {
	kind := ErrRemote
	if errors.Is(err, context.Canceled) {
		kind = ErrCancelled
	}
	return &RemoteError{Op: op, Kind: kind, Cause: err}
}

// parseRetryAfter accepts both forms of the Retry-After header: delay in
// seconds or an HTTP date. Anything else yields zero.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if secs, err := strconv.Atoi(value); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
