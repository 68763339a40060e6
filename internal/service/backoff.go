// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "time"

const (
	backoffBase        = 250 * time.Millisecond
	backoffMaxAttempts = 12
)

// backoffDelay returns the wait before retrying after count consecutive
// failures: 250ms doubled per failure, capped at 512s from the 12th failure
// on. A positive retryAfter suggested by the server raises the delay.
func backoffDelay(count uint, retryAfter time.Duration) time.Duration {
	if count == 0 {
		count = 1
	}
	if count > backoffMaxAttempts {
		count = backoffMaxAttempts
	}

	return max(backoffBase<<(count-1), retryAfter)
}
