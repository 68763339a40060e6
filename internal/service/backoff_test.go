// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelay_Schedule(t *testing.T) {
	want := []time.Duration{
		250 * time.Millisecond,
		500 * time.Millisecond,
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		32 * time.Second,
		64 * time.Second,
		128 * time.Second,
		256 * time.Second,
		512 * time.Second,
	}

	for i, d := range want {
		assert.Equal(t, d, backoffDelay(uint(i+1), 0), "attempt %d", i+1)
	}
}

func TestBackoffDelay_Clamped(t *testing.T) {
	for _, count := range []uint{12, 13, 50, 1 << 20} {
		assert.Equal(t, 512*time.Second, backoffDelay(count, 0), "attempt %d", count)
	}
}

func TestBackoffDelay_ZeroCountTreatedAsFirst(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, backoffDelay(0, 0))
}

func TestBackoffDelay_RetryAfter(t *testing.T) {
	tests := []struct {
		name       string
		count      uint
		retryAfter time.Duration
		want       time.Duration
	}{
		{"server hint wins", 1, 5 * time.Second, 5 * time.Second},
		{"calculated wins", 8, 5 * time.Second, 32 * time.Second},
		{"hint above cap", 20, time.Hour, time.Hour},
		{"negative hint ignored", 2, -time.Second, 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backoffDelay(tt.count, tt.retryAfter))
		})
	}
}

func TestBackoffDelay_Monotonic(t *testing.T) {
	prev := time.Duration(0)
	for count := uint(1); count <= 20; count++ {
		d := backoffDelay(count, 0)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}
