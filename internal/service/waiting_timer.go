// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-seed-keeper/models"
)

// afterFunc schedules f after d and returns a function that cancels it.
// The returned stop reports whether the call was prevented.
type afterFunc func(d time.Duration, f func()) (stop func() bool)

func realAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// waitingTimers holds the countdowns of backoff waits, one per wait instance.
// A timer that fires after its wait was left is harmless: the controller
// ignores expirations that do not match the current state.
type waitingTimers struct {
	afterFunc afterFunc

	mu     sync.Mutex
	timers map[uint64]func() bool
}

func newWaitingTimers(af afterFunc) *waitingTimers {
	if af == nil {
		af = realAfterFunc
	}
	return &waitingTimers{afterFunc: af, timers: make(map[uint64]func() bool)}
}

// arm starts the countdown of wait and calls fire with it on expiry. The
// countdown runs for the full scheduled delay; it is armed right after the
// wait is committed.
func (w *waitingTimers) arm(wait models.SyncState, fire func(models.SyncState)) {
	id := wait.WaitID()
	delay := wait.Schedule.Delay

	w.mu.Lock()
	defer w.mu.Unlock()

	if stop, ok := w.timers[id]; ok {
		stop()
	}
	w.timers[id] = w.afterFunc(delay, func() {
		w.mu.Lock()
		delete(w.timers, id)
		w.mu.Unlock()

		fire(wait)
	})
}

// stop cancels the countdown of wait. Stopping an unknown or already fired
// wait does nothing.
func (w *waitingTimers) stop(wait models.SyncState) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if stop, ok := w.timers[wait.WaitID()]; ok {
		stop()
		delete(w.timers, wait.WaitID())
	}
}

func (w *waitingTimers) stopAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, stop := range w.timers {
		stop()
		delete(w.timers, id)
	}
}

// pending returns the number of armed countdowns.
func (w *waitingTimers) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}
