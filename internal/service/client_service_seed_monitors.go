// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-seed-keeper/models"
)

func (m *seedSyncManager) watchToggle(ctx context.Context, toggles <-chan bool) {
	first := true
	for {
		select {
		case <-ctx.Done():
			return
		case enabled, ok := <-toggles:
			if !ok {
				return
			}
			// the store replays the current value on subscribe
			if first {
				first = false
				if enabled == m.initialEnabled {
					continue
				}
			}
			m.onToggle(enabled)
		}
	}
}

func (m *seedSyncManager) watchReachability(ctx context.Context, paths <-chan models.PathStatus) {
	for {
		select {
		case <-ctx.Done():
			return
		case status, ok := <-paths:
			if !ok {
				return
			}
			m.logger.Debug().Stringer("path", status).Msg("reachability changed")
			m.onReachability(status.Reachable())
		}
	}
}

func (m *seedSyncManager) watchAccount(ctx context.Context, changes <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			m.logger.Debug().Msg("account changed")
			m.checkCredentials()
		}
	}
}

// checkCredentials queries the credential provider off the caller's
// goroutine and feeds the answer into the state machine.
func (m *seedSyncManager) checkCredentials() {
	m.spawn(func(ctx context.Context) {
		status, err := m.credentials.CurrentStatus(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			m.logger.Warn().Err(err).Msg("error fetching account status")
		}
		m.logger.Debug().Stringer("account", status).Msg("account status")
		m.onCredentials(status.Credentialed())
	})
}

func (m *seedSyncManager) onToggle(enabled bool) {
	m.applyTransition(func(t *seedSyncTransition) {
		if enabled == t.isEnabled {
			m.logger.Debug().Bool("enabled", enabled).Msg("backup toggle unchanged")
			return
		}

		t.isEnabled = enabled
		t.needsUpload = enabled
		t.needsDelete = !enabled

		// gate waits end only when their gate clears
		switch {
		case t.active.Kind == models.SyncStateWaitingBackoff:
			t.skipWaiting()
		case t.active.Kind == models.SyncStateSynced, t.active.Kind == models.SyncStateDisabled:
			t.reconcile()
		}
	})
}

func (m *seedSyncManager) onReachability(reachable bool) {
	m.applyTransition(func(t *seedSyncTransition) {
		if reachable {
			t.waitingForInternet = false
			switch t.active.Kind {
			case models.SyncStateInitializing, models.SyncStateWaitingForInternet:
				t.reconcile()
			}
			return
		}

		t.waitingForInternet = true
		switch t.active.Kind {
		case models.SyncStateInitializing, models.SyncStateSynced:
			t.active = models.StateWaitingForInternet
		}
	})
}

func (m *seedSyncManager) onCredentials(available bool) {
	m.applyTransition(func(t *seedSyncTransition) {
		if available {
			t.waitingForCredentials = false
			switch t.active.Kind {
			case models.SyncStateInitializing, models.SyncStateWaitingForCredentials:
				t.reconcile()
			case models.SyncStateWaitingBackoff:
				if isNotAuthenticated(t.active.Err) {
					t.skipWaiting()
				}
			}
			return
		}

		t.waitingForCredentials = true
		switch t.active.Kind {
		case models.SyncStateInitializing:
			t.reconcile()
		case models.SyncStateSynced:
			t.active = models.StateWaitingForCredentials
		}
	})
}

func isNotAuthenticated(err error) bool {
	var failure *models.Failure
	return errors.As(err, &failure) && failure.Kind == models.FailureNotAuthenticated
}
