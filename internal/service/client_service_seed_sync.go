// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/MKhiriev/go-seed-keeper/internal/logger"
	"github.com/MKhiriev/go-seed-keeper/internal/utils"
	"github.com/MKhiriev/go-seed-keeper/models"
)

// SeedSyncConfig identifies the wallet whose seed is backed up.
type SeedSyncConfig struct {
	Chain    string
	NodeID   string
	CloudKey string

	// Seed is the record uploaded while the backup is enabled.
	Seed models.SeedBackup

	// RequestTimeout bounds every remote operation. Zero means no bound.
	RequestTimeout time.Duration
}

// SeedSyncDeps are the collaborators of the sync engine.
type SeedSyncDeps struct {
	Preferences  PreferenceStore
	Reachability ReachabilityMonitor
	Credentials  CredentialStatusProvider
	Remote       RemoteStore
}

// seedSyncState is the lock-protected state of the engine. Only
// applyTransition mutates it.
type seedSyncState struct {
	isEnabled   bool
	needsUpload bool
	needsDelete bool

	waitingForInternet    bool
	waitingForCredentials bool

	active models.SyncState

	consecutiveErrorCount uint
}

func newSeedSyncState(isEnabled, hasUploaded bool) seedSyncState {
	s := seedSyncState{
		isEnabled:             isEnabled,
		needsUpload:           isEnabled && !hasUploaded,
		needsDelete:           !isEnabled && hasUploaded,
		waitingForInternet:    true,
		waitingForCredentials: true,
		active:                models.StateInitializing,
	}
	if !s.isEnabled && !s.needsDelete {
		s.active = models.StateDisabled
	}
	return s
}

// reconciled derives the state implied by the gates and the pending flags.
func (s *seedSyncState) reconciled() models.SyncState {
	switch {
	case s.waitingForCredentials:
		return models.StateWaitingForCredentials
	case s.waitingForInternet:
		return models.StateWaitingForInternet
	case s.isEnabled && s.needsUpload:
		return models.StateUploading
	case s.isEnabled:
		return models.StateSynced
	case s.needsDelete:
		return models.StateDeleting
	default:
		return models.StateDisabled
	}
}

// seedSyncTransition is handed to a mutator. Besides the state it collects
// the requests that are honoured when the transition commits.
type seedSyncTransition struct {
	*seedSyncState

	reconcileRequested bool
	retryRequested     bool
	skips              []models.SyncState
}

// reconcile asks for active to be recomputed once the mutator returns.
func (t *seedSyncTransition) reconcile() {
	t.reconcileRequested = true
}

// retry asks for the pending operation to be started again when the
// committed state is the operation that just failed.
func (t *seedSyncTransition) retry() {
	t.retryRequested = true
}

// skipWaiting asks for the current backoff wait to be skipped after the lock
// is released. Skipping re-enters applyTransition.
func (t *seedSyncTransition) skipWaiting() {
	if t.active.Kind == models.SyncStateWaitingBackoff {
		t.skips = append(t.skips, t.active)
	}
}

type seedSyncManager struct {
	prefs        PreferenceStore
	reachability ReachabilityMonitor
	credentials  CredentialStatusProvider
	remote       RemoteStore

	seed           models.SeedBackup
	namespace      string
	recordName     string
	requestTimeout time.Duration
	initialEnabled bool

	mu       sync.Mutex
	state    seedSyncState
	commits  uint64
	waits    uint64
	started  bool
	stopped  bool
	runCtx   context.Context
	stopRun  context.CancelFunc
	inflight sync.WaitGroup

	publisher *statePublisher
	timers    *waitingTimers
	now       func() time.Time

	logger *logger.Logger
}

// NewSeedSyncManager builds the sync engine for the wallet described by cfg.
// It reads the toggle and the "has uploaded" flag synchronously; nothing
// happens until Start is called.
func NewSeedSyncManager(ctx context.Context, cfg SeedSyncConfig, deps SeedSyncDeps, log *logger.Logger) (SeedSyncManager, error) {
	return newSeedSyncManager(ctx, cfg, deps, nil, log)
}

func newSeedSyncManager(ctx context.Context, cfg SeedSyncConfig, deps SeedSyncDeps, af afterFunc, log *logger.Logger) (*seedSyncManager, error) {
	if cfg.NodeID == "" || cfg.CloudKey == "" || cfg.Chain == "" {
		return nil, fmt.Errorf("%w: chain, node id and cloud key are required", ErrInvalidSeedSyncConfig)
	}
	if deps.Preferences == nil || deps.Reachability == nil || deps.Credentials == nil || deps.Remote == nil {
		return nil, fmt.Errorf("%w: missing collaborator", ErrInvalidSeedSyncConfig)
	}

	recordName, err := utils.DeriveRecordName(cfg.CloudKey, cfg.NodeID)
	if err != nil {
		return nil, fmt.Errorf("derive record name: %w", err)
	}

	enabled, err := deps.Preferences.BackupEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("read backup toggle: %w", err)
	}
	hasUploaded, err := deps.Preferences.HasUploadedSeed(ctx, recordName)
	if err != nil {
		return nil, fmt.Errorf("read upload flag: %w", err)
	}

	state := newSeedSyncState(enabled, hasUploaded)
	m := &seedSyncManager{
		prefs:          deps.Preferences,
		reachability:   deps.Reachability,
		credentials:    deps.Credentials,
		remote:         deps.Remote,
		seed:           cfg.Seed,
		namespace:      models.RecordNamespace(cfg.Chain),
		recordName:     recordName,
		requestTimeout: cfg.RequestTimeout,
		initialEnabled: enabled,
		state:          state,
		runCtx:         context.Background(),
		stopRun:        func() {},
		publisher:      newStatePublisher(state.active),
		timers:         newWaitingTimers(af),
		now:            time.Now,
		logger:         log.WithComponent("seed_sync"),
	}

	m.logger.Info().
		Str("namespace", m.namespace).
		Bool("enabled", enabled).
		Bool("has_uploaded", hasUploaded).
		Stringer("state", state.active).
		Msg("seed sync initialized")

	return m, nil
}

// Start implements [SeedSyncManager].
func (m *seedSyncManager) Start(ctx context.Context) error {
	m.mu.Lock()
	switch {
	case m.stopped:
		m.mu.Unlock()
		return ErrStopped
	case m.started:
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.started = true
	m.runCtx, m.stopRun = runCtx, cancel
	m.mu.Unlock()

	toggles, err := m.prefs.SubscribeBackupEnabled(runCtx)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe to backup toggle: %w", err)
	}

	m.spawn(func(ctx context.Context) { m.watchToggle(ctx, toggles) })
	m.spawn(func(ctx context.Context) { m.watchReachability(ctx, m.reachability.PathChanges(ctx)) })
	m.spawn(func(ctx context.Context) { m.watchAccount(ctx, m.credentials.AccountChanges(ctx)) })
	m.checkCredentials()

	m.logger.Debug().Msg("seed sync started")
	return nil
}

// Stop implements [SeedSyncManager].
func (m *seedSyncManager) Stop() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.stopped = true
	cancel := m.stopRun
	m.mu.Unlock()

	cancel()
	m.timers.stopAll()
	m.inflight.Wait()

	m.logger.Debug().Msg("seed sync stopped")
}

// spawn runs f on a tracked goroutine with the run context. It does nothing
// once Stop has been called.
func (m *seedSyncManager) spawn(f func(ctx context.Context)) {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.inflight.Add(1)
	ctx := m.runCtx
	m.mu.Unlock()

	go func() {
		defer m.inflight.Done()
		f(ctx)
	}()
}

func (m *seedSyncManager) State() models.SyncState {
	return m.publisher.state()
}

func (m *seedSyncManager) Subscribe() (<-chan models.SyncState, func()) {
	return m.publisher.subscribe()
}

func (m *seedSyncManager) Skip(waiting models.SyncState) {
	m.finishWaiting(waiting)
}

func (m *seedSyncManager) SetBackupEnabled(ctx context.Context, enabled bool) error {
	if err := m.prefs.SetBackupEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("store backup toggle: %w", err)
	}
	return nil
}

func (m *seedSyncManager) FetchBackups(ctx context.Context) iter.Seq2[models.SeedBackup, error] {
	return m.remote.FetchAll(ctx, m.namespace)
}

// applyTransition runs mutate under the lock, then performs the side effects
// of the committed state: timers, remote operations, skips and publication.
func (m *seedSyncManager) applyTransition(mutate func(t *seedSyncTransition)) {
	m.mu.Lock()
	prev := m.state.active
	t := &seedSyncTransition{seedSyncState: &m.state}
	mutate(t)
	if t.reconcileRequested {
		m.state.active = m.state.reconciled()
	}
	next := m.state.active
	changed := !prev.Equal(next)
	var seq uint64
	if changed {
		m.commits++
		seq = m.commits
	}
	stopped := m.stopped
	m.mu.Unlock()

	for _, waiting := range t.skips {
		m.spawn(func(context.Context) { m.finishWaiting(waiting) })
	}

	if !changed {
		if t.retryRequested && !stopped {
			m.startOperation(next)
		}
		return
	}

	m.logger.Debug().Stringer("from", prev).Stringer("to", next).Msg("seed sync state changed")

	if prev.Kind == models.SyncStateWaitingBackoff {
		m.timers.stop(prev)
	}
	if !stopped {
		switch next.Kind {
		case models.SyncStateWaitingBackoff:
			m.timers.arm(next, m.finishWaiting)
		default:
			m.startOperation(next)
		}
	}

	m.publisher.publish(seq, next)
}

func (m *seedSyncManager) startOperation(s models.SyncState) {
	switch s.Kind {
	case models.SyncStateUploading:
		m.spawn(m.uploadSeed)
	case models.SyncStateDeleting:
		m.spawn(m.deleteSeed)
	}
}

// finishWaiting ends the wait expected. It is a no-op unless expected is
// still the current state, so stale timers and repeated skips are harmless.
// Only backoff waits reconcile; gate waits end when their gate clears.
func (m *seedSyncManager) finishWaiting(expected models.SyncState) {
	m.applyTransition(func(t *seedSyncTransition) {
		if !t.active.Equal(expected) {
			return
		}
		if t.active.Kind == models.SyncStateWaitingBackoff {
			t.reconcile()
		}
	})
}

func (m *seedSyncManager) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.requestTimeout)
}

func (m *seedSyncManager) uploadSeed(ctx context.Context) {
	opCtx, cancel := m.operationContext(ctx)
	defer cancel()

	// a zero CreatedAt leaves the creation time to the server
	if err := m.remote.Upload(opCtx, m.namespace, m.recordName, m.seed); err != nil {
		m.handleFailure(ctx, err)
		return
	}
	m.handleSuccess(ctx, models.SyncStateUploading)
}

func (m *seedSyncManager) deleteSeed(ctx context.Context) {
	opCtx, cancel := m.operationContext(ctx)
	defer cancel()

	if err := m.remote.Delete(opCtx, m.namespace, m.recordName); err != nil {
		m.handleFailure(ctx, err)
		return
	}
	m.handleSuccess(ctx, models.SyncStateDeleting)
}

func (m *seedSyncManager) handleSuccess(ctx context.Context, op models.SyncStateKind) {
	uploaded := op == models.SyncStateUploading
	m.logger.Info().Stringer("operation", op).Msg("seed backup operation succeeded")

	// the flag must survive Stop, which cancels ctx
	if err := m.prefs.SetHasUploadedSeed(context.WithoutCancel(ctx), m.recordName, uploaded); err != nil {
		m.logger.Err(err).Str("func", "seedSyncManager.handleSuccess").Msg("error persisting upload flag")
	}

	m.applyTransition(func(t *seedSyncTransition) {
		t.consecutiveErrorCount = 0
		if uploaded {
			t.needsUpload = false
		} else {
			t.needsDelete = false
		}
		if t.active.Kind == op {
			t.reconcile()
		}
	})
}

func (m *seedSyncManager) handleFailure(ctx context.Context, err error) {
	failure := classifyFailure(err)
	backoff := usesBackoff(failure)
	notAuthenticated := failure.Kind == models.FailureNotAuthenticated

	var delay time.Duration
	m.applyTransition(func(t *seedSyncTransition) {
		if notAuthenticated {
			t.waitingForCredentials = true
		}

		switch t.active.Kind {
		case models.SyncStateUploading, models.SyncStateDeleting:
		default:
			return
		}

		if !backoff {
			t.reconcile()
			// a cancelled run context would spin
			if ctx.Err() == nil {
				t.retry()
			}
			return
		}

		t.consecutiveErrorCount++
		delay = backoffDelay(t.consecutiveErrorCount, failure.RetryAfter)
		m.waits++
		t.active = models.NewBackoffState(failure, models.NewWaitSchedule(m.now(), delay), m.waits)
	})

	event := m.logger.Warn()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		event = m.logger.Debug()
	}
	event.Err(err).
		Stringer("failure_kind", failure.Kind).
		Dur("retry_after", failure.RetryAfter).
		Dur("delay", delay).
		Msg("seed backup operation failed")

	if notAuthenticated {
		m.checkCredentials()
	}
}
