// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-seed-keeper/internal/adapter"
	"github.com/MKhiriev/go-seed-keeper/internal/logger"
	"github.com/MKhiriev/go-seed-keeper/internal/mock"
	"github.com/MKhiriev/go-seed-keeper/internal/utils"
	"github.com/MKhiriev/go-seed-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testChain    = "testnet"
	testNodeID   = "02c0ffee"
	testCloudKey = "cloud-key"

	eventually = 2 * time.Second
	tick       = time.Millisecond
)

var testSeed = models.SeedBackup{Phrase: "abandon ability able about", Language: "en"}

// seedSyncHarness собирает seedSyncManager на моках. Монитор-каналы и
// результаты удалённых операций управляются из теста.
type seedSyncHarness struct {
	m      *seedSyncManager
	timers *manualTimers

	prefs  *mock.MockPreferenceStore
	remote *mock.MockRemoteStore

	toggles  chan bool
	paths    chan models.PathStatus
	accounts chan struct{}

	account       atomic.Int32
	statusQueries atomic.Int32

	uploads      chan error
	deletes      chan error
	uploadCalls  atomic.Int32
	deleteCalls  atomic.Int32
	uploadedFlag atomic.Int32 // 0 unset, 1 false, 2 true
}

type harnessOptions struct {
	enabled     bool
	hasUploaded bool
	// instant makes remote operations succeed immediately.
	instant bool
}

func newSeedSyncHarness(t *testing.T, opts harnessOptions) *seedSyncHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &seedSyncHarness{
		timers:   &manualTimers{},
		prefs:    mock.NewMockPreferenceStore(ctrl),
		remote:   mock.NewMockRemoteStore(ctrl),
		toggles:  make(chan bool),
		paths:    make(chan models.PathStatus),
		accounts: make(chan struct{}),
		uploads:  make(chan error),
		deletes:  make(chan error),
	}
	h.account.Store(int32(models.AccountAvailable))

	recordName, err := utils.DeriveRecordName(testCloudKey, testNodeID)
	require.NoError(t, err)

	reachability := mock.NewMockReachabilityMonitor(ctrl)
	credentials := mock.NewMockCredentialStatusProvider(ctrl)

	h.prefs.EXPECT().BackupEnabled(gomock.Any()).Return(opts.enabled, nil)
	h.prefs.EXPECT().HasUploadedSeed(gomock.Any(), recordName).Return(opts.hasUploaded, nil)
	h.prefs.EXPECT().SubscribeBackupEnabled(gomock.Any()).Return((<-chan bool)(h.toggles), nil).AnyTimes()
	h.prefs.EXPECT().SetHasUploadedSeed(gomock.Any(), recordName, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, uploaded bool) error {
			if uploaded {
				h.uploadedFlag.Store(2)
			} else {
				h.uploadedFlag.Store(1)
			}
			return nil
		}).AnyTimes()

	reachability.EXPECT().PathChanges(gomock.Any()).Return((<-chan models.PathStatus)(h.paths)).AnyTimes()
	credentials.EXPECT().AccountChanges(gomock.Any()).Return((<-chan struct{})(h.accounts)).AnyTimes()
	credentials.EXPECT().CurrentStatus(gomock.Any()).
		DoAndReturn(func(context.Context) (models.AccountStatus, error) {
			h.statusQueries.Add(1)
			return models.AccountStatus(h.account.Load()), nil
		}).AnyTimes()

	namespace := models.RecordNamespace(testChain)
	h.remote.EXPECT().Upload(gomock.Any(), namespace, recordName, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, record models.SeedBackup) error {
			h.uploadCalls.Add(1)
			// every attempt sends the same record; the server owns the creation time
			assert.Equal(t, testSeed, record)
			if opts.instant {
				return nil
			}
			select {
			case err := <-h.uploads:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		}).AnyTimes()
	h.remote.EXPECT().Delete(gomock.Any(), namespace, recordName).
		DoAndReturn(func(ctx context.Context, _, _ string) error {
			h.deleteCalls.Add(1)
			if opts.instant {
				return nil
			}
			select {
			case err := <-h.deletes:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		}).AnyTimes()

	m, err := newSeedSyncManager(context.Background(), SeedSyncConfig{
		Chain:          testChain,
		NodeID:         testNodeID,
		CloudKey:       testCloudKey,
		Seed:           testSeed,
		RequestTimeout: time.Minute,
	}, SeedSyncDeps{
		Preferences:  h.prefs,
		Reachability: reachability,
		Credentials:  credentials,
		Remote:       h.remote,
	}, h.timers.afterFunc, logger.Nop())
	require.NoError(t, err)

	h.m = m
	t.Cleanup(m.Stop)
	return h
}

func (h *seedSyncHarness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.m.Start(context.Background()))
}

func (h *seedSyncHarness) setAccount(status models.AccountStatus) {
	h.account.Store(int32(status))
}

func (h *seedSyncHarness) waitFor(t *testing.T, kind models.SyncStateKind) models.SyncState {
	t.Helper()
	require.Eventually(t, func() bool { return h.m.State().Kind == kind }, eventually, tick,
		"expected %s, current %s", kind, h.m.State())
	return h.m.State()
}

// waitGatesOpen waits until both the internet and the credentials gate are open.
func (h *seedSyncHarness) waitGatesOpen(t *testing.T) {
	t.Helper()
	require.Eventually(t, func() bool {
		s := h.m.snapshot()
		return !s.waitingForInternet && !s.waitingForCredentials
	}, eventually, tick)
}

func (m *seedSyncManager) snapshot() seedSyncState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func checkInvariants(t *testing.T, s seedSyncState) {
	t.Helper()
	assert.False(t, s.needsUpload && s.needsDelete, "needsUpload and needsDelete both set: %+v", s)

	switch s.active.Kind {
	case models.SyncStateSynced:
		assert.False(t, s.waitingForInternet || s.waitingForCredentials, "synced behind a gate: %+v", s)
		assert.True(t, (s.isEnabled && !s.needsUpload) || (!s.isEnabled && !s.needsDelete), "synced with pending work: %+v", s)
	case models.SyncStateWaitingForInternet:
		assert.True(t, s.waitingForInternet, "waiting for internet with gate open: %+v", s)
	case models.SyncStateWaitingForCredentials:
		assert.True(t, s.waitingForCredentials, "waiting for credentials with gate open: %+v", s)
	}
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewSeedSyncManager_InitialState(t *testing.T) {
	tests := []struct {
		name        string
		enabled     bool
		hasUploaded bool
		wantKind    models.SyncStateKind
		wantUpload  bool
		wantDelete  bool
	}{
		{"enabled, never uploaded", true, false, models.SyncStateInitializing, true, false},
		{"enabled, uploaded", true, true, models.SyncStateInitializing, false, false},
		{"disabled, uploaded", false, true, models.SyncStateInitializing, false, true},
		{"disabled, never uploaded", false, false, models.SyncStateDisabled, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSeedSyncHarness(t, harnessOptions{enabled: tt.enabled, hasUploaded: tt.hasUploaded})

			s := h.m.snapshot()
			assert.Equal(t, tt.wantKind, h.m.State().Kind)
			assert.Equal(t, tt.wantUpload, s.needsUpload)
			assert.Equal(t, tt.wantDelete, s.needsDelete)
			assert.True(t, s.waitingForInternet)
			assert.True(t, s.waitingForCredentials)
			assert.Equal(t, "seeds_bitcoin_testnet", h.m.namespace)
		})
	}
}

func TestNewSeedSyncManager_InvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	deps := SeedSyncDeps{
		Preferences:  mock.NewMockPreferenceStore(ctrl),
		Reachability: mock.NewMockReachabilityMonitor(ctrl),
		Credentials:  mock.NewMockCredentialStatusProvider(ctrl),
		Remote:       mock.NewMockRemoteStore(ctrl),
	}

	_, err := NewSeedSyncManager(context.Background(), SeedSyncConfig{Chain: testChain}, deps, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidSeedSyncConfig)

	_, err = NewSeedSyncManager(context.Background(), SeedSyncConfig{Chain: testChain, NodeID: "n", CloudKey: "k"}, SeedSyncDeps{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidSeedSyncConfig)
}

func TestNewSeedSyncManager_PreferenceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferenceStore(ctrl)
	prefs.EXPECT().BackupEnabled(gomock.Any()).Return(false, errors.New("db closed"))

	_, err := NewSeedSyncManager(context.Background(), SeedSyncConfig{Chain: testChain, NodeID: "n", CloudKey: "k"}, SeedSyncDeps{
		Preferences:  prefs,
		Reachability: mock.NewMockReachabilityMonitor(ctrl),
		Credentials:  mock.NewMockCredentialStatusProvider(ctrl),
		Remote:       mock.NewMockRemoteStore(ctrl),
	}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db closed")
}

func TestSeedSyncState_Reconciled(t *testing.T) {
	tests := []struct {
		name  string
		state seedSyncState
		want  models.SyncStateKind
	}{
		{"credentials gate first", seedSyncState{waitingForCredentials: true, waitingForInternet: true}, models.SyncStateWaitingForCredentials},
		{"internet gate", seedSyncState{waitingForInternet: true, isEnabled: true}, models.SyncStateWaitingForInternet},
		{"enabled with upload pending", seedSyncState{isEnabled: true, needsUpload: true}, models.SyncStateUploading},
		{"enabled and uploaded", seedSyncState{isEnabled: true}, models.SyncStateSynced},
		{"disabled with delete pending", seedSyncState{needsDelete: true}, models.SyncStateDeleting},
		{"disabled and deleted", seedSyncState{}, models.SyncStateDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.reconciled().Kind)
		})
	}
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestSeedSync_StartTwice(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)

	assert.ErrorIs(t, h.m.Start(context.Background()), ErrAlreadyStarted)

	h.m.Stop()
	h.m.Stop()
	assert.ErrorIs(t, h.m.Start(context.Background()), ErrStopped)
}

func TestSeedSync_StopCancelsInflightUpload(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateUploading)
	require.Eventually(t, func() bool { return h.uploadCalls.Load() == 1 }, eventually, tick)

	done := make(chan struct{})
	go func() {
		h.m.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(eventually):
		t.Fatal("Stop did not return")
	}
	assert.Equal(t, 0, h.m.timers.pending())
}

// ── scenarios ────────────────────────────────────────────────────────────────

// Fresh install with the toggle on: the seed is uploaded once both gates open.
func TestSeedSync_ScenarioA_FirstUpload(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	states, cancel := h.m.Subscribe()
	defer cancel()
	assert.Equal(t, models.SyncStateInitializing, (<-states).Kind)

	h.start(t)
	h.paths <- models.PathSatisfied

	h.waitFor(t, models.SyncStateUploading)
	h.uploads <- nil
	h.waitFor(t, models.SyncStateSynced)

	assert.Equal(t, int32(1), h.uploadCalls.Load())
	assert.Equal(t, int32(2), h.uploadedFlag.Load())

	s := h.m.snapshot()
	assert.False(t, s.needsUpload)
	assert.Zero(t, s.consecutiveErrorCount)
	checkInvariants(t, s)

	require.Eventually(t, func() bool {
		select {
		case st := <-states:
			return st.Kind == models.SyncStateSynced
		default:
			return false
		}
	}, eventually, tick)
}

// Losing the network while synced waits for it and comes back without a
// second upload.
func TestSeedSync_ScenarioB_ReachabilityFlap(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true, hasUploaded: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateSynced)

	h.paths <- models.PathUnsatisfied
	h.waitFor(t, models.SyncStateWaitingForInternet)
	checkInvariants(t, h.m.snapshot())

	h.paths <- models.PathRequiresConnection
	h.waitFor(t, models.SyncStateSynced)

	assert.Equal(t, int32(0), h.uploadCalls.Load())
}

// A rate-limited upload waits for the server's hint rather than the first
// backoff step, then retries.
func TestSeedSync_ScenarioC_RateLimitedUpload(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateUploading)

	h.uploads <- &adapter.RemoteError{Op: "upload", StatusCode: 429, Kind: adapter.ErrRateLimited, RetryAfter: 5 * time.Second}
	wait := h.waitFor(t, models.SyncStateWaitingBackoff)

	assert.Equal(t, 5*time.Second, wait.Schedule.Delay)
	assert.Equal(t, 5*time.Second, wait.Remaining(wait.Schedule.Start))
	require.Eventually(t, func() bool { return h.timers.count() == 1 }, eventually, tick)
	assert.Equal(t, 5*time.Second, h.timers.last().delay)

	var failure *models.Failure
	require.ErrorAs(t, wait.Err, &failure)
	assert.Equal(t, models.FailureRateLimited, failure.Kind)
	assert.Equal(t, uint(1), h.m.snapshot().consecutiveErrorCount)

	require.True(t, h.timers.fireLast())
	h.waitFor(t, models.SyncStateUploading)
	h.uploads <- nil
	h.waitFor(t, models.SyncStateSynced)

	assert.Equal(t, int32(2), h.uploadCalls.Load())
	assert.Zero(t, h.m.snapshot().consecutiveErrorCount)
}

// Disabling the toggle during a backoff wait skips the wait and deletes.
func TestSeedSync_ScenarioD_DisableDuringBackoff(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateUploading)

	h.uploads <- errors.New("connection reset")
	wait := h.waitFor(t, models.SyncStateWaitingBackoff)
	assert.Equal(t, 250*time.Millisecond, wait.Schedule.Delay)

	h.toggles <- false
	h.waitFor(t, models.SyncStateDeleting)

	s := h.m.snapshot()
	assert.True(t, s.needsDelete)
	assert.False(t, s.needsUpload)
	assert.False(t, s.isEnabled)
	checkInvariants(t, s)

	h.deletes <- nil
	h.waitFor(t, models.SyncStateDisabled)

	s = h.m.snapshot()
	assert.False(t, s.needsDelete)
	assert.False(t, s.needsUpload)
	assert.Equal(t, int32(1), h.uploadedFlag.Load())

	// таймер пропущенного ожидания остановлен
	assert.False(t, h.timers.fireLast())
}

// A delete rejected for authentication waits for credentials, not backoff,
// and re-checks them.
func TestSeedSync_ScenarioE_NotAuthenticatedDelete(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: false, hasUploaded: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateDeleting)
	queriesBefore := h.statusQueries.Load()

	h.setAccount(models.AccountNoAccount)
	h.deletes <- &adapter.RemoteError{Op: "delete", StatusCode: 401, Kind: adapter.ErrNotAuthenticated}

	h.waitFor(t, models.SyncStateWaitingForCredentials)
	require.Eventually(t, func() bool { return h.statusQueries.Load() > queriesBefore }, eventually, tick)
	assert.Equal(t, 0, h.timers.count())
	assert.Zero(t, h.m.snapshot().consecutiveErrorCount)
	checkInvariants(t, h.m.snapshot())

	// аккаунт снова доступен: удаление повторяется
	h.setAccount(models.AccountAvailable)
	h.accounts <- struct{}{}
	h.waitFor(t, models.SyncStateDeleting)
	h.deletes <- nil
	h.waitFor(t, models.SyncStateDisabled)

	assert.Equal(t, int32(2), h.deleteCalls.Load())
}

// ── properties ───────────────────────────────────────────────────────────────

func TestSeedSync_SkipIgnoresStaleWait(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateUploading)

	h.uploads <- errors.New("boom")
	wait := h.waitFor(t, models.SyncStateWaitingBackoff)

	// чужое ожидание с тем же расписанием
	other := models.NewBackoffState(wait.Err, wait.Schedule, wait.WaitID()+100)
	h.m.Skip(other)
	h.m.Skip(models.StateWaitingForInternet)
	h.m.Skip(models.StateSynced)

	assert.True(t, h.m.State().Equal(wait))
	assert.True(t, h.m.snapshot().active.Equal(wait))

	h.m.Skip(wait)
	h.waitFor(t, models.SyncStateUploading)

	// повторный skip уже неактуален
	h.m.Skip(wait)
	assert.Equal(t, models.SyncStateUploading, h.m.State().Kind)

	h.uploads <- nil
	h.waitFor(t, models.SyncStateSynced)
}

func TestSeedSync_StaleTimerIsNoop(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateUploading)

	h.uploads <- errors.New("boom")
	wait := h.waitFor(t, models.SyncStateWaitingBackoff)
	h.m.Skip(wait)
	h.waitFor(t, models.SyncStateUploading)

	// expiry delivered after the wait ended
	h.m.finishWaiting(wait)
	assert.Equal(t, models.SyncStateUploading, h.m.State().Kind)

	h.uploads <- nil
	h.waitFor(t, models.SyncStateSynced)
}

func TestSeedSync_BackoffGrowsAcrossFailures(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)
	h.paths <- models.PathSatisfied

	want := []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, time.Second}
	for _, delay := range want {
		h.waitFor(t, models.SyncStateUploading)
		h.uploads <- errors.New("boom")
		wait := h.waitFor(t, models.SyncStateWaitingBackoff)
		assert.Equal(t, delay, wait.Schedule.Delay)
		require.True(t, h.timers.fireLast())
	}

	h.waitFor(t, models.SyncStateUploading)
	h.uploads <- nil
	h.waitFor(t, models.SyncStateSynced)
	assert.Zero(t, h.m.snapshot().consecutiveErrorCount)
}

func TestSeedSync_CredentialsRestoredSkipsAuthBackoff(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateUploading)

	// 401 с подсказкой сервера уходит в backoff
	h.uploads <- &adapter.RemoteError{Op: "upload", StatusCode: 401, Kind: adapter.ErrNotAuthenticated, RetryAfter: time.Minute}

	// the re-check reports available, which skips the wait and retries
	require.Eventually(t, func() bool { return h.uploadCalls.Load() == 2 }, eventually, tick)
	assert.Equal(t, models.SyncStateUploading, h.m.State().Kind)
	assert.Equal(t, 1, h.timers.count())

	h.uploads <- nil
	h.waitFor(t, models.SyncStateSynced)
}

func TestSeedSync_CancelledUploadRetriesWithoutBackoff(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateUploading)

	h.uploads <- &adapter.RemoteError{Op: "upload", Kind: adapter.ErrCancelled}
	require.Eventually(t, func() bool { return h.uploadCalls.Load() == 2 }, eventually, tick)
	assert.Equal(t, models.SyncStateUploading, h.m.State().Kind)
	assert.Equal(t, 0, h.timers.count())

	// повторная отмена тоже перезапускает загрузку
	h.uploads <- &adapter.RemoteError{Op: "upload", Kind: adapter.ErrCancelled}
	require.Eventually(t, func() bool { return h.uploadCalls.Load() == 3 }, eventually, tick)

	h.uploads <- nil
	h.waitFor(t, models.SyncStateSynced)
	assert.Zero(t, h.m.snapshot().consecutiveErrorCount)
}

func TestSeedSync_CancelledDeleteRetriesWithoutBackoff(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: false, hasUploaded: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateDeleting)

	h.deletes <- &adapter.RemoteError{Op: "delete", Kind: adapter.ErrCancelled}
	require.Eventually(t, func() bool { return h.deleteCalls.Load() == 2 }, eventually, tick)
	assert.Equal(t, models.SyncStateDeleting, h.m.State().Kind)
	assert.Equal(t, 0, h.timers.count())

	h.deletes <- nil
	h.waitFor(t, models.SyncStateDisabled)
	assert.Equal(t, int32(1), h.uploadedFlag.Load())
}

// Once the run context is gone a cancelled operation is not restarted.
func TestSeedSync_CancelledRunContextDoesNotRetry(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, h.m.Start(ctx))
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateUploading)
	require.Eventually(t, func() bool { return h.uploadCalls.Load() == 1 }, eventually, tick)

	cancel()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), h.uploadCalls.Load())
	assert.Equal(t, 0, h.timers.count())
}

func TestSeedSyncTransition_SkipOnlyBackoff(t *testing.T) {
	wait := models.NewBackoffState(errors.New("503"), models.NewWaitSchedule(time.Now(), time.Second), 1)

	tests := []struct {
		name   string
		active models.SyncState
		want   int
	}{
		{name: "internet", active: models.StateWaitingForInternet, want: 0},
		{name: "credentials", active: models.StateWaitingForCredentials, want: 0},
		{name: "synced", active: models.StateSynced, want: 0},
		{name: "backoff", active: wait, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := seedSyncState{active: tt.active}
			tr := &seedSyncTransition{seedSyncState: &st}
			tr.skipWaiting()
			assert.Len(t, tr.skips, tt.want)
		})
	}
}

// A toggle during a gate wait only updates the pending flags; the wait ends
// when the gate clears.
func TestSeedSync_ToggleDuringGateWait(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true})
	h.start(t)
	h.waitFor(t, models.SyncStateWaitingForInternet)

	h.toggles <- false
	require.Eventually(t, func() bool { return !h.m.snapshot().isEnabled }, eventually, tick)
	assert.Equal(t, models.SyncStateWaitingForInternet, h.m.State().Kind)

	s := h.m.snapshot()
	assert.True(t, s.needsDelete)
	assert.False(t, s.needsUpload)
	checkInvariants(t, s)

	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateDeleting)
	h.deletes <- nil
	h.waitFor(t, models.SyncStateDisabled)
	assert.Equal(t, int32(0), h.uploadCalls.Load())
}

func TestSeedSync_CredentialsLostWhileSynced(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true, hasUploaded: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateSynced)

	h.setAccount(models.AccountRestricted)
	h.accounts <- struct{}{}
	h.waitFor(t, models.SyncStateWaitingForCredentials)

	h.setAccount(models.AccountAvailable)
	h.accounts <- struct{}{}
	h.waitFor(t, models.SyncStateSynced)
}

func TestSeedSync_FirstToggleReplayIgnored(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: true, hasUploaded: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitFor(t, models.SyncStateSynced)

	h.toggles <- true
	assert.Equal(t, models.SyncStateSynced, h.m.State().Kind)

	h.toggles <- false
	h.waitFor(t, models.SyncStateDeleting)
	h.deletes <- nil
	h.waitFor(t, models.SyncStateDisabled)
}

// Enabling then disabling with no failures ends disabled with nothing
// pending.
func TestSeedSync_RoundTrip(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: false, instant: true})
	h.start(t)
	h.paths <- models.PathSatisfied
	h.waitGatesOpen(t)
	assert.Equal(t, models.SyncStateDisabled, h.m.State().Kind)

	h.toggles <- true
	h.waitFor(t, models.SyncStateSynced)
	h.toggles <- false
	h.waitFor(t, models.SyncStateDisabled)

	s := h.m.snapshot()
	assert.False(t, s.needsUpload)
	assert.False(t, s.needsDelete)
	assert.Equal(t, int32(1), h.uploadCalls.Load())
	assert.Equal(t, int32(1), h.deleteCalls.Load())
}

func TestSeedSync_SetBackupEnabled(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: false})
	h.prefs.EXPECT().SetBackupEnabled(gomock.Any(), true).Return(nil)
	h.prefs.EXPECT().SetBackupEnabled(gomock.Any(), false).Return(errors.New("read-only"))

	require.NoError(t, h.m.SetBackupEnabled(context.Background(), true))
	assert.Error(t, h.m.SetBackupEnabled(context.Background(), false))
}

func TestSeedSync_FetchBackups(t *testing.T) {
	h := newSeedSyncHarness(t, harnessOptions{enabled: false})
	records := []models.SeedBackup{{Phrase: "new"}, {Phrase: "old"}}
	h.remote.EXPECT().FetchAll(gomock.Any(), "seeds_bitcoin_testnet").Return(func(yield func(models.SeedBackup, error) bool) {
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	})

	var got []string
	for r, err := range h.m.FetchBackups(context.Background()) {
		require.NoError(t, err)
		got = append(got, r.Phrase)
	}
	assert.Equal(t, []string{"new", "old"}, got)
}

// Random monitor events never break the state invariants.
func TestSeedSync_InvariantsUnderRandomEvents(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		h := newSeedSyncHarness(t, harnessOptions{enabled: seed%2 == 0, hasUploaded: seed%3 == 0, instant: true})
		rng := rand.New(rand.NewPCG(seed, seed*31))

		for range 200 {
			switch rng.IntN(3) {
			case 0:
				h.m.onToggle(rng.IntN(2) == 0)
			case 1:
				h.m.onReachability(rng.IntN(3) != 0)
			case 2:
				h.m.onCredentials(rng.IntN(3) != 0)
			}
			checkInvariants(t, h.m.snapshot())
		}

		h.m.onReachability(true)
		h.m.onCredentials(true)
		require.Eventually(t, func() bool {
			switch h.m.State().Kind {
			case models.SyncStateSynced, models.SyncStateDisabled:
				return true
			}
			return false
		}, eventually, tick)
		checkInvariants(t, h.m.snapshot())
		h.m.Stop()
	}
}
