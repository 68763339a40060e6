// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStateKind enumerates the externally visible states of the seed backup
// synchronization engine.
type SyncStateKind int

const (
	SyncStateInitializing SyncStateKind = iota
	SyncStateDisabled
	SyncStateWaitingForInternet
	SyncStateWaitingForCredentials
	SyncStateWaitingBackoff
	SyncStateUploading
	SyncStateDeleting
	SyncStateSynced
)

func (k SyncStateKind) String() string {
	switch k {
	case SyncStateInitializing:
		return "initializing"
	case SyncStateDisabled:
		return "disabled"
	case SyncStateWaitingForInternet:
		return "waiting_for_internet"
	case SyncStateWaitingForCredentials:
		return "waiting_for_credentials"
	case SyncStateWaitingBackoff:
		return "waiting_backoff"
	case SyncStateUploading:
		return "uploading"
	case SyncStateDeleting:
		return "deleting"
	case SyncStateSynced:
		return "synced"
	default:
		return "unknown"
	}
}

// WaitSchedule describes a single countdown: when it started, when it fires
// and the delay between the two.
type WaitSchedule struct {
	Start time.Time
	Fire  time.Time
	Delay time.Duration
}

// NewWaitSchedule returns a schedule starting at start and firing after delay.
func NewWaitSchedule(start time.Time, delay time.Duration) WaitSchedule {
	return WaitSchedule{Start: start, Fire: start.Add(delay), Delay: delay}
}

// Equal reports whether two schedules describe the same countdown.
func (w WaitSchedule) Equal(other WaitSchedule) bool {
	return w.Delay == other.Delay && w.Start.Equal(other.Start) && w.Fire.Equal(other.Fire)
}

// SyncState is the single value published to observers. Err and Schedule are
// only meaningful for SyncStateWaitingBackoff.
//
// Use [SyncState.Equal] rather than == to compare states: Err may hold a
// non-comparable dynamic type.
type SyncState struct {
	Kind     SyncStateKind
	Err      error
	Schedule WaitSchedule

	waitID uint64
}

var (
	StateInitializing          = SyncState{Kind: SyncStateInitializing}
	StateDisabled              = SyncState{Kind: SyncStateDisabled}
	StateWaitingForInternet    = SyncState{Kind: SyncStateWaitingForInternet}
	StateWaitingForCredentials = SyncState{Kind: SyncStateWaitingForCredentials}
	StateUploading             = SyncState{Kind: SyncStateUploading}
	StateDeleting              = SyncState{Kind: SyncStateDeleting}
	StateSynced                = SyncState{Kind: SyncStateSynced}
)

// NewBackoffState builds a WaitingBackoff state. id distinguishes two waits
// that happen to share the same schedule.
func NewBackoffState(err error, schedule WaitSchedule, id uint64) SyncState {
	return SyncState{
		Kind:     SyncStateWaitingBackoff,
		Err:      err,
		Schedule: schedule,
		waitID:   id,
	}
}

// Equal compares states by value. Backoff waits are equal only when they are
// the same wait instance with the same schedule.
func (s SyncState) Equal(other SyncState) bool {
	if s.Kind != other.Kind {
		return false
	}
	if s.Kind != SyncStateWaitingBackoff {
		return true
	}
	return s.waitID == other.waitID && s.Schedule.Equal(other.Schedule)
}

// WaitID returns the instance id of a backoff wait, zero otherwise.
func (s SyncState) WaitID() uint64 {
	return s.waitID
}

// IsWaiting reports whether s is one of the three waiting states.
func (s SyncState) IsWaiting() bool {
	switch s.Kind {
	case SyncStateWaitingForInternet, SyncStateWaitingForCredentials, SyncStateWaitingBackoff:
		return true
	}
	return false
}

// Remaining returns the time left until the wait fires, or zero.
func (s SyncState) Remaining(now time.Time) time.Duration {
	if s.Kind != SyncStateWaitingBackoff {
		return 0
	}
	if d := s.Schedule.Fire.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Elapsed returns the time spent waiting so far, capped at the full delay.
func (s SyncState) Elapsed(now time.Time) time.Duration {
	if s.Kind != SyncStateWaitingBackoff {
		return 0
	}
	d := now.Sub(s.Schedule.Start)
	switch {
	case d < 0:
		return 0
	case d > s.Schedule.Delay:
		return s.Schedule.Delay
	}
	return d
}

func (s SyncState) String() string {
	if s.Kind == SyncStateWaitingBackoff {
		return s.Kind.String() + "(" + s.Schedule.Delay.String() + ")"
	}
	return s.Kind.String()
}
