// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PathStatus is the network path state reported by a reachability monitor.
type PathStatus int

const (
	PathUnsatisfied PathStatus = iota
	PathSatisfied
	PathRequiresConnection
)

// Reachable reports whether the remote store should be considered reachable.
// A path that merely requires a connection counts as reachable.
func (p PathStatus) Reachable() bool {
	return p == PathSatisfied || p == PathRequiresConnection
}

func (p PathStatus) String() string {
	switch p {
	case PathSatisfied:
		return "satisfied"
	case PathRequiresConnection:
		return "requires_connection"
	default:
		return "unsatisfied"
	}
}

// AccountStatus is the remote-account credential status.
type AccountStatus int

const (
	AccountCouldNotDetermine AccountStatus = iota
	AccountAvailable
	AccountNoAccount
	AccountRestricted
	AccountTemporarilyUnavailable
)

// Credentialed reports whether remote operations may be attempted.
func (a AccountStatus) Credentialed() bool {
	return a == AccountAvailable
}

func (a AccountStatus) String() string {
	switch a {
	case AccountAvailable:
		return "available"
	case AccountNoAccount:
		return "no_account"
	case AccountRestricted:
		return "restricted"
	case AccountTemporarilyUnavailable:
		return "temporarily_unavailable"
	default:
		return "could_not_determine"
	}
}
