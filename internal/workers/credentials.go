// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-seed-keeper/internal/logger"
	"github.com/MKhiriev/go-seed-keeper/internal/utils"
	"github.com/MKhiriev/go-seed-keeper/models"
)

// SessionCredentials derives the account status from the persisted session
// token and watches the token for changes. A changed token is handed to the
// remote transport before subscribers are told the account changed.
type SessionCredentials struct {
	tokens   TokenSource
	sink     TokenSink
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu          sync.Mutex
	fingerprint string
	loaded      bool

	changes *broadcast[struct{}]
}

func NewSessionCredentials(tokens TokenSource, sink TokenSink, interval time.Duration, logger *logger.Logger) *SessionCredentials {
	return &SessionCredentials{
		tokens:   tokens,
		sink:     sink,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		changes:  newBroadcast[struct{}](),
	}
}

// CurrentStatus reads the stored token and classifies it.
func (s *SessionCredentials) CurrentStatus(ctx context.Context) (models.AccountStatus, error) {
	token, err := s.tokens.SessionToken(ctx)
	if err != nil {
		return models.AccountCouldNotDetermine, fmt.Errorf("error reading session token: %w", err)
	}
	return accountStatusOf(token, s.now()), nil
}

// AccountChanges returns a stream signalled whenever the stored token
// changes. It is closed when ctx is done.
func (s *SessionCredentials) AccountChanges(ctx context.Context) <-chan struct{} {
	return s.changes.subscribe(ctx, false)
}

// Load hands the stored token to the transport without signalling a change.
// It is meant to run once before the sync engine starts.
func (s *SessionCredentials) Load(ctx context.Context) error {
	_, err := s.poll(ctx)
	return err
}

func (s *SessionCredentials) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			changed, err := s.poll(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				s.logger.Warn().Err(err).Msg("error polling session token")
				continue
			}
			if changed {
				s.logger.Info().Msg("session token changed")
				s.changes.send(struct{}{})
			}
		}
	}
}

// poll reports whether the token differs from the one seen last time. The
// first successful poll only records the token.
func (s *SessionCredentials) poll(ctx context.Context) (bool, error) {
	token, err := s.tokens.SessionToken(ctx)
	if err != nil {
		return false, fmt.Errorf("error reading session token: %w", err)
	}
	fp := utils.Fingerprint(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && fp == s.fingerprint {
		return false, nil
	}
	changed := s.loaded
	s.fingerprint = fp
	s.loaded = true
	s.sink.SetToken(token)
	return changed, nil
}

func accountStatusOf(token string, now time.Time) models.AccountStatus {
	if token == "" {
		return models.AccountNoAccount
	}

	claims, err := utils.ParseSessionToken(token)
	if err != nil {
		return models.AccountCouldNotDetermine
	}
	if claims.Expired(now) {
		return models.AccountTemporarilyUnavailable
	}
	if !claims.HasScope(utils.ScopeSeedBackup) {
		return models.AccountRestricted
	}
	return models.AccountAvailable
}
