// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-seed-keeper/internal/logger"
)

const (
	preferencesTable   = "preferences"
	uploadedSeedsTable = "uploaded_seeds"

	keyBackupEnabled = "backup_enabled"
	keySessionToken  = "session_token"

	upsertPreferenceSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value"
	upsertUploadedSuffix   = "ON CONFLICT(record_name) DO UPDATE SET uploaded_at = excluded.uploaded_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// preferenceStore is the SQLite-backed implementation of [LocalPreferences].
// Toggle subscribers are notified in-process after every successful write.
type preferenceStore struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]chan bool
}

// NewPreferenceStore constructs a [LocalPreferences] backed by db.
func NewPreferenceStore(db *DB, logger *logger.Logger) LocalPreferences {
	logger.Debug().Msg("creating preference store")
	return &preferenceStore{
		db:     db,
		now:    time.Now,
		logger: logger,
		subs:   make(map[int]chan bool),
	}
}

func (p *preferenceStore) getPreference(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psql.Select("value").From(preferencesTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		p.logger.Err(err).Str("func", "*preferenceStore.getPreference").Str("key", key).Msg("error reading preference")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, true, nil
}

func (p *preferenceStore) setPreference(ctx context.Context, key, value string) error {
	query, args, err := psql.Insert(preferencesTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(upsertPreferenceSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).Str("func", "*preferenceStore.setPreference").Str("key", key).Msg("error writing preference")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// BackupEnabled returns the stored toggle. A toggle that was never written
// reads as false.
func (p *preferenceStore) BackupEnabled(ctx context.Context) (bool, error) {
	value, ok, err := p.getPreference(ctx, keyBackupEnabled)
	if err != nil || !ok {
		return false, err
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidPreference, keyBackupEnabled, value)
	}
	return enabled, nil
}

func (p *preferenceStore) SetBackupEnabled(ctx context.Context, enabled bool) error {
	if err := p.setPreference(ctx, keyBackupEnabled, strconv.FormatBool(enabled)); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.subs {
		// keep only the newest value for slow readers
		select {
		case <-ch:
		default:
		}
		ch <- enabled
	}
	return nil
}

func (p *preferenceStore) SubscribeBackupEnabled(ctx context.Context) (<-chan bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// read under mu so no write can slip between the read and registration
	current, err := p.BackupEnabled(ctx)
	if err != nil {
		return nil, err
	}

	id := p.nextID
	p.nextID++
	ch := make(chan bool, 1)
	ch <- current
	p.subs[id] = ch

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
		close(ch)
	}()

	return ch, nil
}

func (p *preferenceStore) HasUploadedSeed(ctx context.Context, recordName string) (bool, error) {
	query, args, err := psql.Select("1").From(uploadedSeedsTable).Where(sq.Eq{"record_name": recordName}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		p.logger.Err(err).Str("func", "*preferenceStore.HasUploadedSeed").Msg("error reading upload flag")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}

func (p *preferenceStore) SetHasUploadedSeed(ctx context.Context, recordName string, uploaded bool) error {
	var (
		query string
		args  []any
		err   error
	)
	if uploaded {
		query, args, err = psql.Insert(uploadedSeedsTable).
			Columns("record_name", "uploaded_at").
			Values(recordName, p.now().UTC()).
			Suffix(upsertUploadedSuffix).
			ToSql()
	} else {
		query, args, err = psql.Delete(uploadedSeedsTable).Where(sq.Eq{"record_name": recordName}).ToSql()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).Str("func", "*preferenceStore.SetHasUploadedSeed").Bool("uploaded", uploaded).Msg("error writing upload flag")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// SessionToken returns the stored remote session token, or "" if none.
func (p *preferenceStore) SessionToken(ctx context.Context) (string, error) {
	token, _, err := p.getPreference(ctx, keySessionToken)
	return token, err
}

func (p *preferenceStore) SetSessionToken(ctx context.Context, token string) error {
	return p.setPreference(ctx, keySessionToken, token)
}
