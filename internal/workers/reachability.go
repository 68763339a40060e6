// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-seed-keeper/internal/adapter"
	"github.com/MKhiriev/go-seed-keeper/internal/logger"
	"github.com/MKhiriev/go-seed-keeper/models"
)

// ReachabilityProbe pings the remote store on a fixed interval and reports
// the network path status. Any HTTP answer, including an error status,
// means the path is satisfied; only transport failures make it unsatisfied.
type ReachabilityProbe struct {
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	last    models.PathStatus
	checked bool

	changes *broadcast[models.PathStatus]
}

func NewReachabilityProbe(pinger Pinger, interval time.Duration, logger *logger.Logger) *ReachabilityProbe {
	return &ReachabilityProbe{
		pinger:   pinger,
		interval: interval,
		logger:   logger,
		changes:  newBroadcast[models.PathStatus](),
	}
}

// PathChanges returns a stream that first delivers the last known status,
// if any, and then every change. It is closed when ctx is done.
func (r *ReachabilityProbe) PathChanges(ctx context.Context) <-chan models.PathStatus {
	return r.changes.subscribe(ctx, true)
}

func (r *ReachabilityProbe) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.probe(ctx)
		}
	}
}

func (r *ReachabilityProbe) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	err := r.pinger.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}
	r.record(pathStatusOf(err))
}

func (r *ReachabilityProbe) record(status models.PathStatus) {
	r.mu.Lock()
	if r.checked && r.last == status {
		r.mu.Unlock()
		return
	}
	r.last = status
	r.checked = true
	r.mu.Unlock()

	r.logger.Info().Stringer("path", status).Msg("remote store reachability changed")
	r.changes.send(status)
}

func pathStatusOf(err error) models.PathStatus {
	if err == nil {
		return models.PathSatisfied
	}
	var remoteErr *adapter.RemoteError
	if errors.As(err, &remoteErr) && remoteErr.StatusCode != 0 {
		return models.PathSatisfied
	}
	return models.PathUnsatisfied
}
