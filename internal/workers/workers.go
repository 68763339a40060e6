// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-seed-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker and blocks until all of them have returned. The
// first failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, worker := range w.workers {
		g.Go(func() error {
			if err := worker.Run(gctx); err != nil {
				w.logger.Err(err).Int("worker", i).Msg("worker stopped with error")
				return fmt.Errorf("worker %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
