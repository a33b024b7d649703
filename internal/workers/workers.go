// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/robfig/cron/v3"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns once all of
// them have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}

// Periodic calls a job every interval until its context is cancelled.
// Intervals are rounded to whole seconds and a run is skipped while the
// previous one is still going.
type Periodic struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context)
	logger   *logger.Logger
}

func NewPeriodic(name string, interval time.Duration, job func(ctx context.Context), logger *logger.Logger) *Periodic {
	return &Periodic{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger,
	}
}

func (p *Periodic) Run(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Warn().Str("worker", p.name).Msg("non-positive interval, worker disabled")
		return
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(cron.Every(p.interval), cron.FuncJob(func() {
		p.job(ctx)
	}))

	c.Start()
	p.logger.Info().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")

	<-ctx.Done()

	// wait for a running job to finish
	<-c.Stop().Done()
	p.logger.Info().Str("worker", p.name).Msg("worker stopped")
}

// NewRateLimitSweeper returns a worker dropping expired rate-limit counters
// once per interval.
func NewRateLimitSweeper(sweeper interface{ Sweep() int }, interval time.Duration, logger *logger.Logger) *Periodic {
	return NewPeriodic("rate-limit-sweeper", interval, func(ctx context.Context) {
		if removed := sweeper.Sweep(); removed > 0 {
			logger.Debug().Int("removed", removed).Msg("expired rate limit counters dropped")
		}
	}, logger)
}
