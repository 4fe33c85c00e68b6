// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

package workers

import (
	"context"
	"time"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/service"
)

// Workers aggregates every background worker of the server.
type Workers struct {
	workers []Worker
}

// NewWorkers constructs the standard worker set: currently only the session
// expiry sweeper.
func NewWorkers(auth service.AuthService, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionSweeper(auth, time.Hour, log),
		},
	}
}

// Run launches every worker. Each worker stops when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// SessionSweeper periodically removes sessions past their server-side
// expiry, so that stale rows do not pile up behind long-lived tokens.
type SessionSweeper struct {
	auth     service.AuthService
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(auth service.AuthService, interval time.Duration, log *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		auth:     auth,
		interval: interval,
		logger:   log,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				swept, err := s.auth.SweepExpiredSessions(ctx)
				if err != nil {
					s.logger.Err(err).Msg("session sweep failed")
					continue
				}
				if swept > 0 {
					s.logger.Info().Int64("swept", swept).Msg("expired sessions removed")
				}
			}
		}
	}()
}
