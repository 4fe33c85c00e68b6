// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/models"
)

// mockWorker tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(_ context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

// sweepCounter satisfies service.AuthService; only SweepExpiredSessions is
// expected to be called by the sweeper.
type sweepCounter struct {
	count atomic.Int64
}

func (s *sweepCounter) SignUp(_ context.Context, _ models.CredentialsRequest) (models.Account, error) {
	panic("unexpected call")
}

func (s *sweepCounter) Login(_ context.Context, _ models.CredentialsRequest) (models.Account, models.Token, error) {
	panic("unexpected call")
}

func (s *sweepCounter) Logout(_ context.Context, _ string) error {
	panic("unexpected call")
}

func (s *sweepCounter) Authenticate(_ context.Context, _ string) (int64, error) {
	panic("unexpected call")
}

func (s *sweepCounter) SweepExpiredSessions(_ context.Context) (int64, error) {
	s.count.Add(1)
	return 0, nil
}

func TestSessionSweeper_SweepsOnTick(t *testing.T) {
	auth := &sweepCounter{}
	sweeper := NewSessionSweeper(auth, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper.Run(ctx)

	deadline := time.After(time.Second)
	for auth.count.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper never fired")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSessionSweeper_StopsOnCancel(t *testing.T) {
	auth := &sweepCounter{}
	sweeper := NewSessionSweeper(auth, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Run(ctx)

	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	settled := auth.count.Load()
	time.Sleep(20 * time.Millisecond)

	if got := auth.count.Load(); got != settled {
		t.Errorf("sweeper kept running after cancel: %d -> %d", settled, got)
	}
}
