package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/elhoucineqara/saascompare/internal/logger"
	"github.com/elhoucineqara/saascompare/internal/metrics"
	"github.com/elhoucineqara/saascompare/internal/repository"
)

// SessionSweeper periodically deletes expired sessions.
type SessionSweeper struct {
	sessionRepo repository.SessionRepository
	timeout     time.Duration
	stopChan    chan struct{}
	wg          sync.WaitGroup
}

// NewSessionSweeper creates a new SessionSweeper.
func NewSessionSweeper(sessionRepo repository.SessionRepository) *SessionSweeper {
	return &SessionSweeper{
		sessionRepo: sessionRepo,
		timeout:     30 * time.Second,
		stopChan:    make(chan struct{}),
	}
}

// Start begins sweeping every interval
func (s *SessionSweeper) Start(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Sweep deletes the sessions that have expired by now.
func (s *SessionSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.sessionRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		logger.Warn("Failed to sweep expired sessions", slog.String("error", err.Error()))
		return
	}
	metrics.RecordSessionsPurged(n)
	if n > 0 {
		logger.Debug("Swept expired sessions", slog.Int64("count", n))
	}
}

// Stop stops the sweeper and waits for an in-progress sweep to finish.
func (s *SessionSweeper) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
