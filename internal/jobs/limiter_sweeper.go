package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweepable drops per-client state idle for longer than the given duration and
// reports how many entries it removed. *rate.Manager satisfies it.
type Sweepable interface {
	Sweep(idle time.Duration) int
}

// LimiterSweeper periodically evicts idle rate limiters so the per-client map
// does not grow with every address ever seen.
type LimiterSweeper struct {
	logger   *zap.Logger
	target   Sweepable
	interval time.Duration
	idle     time.Duration
	stopCh   chan struct{}
}

// NewLimiterSweeper constructs a background job that runs every interval.
func NewLimiterSweeper(logger *zap.Logger, target Sweepable, interval, idle time.Duration) *LimiterSweeper {
	return &LimiterSweeper{
		logger:   logger,
		target:   target,
		interval: interval,
		idle:     idle,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the sweep loop until Stop is called or ctx is canceled.
func (s *LimiterSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("limiter_sweeper.started",
		zap.Duration("interval", s.interval),
		zap.Duration("idle", s.idle))

	for {
		select {
		case <-ticker.C:
			s.runOnce()
		case <-s.stopCh:
			s.logger.Info("limiter_sweeper.stopped (manual stop)")
			return
		case <-ctx.Done():
			s.logger.Info("limiter_sweeper.stopped (context canceled)")
			return
		}
	}
}

// Stop halts the sweeper.
func (s *LimiterSweeper) Stop() {
	close(s.stopCh)
}

func (s *LimiterSweeper) runOnce() {
	if removed := s.target.Sweep(s.idle); removed > 0 {
		s.logger.Debug("limiter_sweeper.swept", zap.Int("removed", removed))
	}
}
