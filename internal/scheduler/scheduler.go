package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reservationExpirer interface {
	ExpireStale(ctx context.Context) (int64, error)
}

// Scheduler periodically sweeps stale seat holds. The read paths expire
// lazily on their own, so the sweep only keeps the table tidy and the
// expiry visible in the logs.
type Scheduler struct {
	bookingService reservationExpirer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService reservationExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.bookingService.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	if expired > 0 {
		s.logger.Info("stale reservations expired",
			logger.Int64("count", expired),
		)
	}
}
