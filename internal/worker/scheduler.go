package worker

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"converterservice/internal/service"
)

// RefreshEnqueuer enqueues a rate table refresh for one base currency.
type RefreshEnqueuer interface {
	EnqueueRefreshTask(ctx context.Context, base string) error
}

// Scheduler periodically enqueues refresh tasks so that the default base and
// every base appearing in the favorites set stay warm in the cache.
type Scheduler struct {
	svc         service.ConverterServiceInterface
	enqueuer    RefreshEnqueuer
	interval    time.Duration
	defaultBase string
	log         *zap.SugaredLogger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(svc service.ConverterServiceInterface, enqueuer RefreshEnqueuer, interval time.Duration, defaultBase string, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		svc:         svc,
		enqueuer:    enqueuer,
		interval:    interval,
		defaultBase: defaultBase,
		log:         logger,
	}
}

// Run enqueues one refresh round immediately, then one per interval, until the
// context is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.enqueueRound(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.enqueueRound(ctx)
		}
	}
}

func (s *Scheduler) enqueueRound(ctx context.Context) {
	bases := s.collectBases(ctx)
	for _, base := range bases {
		if err := s.enqueuer.EnqueueRefreshTask(ctx, base); err != nil {
			s.log.Errorw("Failed to enqueue rate refresh", "base", base, "error", err)
		}
	}
	s.log.Infow("Rate refresh round enqueued", "bases", bases)
}

// collectBases returns the default base plus the distinct base currencies of
// the favorites set, sorted. A favorites lookup failure degrades to the
// default base alone.
func (s *Scheduler) collectBases(ctx context.Context) []string {
	seen := map[string]struct{}{s.defaultBase: {}}

	pairs, err := s.svc.ListFavorites(ctx)
	if err != nil {
		s.log.Warnw("Favorites unavailable for refresh round", "error", err)
	} else {
		for _, p := range pairs {
			seen[p.Base] = struct{}{}
		}
	}

	bases := make([]string, 0, len(seen))
	for base := range seen {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	return bases
}
