package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/famgift/exchange-system/internal/api/metrics"
	"github.com/famgift/exchange-system/internal/core/domain"
	"github.com/famgift/exchange-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 16
)

// Dispatcher routes group initialization jobs to a fixed set of workers
// using consistent hashing on the group id, so a group is never initialized
// by two workers at once. A failed group is logged and counted; siblings
// are unaffected.
type Dispatcher struct {
	numWorkers int
	service    ports.GroupInitializer
	log        zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.GroupInitializer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		numWorkers: numWorkers,
		service:    service,
		log:        log,
	}
}

// Run fans the groups out to the sharded workers and blocks until every
// group has been processed or ctx is cancelled. Channels and workers live
// for one call, so Run may be invoked again on the same Dispatcher.
func (d *Dispatcher) Run(ctx context.Context, groups []domain.Group) {
	channels := make([]chan domain.Group, d.numWorkers)
	for i := range channels {
		channels[i] = make(chan domain.Group, channelBuffer)
	}

	var wg sync.WaitGroup
	for i, ch := range channels {
		wg.Add(1)
		go func(id int, ch <-chan domain.Group) {
			defer wg.Done()
			d.runWorker(ctx, id, ch)
		}(i, ch)
	}

	for _, g := range groups {
		if ctx.Err() != nil {
			d.skip(g)
			continue
		}
		select {
		case <-ctx.Done():
			d.skip(g)
		case channels[d.shardIndex(g.ID)] <- g:
		}
	}
	for _, ch := range channels {
		close(ch)
	}
	wg.Wait()
}

// skip records a group that was never handed to a worker because the fanout
// context was cancelled; it would otherwise vanish without a trace.
func (d *Dispatcher) skip(group domain.Group) {
	metrics.ReconcileFailuresTotal.WithLabelValues(group.ID).Inc()
	d.log.Warn().
		Str("group_id", group.ID).
		Msg("fanout cancelled, group skipped and left without assignment")
}

// shardIndex maps a group id deterministically to a worker index.
func (d *Dispatcher) shardIndex(groupID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(groupID))
	return int(h.Sum32()) % d.numWorkers
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Group) {
	for group := range ch {
		if err := d.service.InitializeGroup(ctx, group); err != nil {
			metrics.ReconcileFailuresTotal.WithLabelValues(group.ID).Inc()
			d.log.Error().Err(err).
				Str("group_id", group.ID).
				Int("worker_id", id).
				Msg("group initialization failed, group left without assignment")
		}
	}
}
