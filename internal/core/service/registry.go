package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/famgift/exchange-system/internal/api/metrics"
	"github.com/famgift/exchange-system/internal/core/domain"
	"github.com/famgift/exchange-system/internal/core/ports"
)

// Registry reconciles the configured groups against previously persisted
// ones. Run once at process start.
type Registry struct {
	repo   ports.AssignmentRepository
	runner ports.InitRunner
	logger zerolog.Logger
}

func NewRegistry(repo ports.AssignmentRepository, runner ports.InitRunner, logger zerolog.Logger) *Registry {
	return &Registry{repo: repo, runner: runner, logger: logger}
}

// Reconcile retires assignment record sets of groups that disappeared from
// configuration, then initializes every configured group through the worker
// pool. Wish lists are untouched since they are keyed by username, not group.
//
// Per-group initialization failures are reported by the workers and do not
// abort siblings; the returned error covers only the retire phase.
func (r *Registry) Reconcile(ctx context.Context, configured []domain.Group) error {
	persisted, err := r.repo.ListGroupIDs(ctx)
	if err != nil {
		return fmt.Errorf("list persisted groups: %w", err)
	}

	known := make(map[string]struct{}, len(configured))
	for _, g := range configured {
		known[g.ID] = struct{}{}
	}

	for _, id := range persisted {
		if _, ok := known[id]; ok {
			continue
		}
		if err := r.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("retire group %s: %w", id, err)
		}
		metrics.GroupsRetiredTotal.Inc()
		r.logger.Info().Str("group_id", id).Msg("retired assignment records of unconfigured group")
	}

	r.runner.Run(ctx, configured)
	return nil
}
