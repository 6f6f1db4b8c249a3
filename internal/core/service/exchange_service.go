package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/famgift/exchange-system/internal/api/metrics"
	"github.com/famgift/exchange-system/internal/core/domain"
	"github.com/famgift/exchange-system/internal/core/ports"
)

// GenerationGuard abstracts the cross-process generation lock (Redis).
// The service fails open when the guard is unreachable: the store's
// read-if-exists-else-create contract already makes duplicate generation
// harmless in the single-process deployment this targets.
type GenerationGuard interface {
	Acquire(ctx context.Context, groupID string) (bool, error)
	Release(ctx context.Context, groupID string)
}

type ExchangeService struct {
	repo    ports.AssignmentRepository
	matcher ports.Matcher
	guard   GenerationGuard
	logger  zerolog.Logger
}

func NewExchangeService(repo ports.AssignmentRepository, matcher ports.Matcher, guard GenerationGuard, logger zerolog.Logger) *ExchangeService {
	return &ExchangeService{repo: repo, matcher: matcher, guard: guard, logger: logger}
}

// GetOrCreate returns the group's persisted assignment, generating one only
// when no records exist. Existing records win unconditionally: the current
// roster is ignored, so membership changes never reshuffle an exchange that
// already happened.
func (s *ExchangeService) GetOrCreate(ctx context.Context, group domain.Group) (domain.Assignment, error) {
	pairs, err := s.repo.Find(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if len(pairs) > 0 {
		s.logger.Debug().Str("group_id", group.ID).Int("pairs", len(pairs)).Msg("existing assignment found")
		return domain.AssignmentFromPairs(pairs), nil
	}

	acquired, guardErr := s.guard.Acquire(ctx, group.ID)
	switch {
	case guardErr != nil:
		s.logger.Warn().Err(guardErr).Str("group_id", group.ID).Msg("generation guard unavailable, proceeding")
	case !acquired:
		// Another holder is generating. It may already have persisted, so
		// re-read before telling the caller to retry.
		pairs, err := s.repo.Find(ctx, group.ID)
		if err != nil {
			return nil, fmt.Errorf("get assignment: %w", err)
		}
		if len(pairs) > 0 {
			return domain.AssignmentFromPairs(pairs), nil
		}
		return nil, fmt.Errorf("group %s: generation in progress: %w", group.ID, domain.ErrAssignmentUnavailable)
	default:
		defer s.guard.Release(ctx, group.ID)
	}

	assignment, attempts, err := s.matcher.Match(group.Usernames(), group.ExclusionMap())
	if err != nil {
		metrics.MatchFailuresTotal.WithLabelValues(group.ID).Inc()
		return nil, fmt.Errorf("group %s: %w", group.ID, err)
	}
	metrics.MatchAttempts.Observe(float64(attempts))

	if err := s.repo.Insert(ctx, group.ID, assignment.Pairs()); err != nil {
		// An interrupted multi-document insert can leave a prefix of the
		// pairs behind, and any surviving row would later read as the
		// group's final assignment. Drop the record set so the next
		// generation starts from zero rows.
		if delErr := s.repo.Delete(ctx, group.ID); delErr != nil {
			s.logger.Error().Err(delErr).Str("group_id", group.ID).Msg("failed to clean up partial assignment")
		}
		return nil, fmt.Errorf("persist assignment: %w", err)
	}

	metrics.AssignmentsGeneratedTotal.WithLabelValues(group.ID).Inc()
	s.logger.Info().
		Str("group_id", group.ID).
		Int("participants", len(group.Participants)).
		Int("attempts", attempts).
		Msg("assignment generated")

	return assignment, nil
}

// InitializeGroup is GetOrCreate for the reconcile worker pool: the result
// mapping is discarded, only success matters.
func (s *ExchangeService) InitializeGroup(ctx context.Context, group domain.Group) error {
	_, err := s.GetOrCreate(ctx, group)
	return err
}

// Receiver is a pure read of the giver's assigned receiver. It never
// triggers generation: a group whose initialization failed surfaces
// ErrAssignmentUnavailable until an operator fixes its constraints.
func (s *ExchangeService) Receiver(ctx context.Context, groupID, giver string) (string, error) {
	pairs, err := s.repo.Find(ctx, groupID)
	if err != nil {
		return "", fmt.Errorf("read assignment: %w", err)
	}
	if len(pairs) == 0 {
		return "", fmt.Errorf("group %s: %w", groupID, domain.ErrAssignmentUnavailable)
	}

	receiver := domain.AssignmentFromPairs(pairs).Receiver(giver)
	if receiver == "" {
		// Giver joined the roster after the exchange was drawn.
		return "", fmt.Errorf("no pair for giver %s: %w", giver, domain.ErrAssignmentUnavailable)
	}
	return receiver, nil
}
