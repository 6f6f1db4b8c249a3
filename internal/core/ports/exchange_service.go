package ports

import (
	"context"

	"github.com/famgift/exchange-system/internal/core/domain"
)

// Matcher produces a constraint-respecting gift assignment: a permutation
// of the participants with no fixed points and no forbidden pairs. The
// returned attempt count is the number of shuffles it took.
type Matcher interface {
	Match(participants []string, exclusions map[string][]string) (domain.Assignment, int, error)
}

// ExchangeService defines the assignment use cases.
type ExchangeService interface {
	// GetOrCreate returns the group's assignment, generating and persisting
	// one only when no records exist yet. Repeat calls are pure reads.
	GetOrCreate(ctx context.Context, group domain.Group) (domain.Assignment, error)
	// Receiver is a pure read: the receiver assigned to giver, or
	// domain.ErrAssignmentUnavailable when the group has no assignment.
	Receiver(ctx context.Context, groupID, giver string) (string, error)
}

// GroupInitializer is the unit of work the reconcile worker pool executes
// for each configured group.
type GroupInitializer interface {
	InitializeGroup(ctx context.Context, group domain.Group) error
}

// InitRunner fans group initialization out to workers and blocks until
// every group has been processed.
type InitRunner interface {
	Run(ctx context.Context, groups []domain.Group)
}
