package ports

import (
	"context"

	"github.com/famgift/exchange-system/internal/core/domain"
)

// AssignmentRepository defines persistence operations for per-group
// assignment record sets.
type AssignmentRepository interface {
	// Find returns every persisted pair for the group. No rows means the
	// group has no assignment yet; that is not an error.
	Find(ctx context.Context, groupID string) ([]domain.Pair, error)
	// Insert persists all pairs of a freshly generated assignment.
	Insert(ctx context.Context, groupID string, pairs []domain.Pair) error
	// Delete removes the group's entire assignment record set.
	Delete(ctx context.Context, groupID string) error
	// ListGroupIDs returns the ids of every group that has persisted
	// assignment records.
	ListGroupIDs(ctx context.Context) ([]string, error)
}
