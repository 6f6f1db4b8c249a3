package ports

import "github.com/famgift/exchange-system/internal/core/domain"

// GroupSource supplies the configured groups. Implementations may cache;
// callers must not mutate the returned values.
type GroupSource interface {
	Groups() ([]domain.Group, error)
	// GroupByID returns domain.ErrGroupNotFound for unknown ids.
	GroupByID(id string) (*domain.Group, error)
}
