package ports

import "context"

// WishListRepository defines persistence operations for wish lists.
type WishListRepository interface {
	// Get returns the items for username. A missing record reads as an
	// empty list.
	Get(ctx context.Context, username string) ([]string, error)
	// Set replaces the full item list, creating the record if absent.
	Set(ctx context.Context, username string, items []string) error
}
