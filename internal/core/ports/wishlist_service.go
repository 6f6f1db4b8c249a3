package ports

import "context"

// WishListService defines the wish list use cases.
type WishListService interface {
	Get(ctx context.Context, username string) ([]string, error)
	// Set replaces the owner's list wholesale; removal of one item is
	// "send the list again without it".
	Set(ctx context.Context, username string, items []string) error
}
