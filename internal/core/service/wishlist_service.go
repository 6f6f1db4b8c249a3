package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/famgift/exchange-system/internal/api/metrics"
	"github.com/famgift/exchange-system/internal/core/ports"
)

type WishListService struct {
	repo   ports.WishListRepository
	logger zerolog.Logger
}

func NewWishListService(repo ports.WishListRepository, logger zerolog.Logger) *WishListService {
	return &WishListService{repo: repo, logger: logger}
}

// Get returns the owner's items; a user who never saved reads an empty list.
func (s *WishListService) Get(ctx context.Context, username string) ([]string, error) {
	items, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get wish list: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// Set replaces the owner's list wholesale. An empty list is a valid value,
// distinct in intent from never having saved, and is persisted as such.
func (s *WishListService) Set(ctx context.Context, username string, items []string) error {
	if items == nil {
		items = []string{}
	}
	if err := s.repo.Set(ctx, username, items); err != nil {
		return fmt.Errorf("save wish list: %w", err)
	}

	metrics.WishListUpdatesTotal.Inc()
	s.logger.Debug().Str("username", username).Int("items", len(items)).Msg("wish list saved")
	return nil
}
