package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/famgift/exchange-system/internal/core/domain"
)

const collectionWishes = "wishes"

// WishListRepository stores one document per username in a single shared
// collection. Wish lists are deliberately not scoped by group.
type WishListRepository struct {
	col *mongo.Collection
}

func NewWishListRepository(db *mongo.Database) *WishListRepository {
	return &WishListRepository{col: db.Collection(collectionWishes)}
}

// Get returns the stored items. Both "no record" and "record with empty
// items" read as an empty slice.
func (r *WishListRepository) Get(ctx context.Context, username string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc domain.WishList
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("find wish list: %w", err)
	}
	if doc.Items == nil {
		return []string{}, nil
	}
	return doc.Items, nil
}

// Set replaces the full item list with upsert semantics.
func (r *WishListRepository) Set(ctx context.Context, username string, items []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"items": items}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert wish list: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique username index on the wishes collection.
func (r *WishListRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
