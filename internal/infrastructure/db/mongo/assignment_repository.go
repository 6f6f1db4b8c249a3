package mongo

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/famgift/exchange-system/internal/core/domain"
)

// Each group's assignment lives in its own collection, named from the group
// id. That keeps the record sets individually droppable when a group is
// retired from configuration.
const assignmentCollectionPrefix = "assignments_"

type AssignmentRepository struct {
	db *mongo.Database
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

type pairDoc struct {
	Giver    string `bson:"giver"`
	Receiver string `bson:"receiver"`
}

// Find returns every persisted giver→receiver pair for the group. A group
// with no records yields an empty slice, not an error.
func (r *AssignmentRepository) Find(ctx context.Context, groupID string) ([]domain.Pair, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.collection(groupID).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find assignment pairs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []pairDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode assignment pairs: %w", err)
	}

	pairs := make([]domain.Pair, 0, len(docs))
	for _, d := range docs {
		pairs = append(pairs, domain.Pair{Giver: d.Giver, Receiver: d.Receiver})
	}
	return pairs, nil
}

// Insert persists every pair of a freshly generated assignment as an
// individually addressable document.
func (r *AssignmentRepository) Insert(ctx context.Context, groupID string, pairs []domain.Pair) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(pairs))
	for _, p := range pairs {
		docs = append(docs, pairDoc{Giver: p.Giver, Receiver: p.Receiver})
	}

	if _, err := r.collection(groupID).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert assignment pairs: %w", err)
	}
	return nil
}

// Delete drops the group's assignment collection entirely.
func (r *AssignmentRepository) Delete(ctx context.Context, groupID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.collection(groupID).Drop(ctx); err != nil {
		return fmt.Errorf("drop assignment collection: %w", err)
	}
	return nil
}

// ListGroupIDs derives the persisted group ids from the assignment
// collection names.
func (r *AssignmentRepository) ListGroupIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	names, err := r.db.ListCollectionNames(ctx, bson.M{
		"name": bson.M{"$regex": "^" + assignmentCollectionPrefix},
	})
	if err != nil {
		return nil, fmt.Errorf("list assignment collections: %w", err)
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, strings.TrimPrefix(name, assignmentCollectionPrefix))
	}
	return ids, nil
}

func (r *AssignmentRepository) collection(groupID string) *mongo.Collection {
	return r.db.Collection(assignmentCollectionPrefix + groupID)
}
