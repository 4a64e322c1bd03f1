package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

const collectionConcessions = "concessions"

// ConcessionRepository persists concessions.
type ConcessionRepository struct {
	col *mongo.Collection
}

func NewConcessionRepository(db *mongo.Database) *ConcessionRepository {
	return &ConcessionRepository{col: db.Collection(collectionConcessions)}
}

func (r *ConcessionRepository) Create(ctx context.Context, c *domain.Concession) (*domain.Concession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert concession: %w", err)
	}
	return c, nil
}

func (r *ConcessionRepository) FindByID(ctx context.Context, id string) (*domain.Concession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Concession
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConcessionNotFound
		}
		return nil, fmt.Errorf("find concession: %w", err)
	}
	return &c, nil
}

func (r *ConcessionRepository) List(ctx context.Context) ([]*domain.Concession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list concessions: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]*domain.Concession, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode concessions: %w", err)
	}
	return out, nil
}

func (r *ConcessionRepository) Update(ctx context.Context, c *domain.Concession) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("update concession: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConcessionNotFound
	}
	return nil
}
