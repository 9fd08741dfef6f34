// Package snapshot persists and serves the last candle snapshot per symbol
// and resolution, so a freshly started service can fill the chart before
// the upstream feed answers. View state itself is never persisted.
package snapshot

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bitbucket.org/novatechnologies/chartview/domain"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(collection *mongo.Collection) *Repository {
	return &Repository{collection: collection}
}

type document struct {
	Symbol     string          `bson:"symbol"`
	Resolution string          `bson:"resolution"`
	UpdatedAt  time.Time       `bson:"updatedAt"`
	Candles    []domain.Candle `bson:"candles"`
}

func (r *Repository) Save(
	ctx context.Context,
	symbol string,
	resolution domain.Resolution,
	candles []domain.Candle,
) error {
	filter := bson.D{
		{Key: "symbol", Value: symbol},
		{Key: "resolution", Value: string(resolution)},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "candles", Value: candles},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}

	_, err := r.collection.UpdateOne(
		ctx, filter, update, options.Update().SetUpsert(true),
	)

	return errors.Wrap(err, "can't save candle snapshot")
}

// Last returns the stored snapshot, or nil when none exists yet.
func (r *Repository) Last(
	ctx context.Context,
	symbol string,
	resolution domain.Resolution,
) ([]domain.Candle, error) {
	filter := bson.D{
		{Key: "symbol", Value: symbol},
		{Key: "resolution", Value: string(resolution)},
	}

	var doc document
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "can't load candle snapshot")
	}

	return doc.Candles, nil
}
