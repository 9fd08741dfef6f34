package mongo

import (
	"context"
	"time"

	"github.com/AlekSi/pointer"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bitbucket.org/novatechnologies/chartview/infra"
)

func NewMongoClient(
	ctx context.Context,
	config infra.MongoDbConfig,
) (*mongo.Client, error) {
	serverAPIOptions := options.ServerAPI(options.ServerAPIVersion1)

	clientOptions := options.Client().
		ApplyURI(config.ConnectionUrl).
		SetServerAPIOptions(serverAPIOptions).
		SetConnectTimeout(time.Duration(config.TimeOut) * time.Second)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return mongo.Connect(ctx, clientOptions)
}

// InitSnapshotsCollection returns the candle snapshot collection with a
// unique (symbol, resolution) index, one snapshot document per chart key.
func InitSnapshotsCollection(
	ctx context.Context,
	client *mongo.Client,
	config infra.MongoDbConfig,
) *mongo.Collection {
	collection := client.
		Database(config.DatabaseName).
		Collection(config.SnapshotCollectionName)

	createIndex(ctx, collection, "symbol_resolution",
		bson.D{
			{Key: "symbol", Value: 1},
			{Key: "resolution", Value: 1},
		}, true)

	return collection
}

func createIndex(
	ctx context.Context,
	coll *mongo.Collection,
	name string,
	keys bson.D,
	isUnique bool,
) {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: keys,
		Options: &options.IndexOptions{
			Name:   pointer.ToString(name),
			Unique: pointer.ToBool(isUnique),
		},
	})
	if err != nil {
		log.Errorf("can't create index %s: %v", name, err)
	}
}
