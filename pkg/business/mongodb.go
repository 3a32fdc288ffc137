package business

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Config holds the document store connection settings.
type Config struct {
	ConnectionURL  string        `env:"BIZCTX_MONGODB_URL,required"`                       // ConnectionURL is the URL of the document store.
	Database       string        `env:"BIZCTX_MONGODB_DATABASE" envDefault:"bizctx"`       // Database is the database holding the business collection.
	Collection     string        `env:"BIZCTX_MONGODB_COLLECTION" envDefault:"businesses"` // Collection is the collection holding business records.
	ConnectTimeout time.Duration `env:"BIZCTX_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`   // ConnectTimeout bounds each connection attempt.
	RetryAttempts  int           `env:"BIZCTX_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`      // RetryAttempts is the number of connection attempts before giving up.
	RetryInterval  time.Duration `env:"BIZCTX_MONGODB_RETRY_INTERVAL" envDefault:"5s"`     // RetryInterval is the wait between attempts.
}

// Connect establishes a MongoDB connection for the repository, retrying per
// the config before giving up with ErrFailedToConnect.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	for range max(cfg.RetryAttempts, 1) {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnect, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToConnect
}

// MongoRepository is a Repository backed by a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a repository over the configured collection.
func NewMongoRepository(client *mongo.Client, cfg Config) *MongoRepository {
	return &MongoRepository{
		coll: client.Database(cfg.Database).Collection(cfg.Collection),
	}
}

// ListOwned returns all businesses owned by ownerID, oldest first.
func (r *MongoRepository) ListOwned(ctx context.Context, ownerID string) ([]Business, error) {
	cursor, err := r.coll.Find(ctx,
		bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var result []Business
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = []Business{}
	}
	return result, nil
}

// Get fetches one business scoped to its owner. A record that exists under
// a different owner reads as not found.
func (r *MongoRepository) Get(ctx context.Context, ownerID, businessID string) (*Business, error) {
	var b Business
	err := r.coll.FindOne(ctx, bson.M{"_id": businessID, "owner_id": ownerID}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &b, nil
}
