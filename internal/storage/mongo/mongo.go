package mongo

import (
	"context"
	"net/http"

	"github.com/washlava-dev/washlava/internal/config"
	internal_errors "github.com/washlava-dev/washlava/internal/errors"
	"github.com/washlava-dev/washlava/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Storage wraps the Mongo client and the collection handles the API works
// with. Handles are resolved once at startup; there is no other process
// state.
type Storage struct {
	client   *mongo.Client
	users    *mongo.Collection
	services *mongo.Collection
	carts    *mongo.Collection
	reviews  *mongo.Collection
	cfg      *config.Config
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to mongodb")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Public.Mongo.ConnectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, err
	}

	// A failed initial connection is fatal to the process, so surface it
	// here rather than on the first query.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logger.Log.Info("successfully connected to mongodb")

	db := client.Database(cfg.Public.Mongo.Database)
	return &Storage{
		client:   client,
		users:    db.Collection("users"),
		services: db.Collection("services"),
		carts:    db.Collection("carts"),
		reviews:  db.Collection("reviews"),
		cfg:      cfg,
	}, nil
}

// Cleanup closes the client connection pool.
func (s *Storage) Cleanup(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// queryCtx bounds every store operation. Request cancellation is not
// propagated: a started store call runs to completion or failure.
func (s *Storage) queryCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.cfg.Public.Mongo.QueryTimeout)
}

// storeError hides driver-internal detail from the caller.
func storeError(err error) error {
	logger.Log.Error("store operation failed", "error", err)
	return &internal_errors.ErrorWithStatusCode{Message: "Internal Server Error", StatusCode: http.StatusInternalServerError}
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer cur.Close(ctx)
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeError(err)
	}
	return out, nil
}
