package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/torislove/gomandap-server/internal/config"
	"github.com/torislove/gomandap-server/internal/logging"
)

var (
	Client   *mongo.Client
	Database *mongo.Database
	Rdb      *redis.Client
)

// Connect establishes the MongoDB connection and pings it. Fatal on failure;
// the API is useless without its store at startup.
func Connect(cfg config.MongoConfig) {
	l := logging.L()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		l.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	if err := client.Ping(ctx, nil); err != nil {
		l.Fatal().Err(err).Msg("failed to ping MongoDB")
	}

	Client = client
	Database = client.Database(cfg.Database)

	l.Info().Str("database", cfg.Database).Msg("connected to MongoDB")
}

// InitRedis connects the shared redis client used for caching.
func InitRedis(cfg config.RedisConfig) {
	l := logging.L()

	Rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Rdb.Ping(ctx).Err(); err != nil {
		l.Fatal().Err(err).Msg("failed to connect to redis")
	}

	l.Info().Str("addr", cfg.Address).Msg("redis connected")
}

func GetCollection(collectionName string) *mongo.Collection {
	return Database.Collection(collectionName)
}

func GetDB() *mongo.Database {
	return Database
}
