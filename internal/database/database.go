package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Master database collection names
const (
	CollectionOrganizations = "organizations"
	CollectionAdmins        = "admins"
)

// Options tunes the Mongo client
type Options struct {
	ConnectTimeout time.Duration
	PingTimeout    time.Duration
}

// DB bundles the Mongo client with the master database handle
type DB struct {
	Client *mongo.Client
	Master *mongo.Database
}

// Initialize connects to MongoDB, verifies the connection and ensures the
// uniqueness indexes the directory relies on.
func Initialize(ctx context.Context, uri, masterDBName string, opts *Options) (*DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	if opts.PingTimeout == 0 {
		opts.PingTimeout = 5 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, opts.PingTimeout)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := &DB{
		Client: client,
		Master: client.Database(masterDBName),
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return db, nil
}

// EnsureIndexes creates the unique indexes backing slug and email uniqueness.
// These give the directory an atomic insert-if-absent primitive: the
// application-level duplicate checks race under concurrency, the indexes
// do not.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	orgIndexes := db.Master.Collection(CollectionOrganizations).Indexes()
	if _, err := orgIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_slug"),
	}); err != nil {
		return fmt.Errorf("organizations slug index: %w", err)
	}

	adminIndexes := db.Master.Collection(CollectionAdmins).Indexes()
	if _, err := adminIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	}); err != nil {
		return fmt.Errorf("admins email index: %w", err)
	}

	return nil
}

// Ping verifies the backing store is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
