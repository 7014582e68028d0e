package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/harish176/placement-portal/internal/config"
	"github.com/harish176/placement-portal/internal/pkg/helpers"
	"github.com/harish176/placement-portal/internal/pkg/logger"
)

// Collection names
const (
	StudentsCollection   = "students"
	FacultyCollection    = "faculty"
	CompaniesCollection  = "companies"
	PlacementsCollection = "placements"
	TPCMembersCollection = "tpc_members"
)

// MongoDB database connection structure
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to MongoDB and verifies the connection with a ping.
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	timeout := helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDB{Client: client, Database: client.Database(cfg.Database.Name)}, nil
}

// Ping checks that the primary is reachable.
func (db *MongoDB) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) error {
	if db == nil || db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}

// Collection returns a handle for name.
func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// IndexSpecs lists the indexes every collection needs.
func IndexSpecs() map[string][]mongo.IndexModel {
	unique := func(keys bson.D, name string) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name).SetUnique(true)}
	}
	plain := func(keys bson.D, name string) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}
	}

	return map[string][]mongo.IndexModel{
		StudentsCollection: {
			unique(bson.D{{Key: "email", Value: 1}}, "email_unique"),
			unique(bson.D{{Key: "phone", Value: 1}}, "phone_unique"),
			unique(bson.D{{Key: "scholarNumber", Value: 1}}, "scholarNumber_unique"),
			plain(bson.D{{Key: "branch", Value: 1}, {Key: "batch", Value: 1}}, "branch_batch"),
		},
		FacultyCollection: {
			unique(bson.D{{Key: "email", Value: 1}}, "email_unique"),
			unique(bson.D{{Key: "contactNumber", Value: 1}}, "contactNumber_unique"),
			{
				Keys: bson.D{{Key: "employeeId", Value: 1}},
				Options: options.Index().
					SetName("employeeId_unique").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"employeeId": bson.M{"$type": "string"}}),
			},
		},
		CompaniesCollection: {
			{
				Keys: bson.D{{Key: "name", Value: 1}},
				Options: options.Index().
					SetName("name_unique").
					SetUnique(true).
					SetCollation(&options.Collation{Locale: "en", Strength: 2}),
			},
		},
		PlacementsCollection: {
			plain(bson.D{{Key: "scholarNumber", Value: 1}}, "scholarNumber"),
			plain(bson.D{{Key: "companyName", Value: 1}}, "companyName"),
			plain(bson.D{{Key: "student", Value: 1}}, "student"),
			plain(bson.D{{Key: "batch", Value: 1}, {Key: "placementType", Value: 1}}, "batch_placementType"),
		},
		TPCMembersCollection: {
			plain(bson.D{{Key: "team", Value: 1}}, "team"),
		},
	}
}

// EnsureIndexes creates any missing index. Existing indexes with the same
// definition are left alone by the server.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	for collection, models := range IndexSpecs() {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		logger.Debug().Str("collection", collection).Strs("indexes", names).Msg("Indexes ensured")
	}
	return nil
}
