package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the queries of the store rely on.
// Existing indexes are left as they are.
func (store *MongoStore) EnsureIndexes(ctx context.Context) error {
	collections := map[string][]mongo.IndexModel{
		collectionJobs: {
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
		},
		collectionLocations: {
			{Keys: bson.D{{Key: "job_id", Value: 1}}},
		},
		collectionCategories: {
			{Keys: bson.D{{Key: "job_id", Value: 1}}},
		},
		collectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		collectionProfiles: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		collectionApplications: {
			{Keys: bson.D{{Key: "job_seeker_id", Value: 1}, {Key: "applied_at", Value: -1}}},
			{Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "applied_at", Value: -1}}},
		},
		collectionMessages: {
			{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "chat_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for name, indexes := range collections {
		if _, err := store.database.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create indexes for %s: %w", name, err)
		}
	}
	return nil
}
