package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// updateField sets one field and the update timestamp of the record with
// the given id in a single server-side operation and returns the record as
// it is after the write. Fields not named are left untouched, so concurrent
// updates of other fields are never overwritten. It never creates records.
func updateField[T any](ctx context.Context, coll *mongo.Collection, id, field string, value any) (T, error) {
	var updated T

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: field, Value: value},
		{Key: "updated_at", Value: now()},
	}}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(false)

	err := coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return updated, fmt.Errorf("%s %q: %w", coll.Name(), id, ErrNotFound)
	}
	if err != nil {
		return updated, fmt.Errorf("update %s.%s: %w", coll.Name(), field, err)
	}
	return updated, nil
}

func (store *MongoStore) UpdateJobStatus(ctx context.Context, id string, status JobStatus) (Job, error) {
	defer observe("update_job_status", time.Now())

	if !status.Valid() {
		return Job{}, fmt.Errorf("%w: unknown job status %q", ErrInvalidCriteria, status)
	}
	return updateField[Job](ctx, store.jobs, id, "status", status)
}

func (store *MongoStore) UpdateApplicationStatus(ctx context.Context, id string, status ApplicationStatus) (Application, error) {
	defer observe("update_application_status", time.Now())

	if !status.Valid() {
		return Application{}, fmt.Errorf("%w: unknown application status %q", ErrInvalidCriteria, status)
	}
	return updateField[Application](ctx, store.applications, id, "status", status)
}

func (store *MongoStore) UpdateUserStatus(ctx context.Context, id string, status UserStatus) (User, error) {
	defer observe("update_user_status", time.Now())

	if !status.Valid() {
		return User{}, fmt.Errorf("%w: unknown user status %q", ErrInvalidCriteria, status)
	}
	return updateField[User](ctx, store.users, id, "status", status)
}
