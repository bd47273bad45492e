package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type CreateApplicationParams struct {
	JobID       string
	JobSeekerID string
	ResumeURL   string
	CoverLetter string
}

func (store *MongoStore) CreateApplication(ctx context.Context, arg CreateApplicationParams) (Application, error) {
	defer observe("create_application", time.Now())

	appliedAt := now()
	application := Application{
		ID:          newID(),
		JobID:       arg.JobID,
		JobSeekerID: arg.JobSeekerID,
		ResumeURL:   arg.ResumeURL,
		CoverLetter: arg.CoverLetter,
		Status:      ApplicationStatusPending,
		AppliedAt:   appliedAt,
		UpdatedAt:   appliedAt,
	}
	if _, err := store.applications.InsertOne(ctx, application); err != nil {
		return Application{}, fmt.Errorf("insert application: %w", err)
	}
	return application, nil
}

func (store *MongoStore) ListApplicationsByJobSeeker(ctx context.Context, jobSeekerID string, status *ApplicationStatus, sort Sort, p PageRequest) (Page[Application], error) {
	defer observe("list_applications_by_job_seeker", time.Now())
	return store.listApplications(ctx, "job_seeker_id", jobSeekerID, status, sort, p)
}

func (store *MongoStore) ListApplicationsByJob(ctx context.Context, jobID string, status *ApplicationStatus, sort Sort, p PageRequest) (Page[Application], error) {
	defer observe("list_applications_by_job", time.Now())
	return store.listApplications(ctx, "job_id", jobID, status, sort, p)
}

func (store *MongoStore) listApplications(ctx context.Context, field, id string, status *ApplicationStatus, sort Sort, p PageRequest) (Page[Application], error) {
	if status != nil && !status.Valid() {
		return Page[Application]{}, fmt.Errorf("%w: unknown application status %q", ErrInvalidCriteria, *status)
	}
	order, err := applicationSorts.order(sort)
	if err != nil {
		return Page[Application]{}, err
	}

	cl := clauses{bson.D{{Key: field, Value: id}}}
	if status != nil {
		cl.add(bson.D{{Key: "status", Value: string(*status)}})
	}

	return findPage[Application](ctx, store.applications, cl.match(), order, p)
}

// GetApplicationStats counts the applications of a job seeker per status
// with one grouping query
func (store *MongoStore) GetApplicationStats(ctx context.Context, jobSeekerID string) (ApplicationStats, error) {
	defer observe("get_application_stats", time.Now())

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "job_seeker_id", Value: jobSeekerID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := store.applications.Aggregate(ctx, pipeline)
	if err != nil {
		return ApplicationStats{}, fmt.Errorf("aggregate application stats: %w", err)
	}

	var groups []struct {
		Status ApplicationStatus `bson:"_id"`
		Count  int64             `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return ApplicationStats{}, fmt.Errorf("decode application stats: %w", err)
	}

	var stats ApplicationStats
	for _, g := range groups {
		stats.Total += g.Count
		switch g.Status {
		case ApplicationStatusPending:
			stats.Pending = g.Count
		case ApplicationStatusInterviewing:
			stats.Interviewing = g.Count
		case ApplicationStatusOffered:
			stats.Offered = g.Count
		case ApplicationStatusRejected:
			stats.Rejected = g.Count
		case ApplicationStatusCancelled:
			stats.Cancelled = g.Count
		}
	}
	return stats, nil
}
