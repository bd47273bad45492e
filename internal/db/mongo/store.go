package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	collectionJobs         = "jobs"
	collectionCompanies    = "companies"
	collectionLocations    = "locations"
	collectionCategories   = "categories"
	collectionUsers        = "users"
	collectionProfiles     = "job_seeker_profiles"
	collectionApplications = "applications"
	collectionMessages     = "chat_messages"
)

type Store interface {
	// jobs
	CreateJob(ctx context.Context, arg CreateJobParams) (Job, error)
	GetJob(ctx context.Context, id string) (Job, error)
	SearchJobs(ctx context.Context, criteria JobSearchCriteria, sort Sort, p PageRequest) (Page[Job], error)
	ListJobsByCompany(ctx context.Context, companyID string, sort Sort, p PageRequest) (Page[Job], error)
	ListJobsByIDs(ctx context.Context, ids []string) ([]Job, error)
	UpdateJobStatus(ctx context.Context, id string, status JobStatus) (Job, error)

	// job references
	CreateCompany(ctx context.Context, arg CreateCompanyParams) (Company, error)
	ListCompaniesByIDs(ctx context.Context, ids []string) ([]Company, error)
	ListLocationsByJobIDs(ctx context.Context, jobIDs []string) ([]Location, error)
	ListCategoriesByJobIDs(ctx context.Context, jobIDs []string) ([]Category, error)

	// users and profiles
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	ListUsersByIDs(ctx context.Context, ids []string) ([]User, error)
	SearchUsers(ctx context.Context, arg SearchUsersParams, sort Sort, p PageRequest) (Page[User], error)
	UpdateUserStatus(ctx context.Context, id string, status UserStatus) (User, error)
	CreateJobSeekerProfile(ctx context.Context, arg CreateJobSeekerProfileParams) (JobSeekerProfile, error)
	SearchProfiles(ctx context.Context, keyword string, sort Sort, p PageRequest) (Page[JobSeekerProfile], error)

	// applications
	CreateApplication(ctx context.Context, arg CreateApplicationParams) (Application, error)
	ListApplicationsByJobSeeker(ctx context.Context, jobSeekerID string, status *ApplicationStatus, sort Sort, p PageRequest) (Page[Application], error)
	ListApplicationsByJob(ctx context.Context, jobID string, status *ApplicationStatus, sort Sort, p PageRequest) (Page[Application], error)
	GetApplicationStats(ctx context.Context, jobSeekerID string) (ApplicationStats, error)
	UpdateApplicationStatus(ctx context.Context, id string, status ApplicationStatus) (Application, error)

	// chat
	CreateChatMessage(ctx context.Context, arg CreateChatMessageParams) (ChatMessage, error)
	ListChatHistory(ctx context.Context, userID, partnerID string, p PageRequest) (Page[ChatMessage], error)
	ListConversations(ctx context.Context, participantID string, p PageRequest) (Page[ChatMessage], error)
	MarkConversationRead(ctx context.Context, readerID, partnerID string) (int64, error)

	GetSystemStats(ctx context.Context) (SystemStats, error)
	EnsureIndexes(ctx context.Context) error
	LoadTestData(ctx context.Context)
}

// MongoStore provides all functions to execute db queries against MongoDB
type MongoStore struct {
	database     *mongo.Database
	jobs         *mongo.Collection
	companies    *mongo.Collection
	locations    *mongo.Collection
	categories   *mongo.Collection
	users        *mongo.Collection
	profiles     *mongo.Collection
	applications *mongo.Collection
	messages     *mongo.Collection
}

// NewStore creates a new Store
func NewStore(database *mongo.Database) Store {
	return &MongoStore{
		database:     database,
		jobs:         database.Collection(collectionJobs),
		companies:    database.Collection(collectionCompanies),
		locations:    database.Collection(collectionLocations),
		categories:   database.Collection(collectionCategories),
		users:        database.Collection(collectionUsers),
		profiles:     database.Collection(collectionProfiles),
		applications: database.Collection(collectionApplications),
		messages:     database.Collection(collectionMessages),
	}
}

func newID() string {
	return bson.NewObjectID().Hex()
}

// now is truncated to the precision the database stores
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// findByKeys fetches every record whose field equals one of keys in a
// single query. No query is made for an empty key set.
func findByKeys[T any](ctx context.Context, coll *mongo.Collection, field string, keys []string) ([]T, error) {
	if len(keys) == 0 {
		return []T{}, nil
	}

	cursor, err := coll.Find(ctx, bson.D{{Key: field, Value: bson.D{{Key: "$in", Value: keys}}}})
	if err != nil {
		return nil, fmt.Errorf("find %s by %s: %w", coll.Name(), field, err)
	}

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return items, nil
}
