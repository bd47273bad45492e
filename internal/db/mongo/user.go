package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CreateUserParams struct {
	Email string
	Name  string
	Role  string
}

func (store *MongoStore) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	defer observe("create_user", time.Now())

	createdAt := now()
	user := User{
		ID:        newID(),
		Email:     arg.Email,
		Name:      arg.Name,
		Role:      arg.Role,
		Status:    UserStatusActive,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if _, err := store.users.InsertOne(ctx, user); err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (store *MongoStore) ListUsersByIDs(ctx context.Context, ids []string) ([]User, error) {
	defer observe("list_users_by_ids", time.Now())
	return findByKeys[User](ctx, store.users, "_id", ids)
}

type SearchUsersParams struct {
	// Keyword is matched against name and email
	Keyword string
	Role    string
	Status  *UserStatus
}

func (store *MongoStore) SearchUsers(ctx context.Context, arg SearchUsersParams, sort Sort, p PageRequest) (Page[User], error) {
	defer observe("search_users", time.Now())

	if arg.Status != nil && !arg.Status.Valid() {
		return Page[User]{}, fmt.Errorf("%w: unknown user status %q", ErrInvalidCriteria, *arg.Status)
	}
	order, err := userSorts.order(sort)
	if err != nil {
		return Page[User]{}, err
	}

	var cl clauses
	if keyword := strings.TrimSpace(arg.Keyword); keyword != "" {
		cl.add(keywordClause(keyword, "name", "email"))
	}
	if arg.Role != "" {
		cl.add(bson.D{{Key: "role", Value: arg.Role}})
	}
	if arg.Status != nil {
		cl.add(bson.D{{Key: "status", Value: string(*arg.Status)}})
	}

	return findPage[User](ctx, store.users, cl.match(), order, p)
}

type CreateJobSeekerProfileParams struct {
	UserID            string
	FullName          string
	ProfessionalTitle string
	Summary           string
	Skills            []string
}

func (store *MongoStore) CreateJobSeekerProfile(ctx context.Context, arg CreateJobSeekerProfileParams) (JobSeekerProfile, error) {
	defer observe("create_job_seeker_profile", time.Now())

	createdAt := now()
	profile := JobSeekerProfile{
		ID:                newID(),
		UserID:            arg.UserID,
		FullName:          arg.FullName,
		ProfessionalTitle: arg.ProfessionalTitle,
		Summary:           arg.Summary,
		Skills:            arg.Skills,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
	if _, err := store.profiles.InsertOne(ctx, profile); err != nil {
		return JobSeekerProfile{}, fmt.Errorf("insert job seeker profile: %w", err)
	}
	return profile, nil
}

// SearchProfiles matches keyword against the full name and the
// professional title of job seekers
func (store *MongoStore) SearchProfiles(ctx context.Context, keyword string, sort Sort, p PageRequest) (Page[JobSeekerProfile], error) {
	defer observe("search_profiles", time.Now())

	order, err := profileSorts.order(sort)
	if err != nil {
		return Page[JobSeekerProfile]{}, err
	}

	var cl clauses
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		cl.add(keywordClause(keyword, "full_name", "professional_title"))
	}

	return findPage[JobSeekerProfile](ctx, store.profiles, cl.match(), order, p)
}
