package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type CreateJobParams struct {
	Title          string
	CompanyID      string
	Description    string
	EmploymentType JobType
	MinExperience  *int
	SalaryMin      *float64
	SalaryMax      *float64
	Status         JobStatus
	Deadline       *time.Time
	Tags           []string
	PostedByUserID string
	// City and Address create the location of the job when City is set
	City    string
	Address string
	// Category creates the category of the job when set
	Category string
}

// CreateJob creates a job and the location and category records that
// point back to it
func (store *MongoStore) CreateJob(ctx context.Context, arg CreateJobParams) (Job, error) {
	defer observe("create_job", time.Now())

	if !arg.EmploymentType.Valid() {
		return Job{}, fmt.Errorf("%w: unknown job type %q", ErrInvalidCriteria, arg.EmploymentType)
	}
	if arg.Status == "" {
		arg.Status = JobStatusOpen
	}
	if !arg.Status.Valid() {
		return Job{}, fmt.Errorf("%w: unknown job status %q", ErrInvalidCriteria, arg.Status)
	}

	createdAt := now()
	job := Job{
		ID:             newID(),
		Title:          arg.Title,
		CompanyID:      arg.CompanyID,
		Description:    arg.Description,
		EmploymentType: arg.EmploymentType,
		MinExperience:  arg.MinExperience,
		SalaryMin:      arg.SalaryMin,
		SalaryMax:      arg.SalaryMax,
		Status:         arg.Status,
		Deadline:       arg.Deadline,
		Tags:           arg.Tags,
		PostedByUserID: arg.PostedByUserID,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	if _, err := store.jobs.InsertOne(ctx, job); err != nil {
		return Job{}, fmt.Errorf("insert job: %w", err)
	}

	if arg.City != "" {
		location := Location{ID: newID(), JobID: job.ID, City: arg.City, Address: arg.Address}
		if _, err := store.locations.InsertOne(ctx, location); err != nil {
			return Job{}, fmt.Errorf("insert location of job %s: %w", job.ID, err)
		}
	}

	if arg.Category != "" {
		category := Category{ID: newID(), JobID: job.ID, Name: arg.Category}
		if _, err := store.categories.InsertOne(ctx, category); err != nil {
			return Job{}, fmt.Errorf("insert category of job %s: %w", job.ID, err)
		}
	}

	return job, nil
}

func (store *MongoStore) GetJob(ctx context.Context, id string) (Job, error) {
	defer observe("get_job", time.Now())

	var job Job
	err := store.jobs.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Job{}, fmt.Errorf("job %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Job{}, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// SearchJobs returns one page of the jobs matching criteria and the number
// of all matching jobs
func (store *MongoStore) SearchJobs(ctx context.Context, criteria JobSearchCriteria, sort Sort, p PageRequest) (Page[Job], error) {
	defer observe("search_jobs", time.Now())

	query, err := CompileJobSearch(criteria)
	if err != nil {
		return Page[Job]{}, err
	}
	order, err := jobSorts.order(sort)
	if err != nil {
		return Page[Job]{}, err
	}

	return aggregatePage[Job](ctx, store.jobs, query.Pipeline(), order, p)
}

func (store *MongoStore) ListJobsByCompany(ctx context.Context, companyID string, sort Sort, p PageRequest) (Page[Job], error) {
	defer observe("list_jobs_by_company", time.Now())

	order, err := jobSorts.order(sort)
	if err != nil {
		return Page[Job]{}, err
	}
	return findPage[Job](ctx, store.jobs, bson.D{{Key: "company_id", Value: companyID}}, order, p)
}

func (store *MongoStore) ListJobsByIDs(ctx context.Context, ids []string) ([]Job, error) {
	defer observe("list_jobs_by_ids", time.Now())
	return findByKeys[Job](ctx, store.jobs, "_id", ids)
}

type CreateCompanyParams struct {
	Name         string
	Industry     string
	Address      string
	LogoURL      string
	Website      string
	RecruiterID  string
	ContactEmail string
}

func (store *MongoStore) CreateCompany(ctx context.Context, arg CreateCompanyParams) (Company, error) {
	defer observe("create_company", time.Now())

	createdAt := now()
	company := Company{
		ID:           newID(),
		Name:         arg.Name,
		Industry:     arg.Industry,
		Address:      arg.Address,
		LogoURL:      arg.LogoURL,
		Website:      arg.Website,
		RecruiterID:  arg.RecruiterID,
		ContactEmail: arg.ContactEmail,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if _, err := store.companies.InsertOne(ctx, company); err != nil {
		return Company{}, fmt.Errorf("insert company: %w", err)
	}
	return company, nil
}

func (store *MongoStore) ListCompaniesByIDs(ctx context.Context, ids []string) ([]Company, error) {
	defer observe("list_companies_by_ids", time.Now())
	return findByKeys[Company](ctx, store.companies, "_id", ids)
}

// ListLocationsByJobIDs returns the locations owned by any of the jobs
func (store *MongoStore) ListLocationsByJobIDs(ctx context.Context, jobIDs []string) ([]Location, error) {
	defer observe("list_locations_by_job_ids", time.Now())
	return findByKeys[Location](ctx, store.locations, "job_id", jobIDs)
}

// ListCategoriesByJobIDs returns the categories owned by any of the jobs
func (store *MongoStore) ListCategoriesByJobIDs(ctx context.Context, jobIDs []string) ([]Category, error) {
	defer observe("list_categories_by_job_ids", time.Now())
	return findByKeys[Category](ctx, store.categories, "job_id", jobIDs)
}
