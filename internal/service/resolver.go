package service

import (
	"context"
	"fmt"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"golang.org/x/sync/errgroup"
)

// JobDetails is a job with the records it references. A reference that
// does not exist is nil.
type JobDetails struct {
	db.Job
	Company  *db.Company  `json:"company"`
	Location *db.Location `json:"location"`
	Category *db.Category `json:"category"`
}

// ApplicationDetails is an application with the job applied for and the
// company offering it
type ApplicationDetails struct {
	db.Application
	Job     *db.Job     `json:"job"`
	Company *db.Company `json:"company"`
}

// ApplicantDetails is an application with the user who applied
type ApplicantDetails struct {
	db.Application
	Applicant *db.User `json:"applicant"`
}

// distinct returns the non-empty keys of items in order of first
// appearance, each once
func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	keys := make([]string, 0, len(items))
	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// indexBy maps each key to the first item that has it
func indexBy[T any](items []T, key func(T) string) map[string]*T {
	m := make(map[string]*T, len(items))
	for i := range items {
		k := key(items[i])
		if _, ok := m[k]; !ok {
			m[k] = &items[i]
		}
	}
	return m
}

// fetchInto loads the records with keys and indexes them into dst. No
// fetch is made for an empty key set.
func fetchInto[T any](
	ctx context.Context,
	dst *map[string]*T,
	keys []string,
	fetch func(context.Context, []string) ([]T, error),
	key func(T) string,
	what string,
) error {
	if len(keys) == 0 {
		*dst = map[string]*T{}
		return nil
	}
	items, err := fetch(ctx, keys)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", what, err)
	}
	*dst = indexBy(items, key)
	return nil
}

func companyKey(c db.Company) string   { return c.ID }
func locationKey(l db.Location) string { return l.JobID }
func categoryKey(c db.Category) string { return c.JobID }
func jobKey(j db.Job) string           { return j.ID }
func userKey(u db.User) string         { return u.ID }

// ResolveJobs attaches company, location and category to every job. Each
// referenced type is fetched once for the whole slice and the fetches run
// concurrently. The result keeps the order of jobs.
func (s *Service) ResolveJobs(ctx context.Context, jobs []db.Job) ([]JobDetails, error) {
	details := make([]JobDetails, len(jobs))
	if len(jobs) == 0 {
		return details, nil
	}

	companyIDs := distinct(jobs, func(j db.Job) string { return j.CompanyID })
	jobIDs := distinct(jobs, jobKey)

	var (
		companies  map[string]*db.Company
		locations  map[string]*db.Location
		categories map[string]*db.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fetchInto(gctx, &companies, companyIDs, s.store.ListCompaniesByIDs, companyKey, "companies")
	})
	g.Go(func() error {
		return fetchInto(gctx, &locations, jobIDs, s.store.ListLocationsByJobIDs, locationKey, "locations")
	})
	g.Go(func() error {
		return fetchInto(gctx, &categories, jobIDs, s.store.ListCategoriesByJobIDs, categoryKey, "categories")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, job := range jobs {
		details[i] = JobDetails{
			Job:      job,
			Company:  companies[job.CompanyID],
			Location: locations[job.ID],
			Category: categories[job.ID],
		}
	}
	return details, nil
}

// ResolveApplications attaches the job and the company of the job to each
// application. Jobs are fetched in one query, then their companies in one
// more.
func (s *Service) ResolveApplications(ctx context.Context, applications []db.Application) ([]ApplicationDetails, error) {
	details := make([]ApplicationDetails, len(applications))
	if len(applications) == 0 {
		return details, nil
	}

	var jobs map[string]*db.Job
	jobIDs := distinct(applications, func(a db.Application) string { return a.JobID })
	if err := fetchInto(ctx, &jobs, jobIDs, s.store.ListJobsByIDs, jobKey, "jobs"); err != nil {
		return nil, err
	}

	companyIDs := make([]string, 0, len(jobs))
	for _, id := range jobIDs {
		if job, ok := jobs[id]; ok && job.CompanyID != "" {
			companyIDs = append(companyIDs, job.CompanyID)
		}
	}
	companyIDs = distinct(companyIDs, func(id string) string { return id })

	var companies map[string]*db.Company
	if err := fetchInto(ctx, &companies, companyIDs, s.store.ListCompaniesByIDs, companyKey, "companies"); err != nil {
		return nil, err
	}

	for i, application := range applications {
		d := ApplicationDetails{Application: application, Job: jobs[application.JobID]}
		if d.Job != nil {
			d.Company = companies[d.Job.CompanyID]
		}
		details[i] = d
	}
	return details, nil
}

// ResolveApplicants attaches the applying user to each application
func (s *Service) ResolveApplicants(ctx context.Context, applications []db.Application) ([]ApplicantDetails, error) {
	details := make([]ApplicantDetails, len(applications))
	if len(applications) == 0 {
		return details, nil
	}

	var users map[string]*db.User
	userIDs := distinct(applications, func(a db.Application) string { return a.JobSeekerID })
	if err := fetchInto(ctx, &users, userIDs, s.store.ListUsersByIDs, userKey, "applicants"); err != nil {
		return nil, err
	}

	for i, application := range applications {
		details[i] = ApplicantDetails{Application: application, Applicant: users[application.JobSeekerID]}
	}
	return details, nil
}
