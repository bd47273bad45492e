package service

import (
	"context"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
)

// SearchJobs returns one page of the jobs matching criteria with their
// references resolved
func (s *Service) SearchJobs(ctx context.Context, criteria db.JobSearchCriteria, sort db.Sort, p db.PageRequest) (db.Page[JobDetails], error) {
	page, err := s.store.SearchJobs(ctx, criteria, sort, p)
	if err != nil {
		return db.Page[JobDetails]{}, err
	}
	return s.resolveJobPage(ctx, page)
}

// GetJob returns a job with its references resolved
func (s *Service) GetJob(ctx context.Context, id string) (JobDetails, error) {
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return JobDetails{}, err
	}

	details, err := s.ResolveJobs(ctx, []db.Job{job})
	if err != nil {
		return JobDetails{}, err
	}
	return details[0], nil
}

func (s *Service) ListJobsByCompany(ctx context.Context, companyID string, sort db.Sort, p db.PageRequest) (db.Page[JobDetails], error) {
	page, err := s.store.ListJobsByCompany(ctx, companyID, sort, p)
	if err != nil {
		return db.Page[JobDetails]{}, err
	}
	return s.resolveJobPage(ctx, page)
}

func (s *Service) UpdateJobStatus(ctx context.Context, id string, status db.JobStatus) (db.Job, error) {
	return s.store.UpdateJobStatus(ctx, id, status)
}

func (s *Service) resolveJobPage(ctx context.Context, page db.Page[db.Job]) (db.Page[JobDetails], error) {
	details, err := s.ResolveJobs(ctx, page.Content)
	if err != nil {
		return db.Page[JobDetails]{}, err
	}
	return mapPage(page, details), nil
}
