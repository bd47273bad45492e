package service

import (
	"context"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
)

// ListApplicationsForJobSeeker pages the applications of a job seeker with
// the jobs and companies they were sent to
func (s *Service) ListApplicationsForJobSeeker(ctx context.Context, jobSeekerID string, status *db.ApplicationStatus, sort db.Sort, p db.PageRequest) (db.Page[ApplicationDetails], error) {
	page, err := s.store.ListApplicationsByJobSeeker(ctx, jobSeekerID, status, sort, p)
	if err != nil {
		return db.Page[ApplicationDetails]{}, err
	}

	details, err := s.ResolveApplications(ctx, page.Content)
	if err != nil {
		return db.Page[ApplicationDetails]{}, err
	}
	return mapPage(page, details), nil
}

// ListApplicantsForJob pages the applications sent to a job with the
// users who sent them
func (s *Service) ListApplicantsForJob(ctx context.Context, jobID string, status *db.ApplicationStatus, sort db.Sort, p db.PageRequest) (db.Page[ApplicantDetails], error) {
	page, err := s.store.ListApplicationsByJob(ctx, jobID, status, sort, p)
	if err != nil {
		return db.Page[ApplicantDetails]{}, err
	}

	details, err := s.ResolveApplicants(ctx, page.Content)
	if err != nil {
		return db.Page[ApplicantDetails]{}, err
	}
	return mapPage(page, details), nil
}

func (s *Service) GetApplicationStats(ctx context.Context, jobSeekerID string) (db.ApplicationStats, error) {
	return s.store.GetApplicationStats(ctx, jobSeekerID)
}

// GetSystemStats counts the users, jobs and companies of the board
func (s *Service) GetSystemStats(ctx context.Context) (db.SystemStats, error) {
	return s.store.GetSystemStats(ctx)
}

func (s *Service) UpdateApplicationStatus(ctx context.Context, id string, status db.ApplicationStatus) (db.Application, error) {
	return s.store.UpdateApplicationStatus(ctx, id, status)
}
