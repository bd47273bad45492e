package service

import (
	"context"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
)

func (s *Service) SearchUsers(ctx context.Context, arg db.SearchUsersParams, sort db.Sort, p db.PageRequest) (db.Page[db.User], error) {
	return s.store.SearchUsers(ctx, arg, sort, p)
}

func (s *Service) SearchProfiles(ctx context.Context, keyword string, sort db.Sort, p db.PageRequest) (db.Page[db.JobSeekerProfile], error) {
	return s.store.SearchProfiles(ctx, keyword, sort, p)
}

func (s *Service) UpdateUserStatus(ctx context.Context, id string, status db.UserStatus) (db.User, error) {
	return s.store.UpdateUserStatus(ctx, id, status)
}
