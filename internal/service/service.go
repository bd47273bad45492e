package service

import (
	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
)

// Service composes store queries into the read models served by the API.
// It holds no state besides the store and is safe for concurrent use.
type Service struct {
	store db.Store
}

// New creates a new Service
func New(store db.Store) *Service {
	return &Service{store: store}
}

// mapPage returns a page with the same position and totals as p holding
// content instead
func mapPage[T, U any](p db.Page[T], content []U) db.Page[U] {
	if content == nil {
		content = []U{}
	}
	return db.Page[U]{
		Content:       content,
		TotalElements: p.TotalElements,
		PageIndex:     p.PageIndex,
		PageSize:      p.PageSize,
		TotalPages:    p.TotalPages,
	}
}
