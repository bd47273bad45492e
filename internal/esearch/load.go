package esearch

import (
	"context"
	"sync"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/aalug/go-gin-job-board/internal/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// JobSource lists resolved jobs page by page
type JobSource interface {
	SearchJobs(ctx context.Context, criteria db.JobSearchCriteria, sort db.Sort, p db.PageRequest) (db.Page[service.JobDetails], error)
}

// LoadJobDocuments reads every open job from source and turns it into a
// document. The first page tells how many pages there are, the rest are
// read concurrently.
func LoadJobDocuments(ctx context.Context, source JobSource) ([]JobDocument, error) {
	const (
		concurrency = 5
	)

	open := db.JobStatusOpen
	criteria := db.JobSearchCriteria{Status: &open}
	sort := db.Sort{Field: "created_at", Direction: db.SortAsc}

	first, err := source.SearchJobs(ctx, criteria, sort, db.PageRequest{Page: 0, Size: db.MaxPageSize})
	if err != nil {
		return nil, err
	}

	pages := make([][]service.JobDetails, max(first.TotalPages, 1))
	pages[0] = first.Content

	var (
		mutex     = &sync.Mutex{}
		workQueue = make(chan int)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(workQueue)
		for i := 1; i < len(pages); i++ {
			select {
			case workQueue <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for pageIndex := range workQueue {
				page, err := source.SearchJobs(gctx, criteria, sort, db.PageRequest{Page: pageIndex, Size: db.MaxPageSize})
				if err != nil {
					return err
				}
				mutex.Lock()
				pages[pageIndex] = page.Content
				mutex.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	documents := make([]JobDocument, 0, first.TotalElements)
	for _, page := range pages {
		for _, job := range page {
			documents = append(documents, NewJobDocument(job))
		}
	}

	log.Info().Int("jobs", len(documents)).Msg("jobs loaded from the database")
	return documents, nil
}
