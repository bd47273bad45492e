package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/errgroup"
)

// GetSystemStats counts the users, jobs and companies of the board
func (store *MongoStore) GetSystemStats(ctx context.Context) (SystemStats, error) {
	defer observe("get_system_stats", time.Now())

	var stats SystemStats
	counts := []struct {
		collection *mongo.Collection
		dst        *int64
	}{
		{store.users, &stats.Users},
		{store.jobs, &stats.Jobs},
		{store.companies, &stats.Companies},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		c := c
		g.Go(func() error {
			n, err := c.collection.CountDocuments(gctx, bson.D{})
			if err != nil {
				return fmt.Errorf("count %s: %w", c.collection.Name(), err)
			}
			*c.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SystemStats{}, err
	}
	return stats, nil
}
