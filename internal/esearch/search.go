package esearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/elastic/go-elasticsearch/v8"
)

type ESearchClient interface {
	IndexJobsAsDocuments(ctx context.Context, jobs []JobDocument) (uint64, error)
	IndexJobAsDocument(ctx context.Context, job JobDocument) error
	DeleteJobDocument(ctx context.Context, jobID string) error
	SearchJobs(ctx context.Context, query string, p db.PageRequest) (db.Page[JobDocument], error)
}

type ESClient struct {
	client *elasticsearch.Client
}

func NewClient(client *elasticsearch.Client) ESearchClient {
	return &ESClient{
		client: client,
	}
}

// maxResultWindow is the default index.max_result_window; from+size
// above it is rejected by elasticsearch
const maxResultWindow = 10000

// searchWindow maps a page onto from and size. A page that does not fit in
// the result window asks for no hits, so only the total is returned.
func searchWindow(p db.PageRequest) (from, size int) {
	if p.Size < 1 || p.Page >= maxResultWindow/p.Size {
		return 0, 0
	}
	return p.Page * p.Size, p.Size
}

// buildSearchQuery matches query fuzzily against the title and the other
// text fields of open jobs
func buildSearchQuery(query string, p db.PageRequest) map[string]interface{} {
	from, size := searchWindow(p)
	return map[string]interface{}{
		"from": from,
		"size": size,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []interface{}{
					map[string]interface{}{
						"term": map[string]interface{}{
							"status.keyword": db.JobStatusOpen,
						},
					},
				},
				"should": []interface{}{
					map[string]interface{}{
						"match": map[string]interface{}{
							"title": map[string]interface{}{
								"query":     query,
								"fuzziness": "AUTO",
								"boost":     2,
							},
						},
					},
					map[string]interface{}{
						"multi_match": map[string]interface{}{
							"query": query,
							"fields": []string{
								"description",
								"company_name",
								"city",
								"category",
								"tags",
							},
							"fuzziness": "AUTO",
						},
					},
				},
				"minimum_should_match": 1,
			},
		},
	}
}

// SearchJobs runs a full-text search over the indexed jobs
func (client *ESClient) SearchJobs(ctx context.Context, query string, p db.PageRequest) (db.Page[JobDocument], error) {
	if p.Page < 0 || p.Size < 1 || p.Size > db.MaxPageSize {
		return db.Page[JobDocument]{}, fmt.Errorf("%w: page %d of size %d", db.ErrInvalidCriteria, p.Page, p.Size)
	}

	var searchBuffer bytes.Buffer
	if err := json.NewEncoder(&searchBuffer).Encode(buildSearchQuery(query, p)); err != nil {
		return db.Page[JobDocument]{}, err
	}

	response, err := client.client.Search(
		client.client.Search.WithContext(ctx),
		client.client.Search.WithIndex(jobsIndex),
		client.client.Search.WithBody(&searchBuffer),
		client.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return db.Page[JobDocument]{}, err
	}
	defer response.Body.Close()

	if response.IsError() {
		return db.Page[JobDocument]{}, fmt.Errorf("search jobs: %s", response.String())
	}

	var searchResponse SearchResponse
	if err := json.NewDecoder(response.Body).Decode(&searchResponse); err != nil {
		return db.Page[JobDocument]{}, err
	}

	jobs := make([]JobDocument, 0, len(searchResponse.Hits.Hits))
	for _, hit := range searchResponse.Hits.Hits {
		if hit.Source != nil {
			jobs = append(jobs, *hit.Source)
		}
	}

	total := searchResponse.Hits.Total.Value
	return db.Page[JobDocument]{
		Content:       jobs,
		TotalElements: total,
		PageIndex:     p.Page,
		PageSize:      p.Size,
		TotalPages:    int((total + int64(p.Size) - 1) / int64(p.Size)),
	}, nil
}
