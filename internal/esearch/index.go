package esearch

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/rs/zerolog/log"
)

// IndexJobsAsDocuments indexes jobs in bulk and returns how many were
// indexed. Documents are keyed by job ID so indexing a job again
// replaces its document.
func (client *ESClient) IndexJobsAsDocuments(ctx context.Context, jobs []JobDocument) (uint64, error) {
	bulkIndexer, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:      jobsIndex,
		Client:     client.client,
		NumWorkers: 5,
	})
	if err != nil {
		return 0, fmt.Errorf("cannot create bulk indexer: %w", err)
	}

	for _, document := range jobs {
		body, err := readerToReadSeeker(esutil.NewJSONReader(document))
		if err != nil {
			return 0, err
		}
		err = bulkIndexer.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: document.ID,
				Body:       body,
				OnFailure: func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					log.Error().Err(err).
						Str("document_id", item.DocumentID).
						Int("status", res.Status).
						Str("reason", res.Error.Reason).
						Msg("cannot index job document")
				},
			},
		)
		if err != nil {
			return 0, fmt.Errorf("cannot add job %s to bulk: %w", document.ID, err)
		}
	}

	if err := bulkIndexer.Close(ctx); err != nil {
		return 0, fmt.Errorf("cannot flush bulk indexer: %w", err)
	}

	stats := bulkIndexer.Stats()
	log.Info().Uint64("indexed", stats.NumIndexed).Uint64("failed", stats.NumFailed).Msg("jobs indexed on Elasticsearch")
	return stats.NumIndexed, nil
}

// IndexJobAsDocument indexes one job, replacing its previous document
func (client *ESClient) IndexJobAsDocument(ctx context.Context, job JobDocument) error {
	res, err := client.client.Index(
		jobsIndex,
		esutil.NewJSONReader(job),
		client.client.Index.WithContext(ctx),
		client.client.Index.WithDocumentID(job.ID),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("cannot index job %s: %s", job.ID, res.String())
	}
	return nil
}

// DeleteJobDocument removes the document of a job. A job that was never
// indexed is not an error.
func (client *ESClient) DeleteJobDocument(ctx context.Context, jobID string) error {
	res, err := client.client.Delete(
		jobsIndex,
		jobID,
		client.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("cannot delete job %s: %s", jobID, res.String())
	}
	return nil
}

func readerToReadSeeker(reader io.Reader) (io.ReadSeeker, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
