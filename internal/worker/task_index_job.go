package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/aalug/go-gin-job-board/internal/esearch"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const TaskIndexJob = "task:index_job"

type PayloadIndexJob struct {
	JobID string `json:"job_id"`
}

// DistributeTaskIndexJob distributes the task of bringing the search
// document of a job in line with the job
func (distributor *RedisTaskDistributor) DistributeTaskIndexJob(
	ctx context.Context,
	payload *PayloadIndexJob,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskIndexJob, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("enqueued task")

	return nil
}

// ProcessTaskIndexJob indexes an open job and removes the document of a
// job that is no longer open or no longer exists
func (processor *RedisTaskProcessor) ProcessTaskIndexJob(ctx context.Context, task *asynq.Task) error {
	var payload PayloadIndexJob
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	job, err := processor.service.GetJob(ctx, payload.JobID)
	if errors.Is(err, db.ErrNotFound) {
		if err := processor.esClient.DeleteJobDocument(ctx, payload.JobID); err != nil {
			return fmt.Errorf("failed to delete job document: %w", err)
		}
		log.Info().Str("type", task.Type()).Str("job_id", payload.JobID).Msg("job not found, document removed")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get job: %w", err)
	}

	if job.Status != db.JobStatusOpen {
		if err := processor.esClient.DeleteJobDocument(ctx, job.ID); err != nil {
			return fmt.Errorf("failed to delete job document: %w", err)
		}
	} else {
		if err := processor.esClient.IndexJobAsDocument(ctx, esearch.NewJobDocument(job)); err != nil {
			return fmt.Errorf("failed to index job document: %w", err)
		}
	}

	log.Info().Str("type", task.Type()).Str("job_id", job.ID).
		Str("status", string(job.Status)).Msg("processed task")

	return nil
}
