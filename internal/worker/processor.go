package worker

import (
	"context"

	"github.com/aalug/go-gin-job-board/internal/esearch"
	"github.com/aalug/go-gin-job-board/internal/service"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type TaskProcessor interface {
	Start() error
	Shutdown()
	ProcessTaskIndexJob(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server   *asynq.Server
	service  *service.Service
	esClient esearch.ESearchClient
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, svc *service.Service, esClient esearch.ESearchClient) TaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(
				func(ctx context.Context, task *asynq.Task, err error) {
					log.Error().Err(err).Str("type", task.Type()).
						Bytes("payload", task.Payload()).
						Msg("process task failed")
				}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server:   server,
		service:  svc,
		esClient: esClient,
	}
}

// Start starts the processor
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskIndexJob, processor.ProcessTaskIndexJob)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
