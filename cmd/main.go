package main

import (
	"context"
	"os"

	"github.com/aalug/go-gin-job-board/internal/api"
	"github.com/aalug/go-gin-job-board/internal/config"
	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/aalug/go-gin-job-board/internal/esearch"
	"github.com/aalug/go-gin-job-board/internal/service"
	"github.com/aalug/go-gin-job-board/internal/worker"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func main() {
	// === config, env file ===
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load env file")
	}

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := context.Background()

	// === database ===
	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the db")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("cannot disconnect from the db")
		}
	}()
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("cannot ping the db")
	}

	store := db.NewStore(mongoClient.Database(cfg.MongoDatabase))
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create indexes")
	}

	if cfg.LoadTestData {
		store.LoadTestData(ctx)
	}

	// === Elasticsearch ===
	esConn, err := esearch.ConnectWithElasticsearch(cfg.ElasticSearchAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the elasticsearch")
	}
	esClient := esearch.NewClient(esConn)

	svc := service.New(store)
	documents, err := esearch.LoadJobDocuments(ctx, svc)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load jobs from db")
	}
	indexed, err := esClient.IndexJobsAsDocuments(ctx, documents)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot index jobs as documents")
	}
	log.Info().Uint64("documents", indexed).Msg("jobs indexed")

	// === task queue ===
	redisOpt := asynq.RedisClientOpt{
		Addr: cfg.RedisAddress,
	}
	taskDistributor := worker.NewRedisTaskDistributor(redisOpt)
	go runTaskProcessor(redisOpt, svc, esClient)

	// === HTTP server ===
	server, err := api.NewServer(cfg, store, esClient, taskDistributor)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	log.Info().Str("address", cfg.ServerAddress).Msg("starting HTTP server")
	if err := server.Start(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("cannot start the server")
	}
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, svc *service.Service, client esearch.ESearchClient) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, svc, client)
	log.Info().Msg("starting task processor")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor")
	}
}
