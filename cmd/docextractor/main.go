// Command docextractor is the queue-driven entrypoint of the document
// staging pipeline. It consumes storage notifications, extracts lab fields
// where eligible, and stages every upload for review.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/renalbridge/docpipeline/internal/common"
	"github.com/renalbridge/docpipeline/internal/extraction"
	"github.com/renalbridge/docpipeline/internal/ingest"
	"github.com/renalbridge/docpipeline/internal/metadata"
	"github.com/renalbridge/docpipeline/internal/pipeline"
	repo "github.com/renalbridge/docpipeline/internal/repository"
	"github.com/renalbridge/docpipeline/internal/storage"
)

type handler struct {
	batch  *pipeline.Batch
	logger *slog.Logger
}

// handle turns one queue poll into staged rows and a partial-batch retry
// list. Only failures that can plausibly succeed on redelivery go back.
func (h *handler) handle(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	var records []ingest.ObjectCreated
	for _, msg := range event.Records {
		objs, err := ingest.DecodeSQSMessage(msg)
		if err != nil {
			// malformed bodies decode the same way every delivery
			h.logger.Error("notification.decode.failed", "message_id", msg.MessageId, "error", err)
			continue
		}
		records = append(records, objs...)
	}

	res := h.batch.ProcessRecords(ctx, records)

	seen := make(map[string]struct{}, len(res.Failures))
	var failures []events.SQSBatchItemFailure
	for _, f := range res.Failures {
		if !f.Retryable {
			continue
		}
		if _, dup := seen[f.MessageID]; dup {
			continue
		}
		seen[f.MessageID] = struct{}{}
		failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: f.MessageID})
	}
	return events.SQSEventResponse{BatchItemFailures: failures}, nil
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Error("failed to load AWS configuration", "error", err)
		os.Exit(1)
	}

	entc, pool, err := repo.InitDatabase(ctx, cfg.Database, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	queries, err := extraction.LoadFieldQueries()
	if err != nil {
		logger.Error("failed to load field query configuration", "error", err)
		os.Exit(1)
	}

	store := storage.NewS3Store(awsCfg, logger)
	processor := pipeline.NewProcessor(
		metadata.NewResolver(store, logger),
		store,
		extraction.NewTextractClient(awsCfg, cfg.Extraction.RequestTimeout, logger),
		repo.NewPatientDocumentRepository(entc, logger),
		repo.NewStagingRepository(entc, logger),
		queries,
		cfg.Extraction,
		logger,
	)

	h := &handler{
		batch:  pipeline.NewBatch(processor, cfg.Pipeline, logger),
		logger: logger,
	}

	logger.Info("docextractor ready", "queries", len(queries))
	lambda.Start(h.handle)
}
