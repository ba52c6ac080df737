// Command docpipe-batch runs the document pipeline from the command line,
// either backfilling a local directory into the documents bucket or
// re-driving an existing bucket prefix.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/renalbridge/docpipeline/constants"
	"github.com/renalbridge/docpipeline/internal/async"
	"github.com/renalbridge/docpipeline/internal/common"
	"github.com/renalbridge/docpipeline/internal/export"
	"github.com/renalbridge/docpipeline/internal/extraction"
	"github.com/renalbridge/docpipeline/internal/ingest"
	"github.com/renalbridge/docpipeline/internal/metadata"
	"github.com/renalbridge/docpipeline/internal/pipeline"
	repo "github.com/renalbridge/docpipeline/internal/repository"
	"github.com/renalbridge/docpipeline/internal/storage"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		bucket  = flag.String("bucket", "", "documents bucket (required)")
		dir     = flag.String("dir", "", "local directory to upload and process")
		patient = flag.String("patient", "", "patient ID for uploaded documents (required with --dir)")
		docType = flag.String("type", string(constants.CurrentLabs), "document type for uploaded documents")
		prefix  = flag.String("prefix", "", "bucket prefix to re-drive the pipeline over")
		out     = flag.String("out", "", "output XLSX file path (optional)")
		workers = flag.Int("workers", 4, "concurrent pipeline workers")
	)
	flag.Parse()

	// Validate required flags
	if *bucket == "" {
		printError("Error: --bucket is required\n")
		os.Exit(1)
	}
	if (*dir == "") == (*prefix == "") {
		printError("Error: exactly one of --dir or --prefix is required\n")
		os.Exit(1)
	}
	if *dir != "" && *patient == "" {
		printError("Error: --patient is required with --dir\n")
		os.Exit(1)
	}
	canonicalType, ok := constants.CanonicalizeDocumentType(*docType)
	if !ok {
		printError("Error: unknown --type %q, expected one of %v\n", *docType, constants.DocumentTypeStrings())
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Load configuration for extraction thresholds and the database
	cfg := common.LoadConfig()
	if !*inmem && cfg.Database.DSN == "" {
		printError("Error: DB_URL is required unless --inmem is set\n")
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Error("failed to load AWS configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database (in-memory SQLite for dry runs)
	entc, pool, err := repo.InitDatabase(ctx, cfg.Database, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// Wire repositories
	docsRepo := repo.NewPatientDocumentRepository(entc, logger)
	stagingRepo := repo.NewStagingRepository(entc, logger)

	// Wire the pipeline the same way the event handler does
	queries, err := extraction.LoadFieldQueries()
	if err != nil {
		logger.Error("failed to load field queries", "error", err)
		os.Exit(1)
	}
	store := storage.NewS3Store(awsCfg, logger)
	extractor := extraction.NewTextractClient(awsCfg, cfg.Extraction.RequestTimeout, logger)
	processor := pipeline.NewProcessor(
		metadata.NewResolver(store, logger),
		store,
		extractor,
		docsRepo,
		stagingRepo,
		queries,
		cfg.Extraction,
		logger,
	)

	// Collect the object keys to run through the pipeline
	var keys []string
	uploaded := 0
	deduplicated := 0

	if *dir != "" {
		backfiller := ingest.NewS3Backfiller(store, docsRepo, logger)
		logger.Info("starting backfill", "dir", *dir, "patient_id", *patient, "document_type", canonicalType)
		results, stats, err := backfiller.UploadDirectory(ctx, *patient, string(canonicalType), *bucket, *dir, true)
		if err != nil {
			logger.Error("failed to backfill directory", "error", err)
			os.Exit(1)
		}
		for _, r := range results {
			if r.Err != "" {
				continue
			}
			keys = append(keys, r.StorageKey)
			uploaded++
			if r.Deduplicated {
				deduplicated++
			}
		}
		logger.Info("backfill complete",
			"scanned", stats.Scanned,
			"matched", stats.Matched,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
			"deduplicated", stats.Deduplicated)
	} else {
		logger.Info("listing objects", "bucket", *bucket, "prefix", *prefix)
		keys, err = store.ListKeys(ctx, *bucket, *prefix)
		if err != nil {
			logger.Error("failed to list bucket prefix", "error", err)
			os.Exit(1)
		}
		logger.Info("listing complete", "objects", len(keys))
	}

	// Fan out to pipeline workers and wait for the queue to drain
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(*workers),
		async.WithProcessTimeout(cfg.Pipeline.RecordTimeout),
	)
	for _, key := range keys {
		job := async.Job{
			Object: ingest.ObjectCreated{
				Bucket:    *bucket,
				Key:       key,
				EventTime: time.Now().UTC(),
			},
			SubmittedAt: time.Now(),
		}
		if err := queue.Enqueue(ctx, job); err != nil {
			logger.Error("failed to enqueue object", "key", key, "error", err)
		}
	}
	queue.Shutdown(ctx)
	stats := queue.Snapshot()

	logger.Info("pipeline run complete",
		"objects", len(keys),
		"staged", stats.Staged,
		"duplicates", stats.Duplicates,
		"degraded", stats.Degraded,
		"failed", stats.Failed)

	// Export to XLSX
	if *out != "" {
		logger.Info("exporting to XLSX", "output", *out)
		exportService := export.NewService(stagingRepo, docsRepo, logger)

		xlsxBytes, err := exportService.ExportStagingXLSX(ctx, repo.StagingFilter{PatientID: *patient})
		if err != nil {
			logger.Error("failed to export staging records", "error", err)
			os.Exit(1)
		}

		err = os.WriteFile(*out, xlsxBytes, 0644)
		if err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Pipeline run complete!\n")
	fmt.Printf("- Objects submitted: %d\n", len(keys))
	if *dir != "" {
		fmt.Printf("- Uploaded: %d (deduplicated: %d)\n", uploaded, deduplicated)
	}
	fmt.Printf("- Staged: %d\n", stats.Staged)
	fmt.Printf("- Duplicates: %d\n", stats.Duplicates)
	fmt.Printf("- Degraded: %d\n", stats.Degraded)
	fmt.Printf("- Failures: %d\n", stats.Failed)
	if *out != "" {
		fmt.Printf("- Output: %s\n", *out)
	}
}
