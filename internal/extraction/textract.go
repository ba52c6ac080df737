package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// TextractClient is the QueryExtractor backed by the managed document
// analysis service.
type TextractClient struct {
	client  *textract.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewTextractClient wraps an SDK client. timeout caps a single analyze
// call; zero means the caller's context rules alone.
func NewTextractClient(cfg aws.Config, timeout time.Duration, logger *slog.Logger) *TextractClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextractClient{
		client:  textract.NewFromConfig(cfg),
		timeout: timeout,
		logger:  logger,
	}
}

// AnalyzeDocument submits one synchronous queries analysis and returns the
// raw block list. Failures here are non-fatal upstream: the pipeline stages
// the document with the error text instead of dropping it.
func (c *TextractClient) AnalyzeDocument(ctx context.Context, doc []byte, queries []FieldQuery) ([]types.Block, error) {
	if len(queries) == 0 {
		return nil, fmt.Errorf("no field queries configured")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	qs := make([]types.Query, 0, len(queries))
	for _, q := range queries {
		qs = append(qs, types.Query{
			Text:  aws.String(q.Query),
			Alias: aws.String(q.Alias),
		})
	}

	start := time.Now()
	c.logger.Debug("extract.analyze.start", "doc_bytes", len(doc), "queries", len(qs))

	out, err := c.client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document:      &types.Document{Bytes: doc},
		FeatureTypes:  []types.FeatureType{types.FeatureTypeQueries},
		QueriesConfig: &types.QueriesConfig{Queries: qs},
	})
	if err != nil {
		return nil, fmt.Errorf("analyze document: %w", err)
	}

	c.logger.Info("extract.analyze.ok",
		"blocks", len(out.Blocks),
		"elapsed_ms", time.Since(start).Milliseconds())
	return out.Blocks, nil
}
