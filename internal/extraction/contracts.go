// Package extraction calls the document-query extraction service and turns
// its block-graph responses into reviewable field values.
package extraction

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// QueryExtractor is the external service boundary: document bytes plus the
// configured queries in, the service's flat block list out.
type QueryExtractor interface {
	AnalyzeDocument(ctx context.Context, doc []byte, queries []FieldQuery) ([]types.Block, error)
}
