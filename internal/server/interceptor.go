package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/renalbridge/docpipeline/internal/common"
)

// UnaryRequestID stamps every call with a request ID and logs its outcome.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := next(ctx, req)
		if err != nil {
			logger.Warn("grpc.request.failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err)
			return resp, err
		}
		logger.Info("grpc.request.ok",
			"method", info.FullMethod,
			"request_id", requestID,
			"elapsed_ms", time.Since(start).Milliseconds())
		return resp, err
	}
}
