package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// loggingInterceptor logs one line per call with a random request id, the
// method, the resulting status code and the duration, and records the same
// in the request metrics. Request bodies are never logged since they carry
// passwords.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	requestID, err := common.MakeRandHexString(8)
	if err != nil {
		requestID = "unknown"
	}

	resp, err := handler(ctx, req)

	code := status.Code(err).String()
	elapsed := time.Since(start)
	s.metrics.ObserveRequest(info.FullMethod, code, elapsed)
	s.logger.Info(ctx, "request",
		"request_id", requestID,
		"method", info.FullMethod,
		"code", code,
		"duration", elapsed,
	)
	return resp, err
}
