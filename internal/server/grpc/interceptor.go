package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/taskkeeper/internal/api"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userKey ctxKey = "user"

// publicMethods may be called without an access token.
var publicMethods = map[string]bool{
	api.MethodSignUp: true,
	api.MethodSignIn: true,
	api.MethodPing:   true,
}

func withUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// userFromContext returns the account resolved by accessTokenInterceptor.
func userFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		s.metrics.AuthFailure(metrics.ReasonMissingToken)
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	user, err := s.users.Authenticate(ctx, accessToken)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidToken):
			s.metrics.AuthFailure(metrics.ReasonInvalidToken)
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		case errors.Is(err, common.ErrorUnauthorized):
			s.metrics.AuthFailure(metrics.ReasonUnknownUser)
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, "identity resolution failed", "method", info.FullMethod, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return handler(withUser(ctx, user), req)
}
