// Package grpc exposes the user and task services over gRPC. The service
// is described by hand in desc.go and uses the JSON codec from package api.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"google.golang.org/grpc"
)

type userSvc interface {
	SignUp(ctx context.Context, username, password string) (*models.User, error)
	SignIn(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type taskSvc interface {
	GetTasks(ctx context.Context, filter models.TaskFilter, user *models.User) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id string, user *models.User) (*models.Task, error)
	CreateTask(ctx context.Context, title, description string, user *models.User) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, user *models.User) (*models.Task, error)
	DeleteTask(ctx context.Context, id string, user *models.User) error
}

type GRPCServer struct {
	address string
	users   userSvc
	tasks   taskSvc
	logger  logging.Logger
	metrics *metrics.Metrics
}

// NewGRPCServer builds the server. m may be nil when metrics are disabled.
func NewGRPCServer(a string, l logging.Logger, us userSvc, ts taskSvc, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		tasks:   ts,
		metrics: m,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	srv.RegisterService(&serviceDesc, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
