package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/api"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.TaskKeeperClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewTaskKeeperClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewTaskKeeperClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) error {
	_, err := s.client.SignUp(ctx, &api.SignUpRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

// Login signs in and keeps the returned access token for later calls.
func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	resp, err := s.client.SignIn(ctx, &api.SignInRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	s.accessToken = resp.AccessToken
	return nil
}

func (s *GRPCClient) Logout() {
	s.accessToken = ""
}

func (s *GRPCClient) LoggedIn() bool {
	return s.accessToken != ""
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListTasks(ctx context.Context, status, search string) ([]*api.Task, error) {
	resp, err := s.client.GetTasks(ctx, &api.GetTasksRequest{Status: status, Search: search})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Tasks, nil
}

func (s *GRPCClient) GetTask(ctx context.Context, id string) (*api.Task, error) {
	resp, err := s.client.GetTask(ctx, &api.GetTaskRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Task, nil
}

func (s *GRPCClient) CreateTask(ctx context.Context, title, description string) (*api.Task, error) {
	resp, err := s.client.CreateTask(ctx, &api.CreateTaskRequest{Title: title, Description: description})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Task, nil
}

func (s *GRPCClient) UpdateTaskStatus(ctx context.Context, id, status string) (*api.Task, error) {
	resp, err := s.client.UpdateTaskStatus(ctx, &api.UpdateTaskStatusRequest{ID: id, Status: status})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Task, nil
}

func (s *GRPCClient) DeleteTask(ctx context.Context, id string) error {
	_, err := s.client.DeleteTask(ctx, &api.DeleteTaskRequest{ID: id})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	}
	return fmt.Errorf("server error: %s", st.Message())
}
