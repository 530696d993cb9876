package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "taskkeeper.TaskKeeper"

// Full method paths.
const (
	MethodSignUp           = "/" + ServiceName + "/SignUp"
	MethodSignIn           = "/" + ServiceName + "/SignIn"
	MethodPing             = "/" + ServiceName + "/Ping"
	MethodGetTasks         = "/" + ServiceName + "/GetTasks"
	MethodGetTask          = "/" + ServiceName + "/GetTask"
	MethodCreateTask       = "/" + ServiceName + "/CreateTask"
	MethodUpdateTaskStatus = "/" + ServiceName + "/UpdateTaskStatus"
	MethodDeleteTask       = "/" + ServiceName + "/DeleteTask"
)

// TaskKeeperClient is the client API for the TaskKeeper service.
type TaskKeeperClient interface {
	SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*SignUpResponse, error)
	SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	GetTasks(ctx context.Context, in *GetTasksRequest, opts ...grpc.CallOption) (*GetTasksResponse, error)
	GetTask(ctx context.Context, in *GetTaskRequest, opts ...grpc.CallOption) (*GetTaskResponse, error)
	CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error)
	UpdateTaskStatus(ctx context.Context, in *UpdateTaskStatusRequest, opts ...grpc.CallOption) (*UpdateTaskStatusResponse, error)
	DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error)
}

type taskKeeperClient struct {
	cc grpc.ClientConnInterface
}

// NewTaskKeeperClient returns a client that sends every call with the JSON
// codec.
func NewTaskKeeperClient(cc grpc.ClientConnInterface) TaskKeeperClient {
	return &taskKeeperClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskKeeperClient) SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*SignUpResponse, error) {
	return invoke[SignUpResponse](ctx, c.cc, MethodSignUp, in, opts)
}

func (c *taskKeeperClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error) {
	return invoke[SignInResponse](ctx, c.cc, MethodSignIn, in, opts)
}

func (c *taskKeeperClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *taskKeeperClient) GetTasks(ctx context.Context, in *GetTasksRequest, opts ...grpc.CallOption) (*GetTasksResponse, error) {
	return invoke[GetTasksResponse](ctx, c.cc, MethodGetTasks, in, opts)
}

func (c *taskKeeperClient) GetTask(ctx context.Context, in *GetTaskRequest, opts ...grpc.CallOption) (*GetTaskResponse, error) {
	return invoke[GetTaskResponse](ctx, c.cc, MethodGetTask, in, opts)
}

func (c *taskKeeperClient) CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error) {
	return invoke[CreateTaskResponse](ctx, c.cc, MethodCreateTask, in, opts)
}

func (c *taskKeeperClient) UpdateTaskStatus(ctx context.Context, in *UpdateTaskStatusRequest, opts ...grpc.CallOption) (*UpdateTaskStatusResponse, error) {
	return invoke[UpdateTaskStatusResponse](ctx, c.cc, MethodUpdateTaskStatus, in, opts)
}

func (c *taskKeeperClient) DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error) {
	return invoke[DeleteTaskResponse](ctx, c.cc, MethodDeleteTask, in, opts)
}
