package grpc

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/api"
	"google.golang.org/grpc"
)

// taskKeeperServer is the handler set registered for api.ServiceName.
type taskKeeperServer interface {
	SignUp(context.Context, *api.SignUpRequest) (*api.SignUpResponse, error)
	SignIn(context.Context, *api.SignInRequest) (*api.SignInResponse, error)
	Ping(context.Context, *api.PingRequest) (*api.PingResponse, error)
	GetTasks(context.Context, *api.GetTasksRequest) (*api.GetTasksResponse, error)
	GetTask(context.Context, *api.GetTaskRequest) (*api.GetTaskResponse, error)
	CreateTask(context.Context, *api.CreateTaskRequest) (*api.CreateTaskResponse, error)
	UpdateTaskStatus(context.Context, *api.UpdateTaskStatusRequest) (*api.UpdateTaskStatusResponse, error)
	DeleteTask(context.Context, *api.DeleteTaskRequest) (*api.DeleteTaskResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: api.ServiceName,
	HandlerType: (*taskKeeperServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("SignUp", taskKeeperServer.SignUp),
		unary("SignIn", taskKeeperServer.SignIn),
		unary("Ping", taskKeeperServer.Ping),
		unary("GetTasks", taskKeeperServer.GetTasks),
		unary("GetTask", taskKeeperServer.GetTask),
		unary("CreateTask", taskKeeperServer.CreateTask),
		unary("UpdateTaskStatus", taskKeeperServer.UpdateTaskStatus),
		unary("DeleteTask", taskKeeperServer.DeleteTask),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "taskkeeper.json",
}

// unary builds the method handler the way generated code does: decode the
// request, then call through the interceptor chain when there is one.
func unary[Req, Resp any](name string, call func(taskKeeperServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + api.ServiceName + "/" + name

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(taskKeeperServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
