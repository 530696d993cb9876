package grpc

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/api"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) SignUp(ctx context.Context, req *api.SignUpRequest) (*api.SignUpResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}

	user, err := s.users.SignUp(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, api.MethodSignUp, err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName, "user_id", user.ID)
	return &api.SignUpResponse{ID: user.ID, Username: user.UserName}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *api.SignInRequest) (*api.SignInResponse, error) {
	token, err := s.users.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, api.MethodSignIn, err)
	}
	return &api.SignInResponse{AccessToken: token}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) GetTasks(ctx context.Context, req *api.GetTasksRequest) (*api.GetTasksResponse, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	filter := models.TaskFilter{Status: models.TaskStatus(req.Status), Search: req.Search}
	tasks, err := s.tasks.GetTasks(ctx, filter, user)
	if err != nil {
		return nil, s.toStatus(ctx, api.MethodGetTasks, err)
	}

	resp := &api.GetTasksResponse{Tasks: make([]*api.Task, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toAPITask(t))
	}
	return resp, nil
}

func (s *GRPCServer) GetTask(ctx context.Context, req *api.GetTaskRequest) (*api.GetTaskResponse, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.GetTaskByID(ctx, req.ID, user)
	if err != nil {
		return nil, s.toStatus(ctx, api.MethodGetTask, err)
	}
	return &api.GetTaskResponse{Task: toAPITask(task)}, nil
}

func (s *GRPCServer) CreateTask(ctx context.Context, req *api.CreateTaskRequest) (*api.CreateTaskResponse, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.CreateTask(ctx, req.Title, req.Description, user)
	if err != nil {
		return nil, s.toStatus(ctx, api.MethodCreateTask, err)
	}

	s.logger.Debug(ctx, "Task created", "task_id", task.ID, "user_id", user.ID)
	return &api.CreateTaskResponse{Task: toAPITask(task)}, nil
}

func (s *GRPCServer) UpdateTaskStatus(ctx context.Context, req *api.UpdateTaskStatusRequest) (*api.UpdateTaskStatusResponse, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.UpdateTaskStatus(ctx, req.ID, models.TaskStatus(req.Status), user)
	if err != nil {
		return nil, s.toStatus(ctx, api.MethodUpdateTaskStatus, err)
	}
	return &api.UpdateTaskStatusResponse{Task: toAPITask(task)}, nil
}

func (s *GRPCServer) DeleteTask(ctx context.Context, req *api.DeleteTaskRequest) (*api.DeleteTaskResponse, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.DeleteTask(ctx, req.ID, user); err != nil {
		return nil, s.toStatus(ctx, api.MethodDeleteTask, err)
	}

	s.logger.Debug(ctx, "Task deleted", "task_id", req.ID, "user_id", user.ID)
	return &api.DeleteTaskResponse{}, nil
}

func requireUser(ctx context.Context) (*models.User, error) {
	user, ok := userFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return user, nil
}

func toAPITask(t *models.Task) *api.Task {
	return &api.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}
