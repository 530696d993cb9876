package client

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/api"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout()
	LoggedIn() bool
	Ping(ctx context.Context) error
	ListTasks(ctx context.Context, status, search string) ([]*api.Task, error)
	GetTask(ctx context.Context, id string) (*api.Task, error)
	CreateTask(ctx context.Context, title, description string) (*api.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) (*api.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
