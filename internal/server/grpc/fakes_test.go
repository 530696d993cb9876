package grpc

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type fakeUsers struct {
	signUpResp *models.User
	signUpErr  error

	token     string
	signInErr error

	// tokens maps an access token to the account it resolves to.
	tokens  map[string]*models.User
	authErr error

	lastUsername, lastPassword string
}

func (f *fakeUsers) SignUp(_ context.Context, username, password string) (*models.User, error) {
	f.lastUsername, f.lastPassword = username, password
	return f.signUpResp, f.signUpErr
}

func (f *fakeUsers) SignIn(_ context.Context, username, password string) (string, error) {
	f.lastUsername, f.lastPassword = username, password
	return f.token, f.signInErr
}

func (f *fakeUsers) Authenticate(_ context.Context, token string) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	if u, ok := f.tokens[token]; ok {
		return u, nil
	}
	return nil, common.ErrInvalidToken
}

type fakeTasks struct {
	tasks []*models.Task
	task  *models.Task
	err   error

	lastUser   *models.User
	lastFilter models.TaskFilter
	lastID     string
	lastStatus models.TaskStatus
	lastTitle  string
}

func (f *fakeTasks) GetTasks(_ context.Context, filter models.TaskFilter, user *models.User) ([]*models.Task, error) {
	f.lastFilter, f.lastUser = filter, user
	return f.tasks, f.err
}

func (f *fakeTasks) GetTaskByID(_ context.Context, id string, user *models.User) (*models.Task, error) {
	f.lastID, f.lastUser = id, user
	return f.task, f.err
}

func (f *fakeTasks) CreateTask(_ context.Context, title, _ string, user *models.User) (*models.Task, error) {
	f.lastTitle, f.lastUser = title, user
	return f.task, f.err
}

func (f *fakeTasks) UpdateTaskStatus(_ context.Context, id string, status models.TaskStatus, user *models.User) (*models.Task, error) {
	f.lastID, f.lastStatus, f.lastUser = id, status, user
	return f.task, f.err
}

func (f *fakeTasks) DeleteTask(_ context.Context, id string, user *models.User) error {
	f.lastID, f.lastUser = id, user
	return f.err
}

func newServer(u *fakeUsers, ts *fakeTasks) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, u, ts, nil)
}
