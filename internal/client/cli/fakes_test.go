package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/api"
	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
)

type fakeClient struct {
	token  string
	closed bool

	registered map[string]string
	tasks      []*api.Task
	err        error

	lastStatus, lastSearch string
	lastID                 string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Register(_ context.Context, username, password string) error {
	if f.err != nil {
		return f.err
	}
	if f.registered == nil {
		f.registered = map[string]string{}
	}
	if _, ok := f.registered[username]; ok {
		return client.ErrAlreadyExists
	}
	f.registered[username] = password
	return nil
}

func (f *fakeClient) Login(_ context.Context, username, password string) error {
	if f.err != nil {
		return f.err
	}
	if pw, ok := f.registered[username]; !ok || pw != password {
		return client.ErrUnauthorized
	}
	f.token = "tok-" + username
	return nil
}

func (f *fakeClient) Logout()        { f.token = "" }
func (f *fakeClient) LoggedIn() bool { return f.token != "" }

func (f *fakeClient) Ping(context.Context) error { return f.err }

func (f *fakeClient) ListTasks(_ context.Context, status, search string) ([]*api.Task, error) {
	f.lastStatus, f.lastSearch = status, search
	if f.err != nil {
		return nil, f.err
	}
	return f.tasks, nil
}

func (f *fakeClient) find(id string) (*api.Task, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeClient) GetTask(_ context.Context, id string) (*api.Task, error) {
	return f.find(id)
}

func (f *fakeClient) CreateTask(_ context.Context, title, description string) (*api.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	t := &api.Task{ID: "t" + string(rune('1'+len(f.tasks))), Title: title, Description: description, Status: "OPEN"}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeClient) UpdateTaskStatus(_ context.Context, id, status string) (*api.Task, error) {
	t, err := f.find(id)
	if err != nil {
		return nil, err
	}
	t.Status = status
	return t, nil
}

func (f *fakeClient) DeleteTask(_ context.Context, id string) error {
	if _, err := f.find(id); err != nil {
		return err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// stubPassword makes GetPassword return pw without touching the terminal.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = old })
}

func newTestApp(f *fakeClient, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.Config{ServerEndpointAddr: "test", RequestTimeout: time.Second}
	return newApp(cfg, f, strings.NewReader(input), out), out
}
