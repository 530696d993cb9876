package services

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// memUsers behaves like the users table: the username is unique and the
// check-and-insert is atomic.
type memUsers struct {
	mu     sync.Mutex
	byName map[string]*models.User
	nextID int

	createErr error
	getErr    error
}

func newMemUsers() *memUsers {
	return &memUsers{byName: map[string]*models.User{}}
}

func (r *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byName[u.UserName]; ok {
		return nil, common.ErrDuplicateUsername
	}
	r.nextID++
	u.ID = "u-" + strconv.Itoa(r.nextID)
	stored := *u
	r.byName[u.UserName] = &stored
	return u, nil
}

func (r *memUsers) GetUserByLogin(_ context.Context, name string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, u := range r.byName {
		if u.ID == id {
			delete(r.byName, name)
			return nil
		}
	}
	return common.ErrorNotFound
}

// memTasks is an owner-scoped task store.
type memTasks struct {
	mu    sync.Mutex
	byID  map[string]*models.Task
	order []string

	err       error
	updateErr error
}

func newMemTasks() *memTasks {
	return &memTasks{byID: map[string]*models.Task{}}
}

func (r *memTasks) Create(_ context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	cp := *task
	r.byID[task.ID] = &cp
	r.order = append(r.order, task.ID)
	return task, nil
}

func (r *memTasks) Find(_ context.Context, userID string, f models.TaskFilter) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.Task
	for _, id := range r.order {
		task, ok := r.byID[id]
		if !ok || task.UserID != userID {
			continue
		}
		if f.Status != "" && task.Status != f.Status {
			continue
		}
		if f.Search != "" {
			s := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(task.Title), s) && !strings.Contains(strings.ToLower(task.Description), s) {
				continue
			}
		}
		cp := *task
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memTasks) Get(_ context.Context, id, userID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	task, ok := r.byID[id]
	if !ok || task.UserID != userID {
		return nil, common.ErrorNotFound
	}
	cp := *task
	return &cp, nil
}

func (r *memTasks) UpdateStatus(_ context.Context, id, userID string, status models.TaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	task, ok := r.byID[id]
	if !ok || task.UserID != userID {
		return common.ErrorNotFound
	}
	task.Status = status
	return nil
}

func (r *memTasks) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	task, ok := r.byID[id]
	if !ok || task.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeRepoManager struct {
	users *memUsers
	tasks *memTasks
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{users: newMemUsers(), tasks: newMemTasks()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.users }
func (m *fakeRepoManager) Tasks(dbx.DBTX) tasks.Repository             { return m.tasks }
