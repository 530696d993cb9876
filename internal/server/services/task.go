package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TaskService runs task operations on behalf of a resolved account. The
// account always comes from the request identity, never from client input.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	newID       func() string
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m, newID: uuid.NewString}
}

func (s *TaskService) GetTasks(ctx context.Context, filter models.TaskFilter, user *models.User) ([]*models.Task, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, filter.Status)
	}
	filter.Search = strings.TrimSpace(filter.Search)

	tasks, err := s.repomanager.Tasks(s.db).Find(ctx, user.ID, filter)
	if err != nil {
		return nil, storageError(err)
	}
	return tasks, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id string, user *models.User) (*models.Task, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	task, err := s.repomanager.Tasks(s.db).Get(ctx, id, user.ID)
	if err != nil {
		return nil, storageError(err)
	}
	return task, nil
}

// CreateTask stores a new OPEN task owned by user.
func (s *TaskService) CreateTask(ctx context.Context, title, description string, user *models.User) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}

	task := &models.Task{
		ID:          s.newID(),
		UserID:      user.ID,
		Title:       title,
		Description: description,
		Status:      models.TaskStatusOpen,
	}

	created, err := s.repomanager.Tasks(s.db).Create(ctx, task)
	if err != nil {
		return nil, storageError(err)
	}
	return created, nil
}

// UpdateTaskStatus loads the user's task and saves it with the new status
// in one transaction.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, user *models.User) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, status)
	}
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	var task *models.Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		var err error
		task, err = repo.Get(ctx, id, user.ID)
		if err != nil {
			return err
		}
		if err := repo.UpdateStatus(ctx, id, user.ID, status); err != nil {
			return err
		}
		task.Status = status
		return nil
	})
	if err != nil {
		return nil, storageError(err)
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string, user *models.User) error {
	if !validID(id) {
		return common.ErrorNotFound
	}
	if err := s.repomanager.Tasks(s.db).Delete(ctx, id, user.ID); err != nil {
		return storageError(err)
	}
	return nil
}

// validID rejects ids that could never match a row, so they surface as
// not found instead of as a database type error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func storageError(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
}
