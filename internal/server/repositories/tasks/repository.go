package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository stores tasks. Every method takes the owner's user ID and never
// reads or touches rows that belong to someone else; a task owned by another
// user is reported as common.ErrorNotFound, exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Find(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error)
	Get(ctx context.Context, id, userID string) (*models.Task, error)
	UpdateStatus(ctx context.Context, id, userID string, status models.TaskStatus) error
	Delete(ctx context.Context, id, userID string) error
}
