package models

import "time"

// TaskStatus is the closed set of task states.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task belongs to exactly one user; UserID is set at creation and never changes.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
}

// TaskFilter narrows a task listing. Zero values mean "no restriction".
// Search matches title or description, case-insensitively.
type TaskFilter struct {
	Status TaskStatus
	Search string
}
