// Package tasks provides the PostgreSQL-backed, owner-scoped task store.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (id, user_id, title, description, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, string(task.Status)).Scan(&task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Find lists the user's tasks, oldest first. A non-empty filter.Status must
// match exactly; filter.Search is a case-insensitive substring of the title
// or the description.
func (r *PostgresRepository) Find(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, title, description, status, created_at FROM tasks WHERE user_id = $1`)
	args := []any{userID}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		sb.WriteString(` AND status = $` + strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := strconv.Itoa(len(args))
		sb.WriteString(` AND (title ILIKE $` + n + ` OR description ILIKE $` + n + `)`)
	}
	sb.WriteString(` ORDER BY created_at, id`)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.Task, error) {
	query :=
		`SELECT id, user_id, title, description, status, created_at FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, userID string, status models.TaskStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = $1 WHERE id = $2 AND user_id = $3`, string(status), id, userID)
	return expectOneRow(res, err)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	return expectOneRow(res, err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*models.Task, error) {
	var (
		task   models.Task
		status string
	)
	if err := s.Scan(&task.ID, &task.UserID, &task.Title, &task.Description, &status, &task.CreatedAt); err != nil {
		return nil, err
	}
	task.Status = models.TaskStatus(status)
	return &task, nil
}

func expectOneRow(res sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
