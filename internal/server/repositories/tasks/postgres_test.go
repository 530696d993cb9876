package tasks

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectColumns = `SELECT id, user_id, title, description, status, created_at FROM tasks`

var taskColumns = []string{"id", "user_id", "title", "description", "status", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresRepository(db), mock
}

func q(s string) string { return "^" + regexp.QuoteMeta(s) + "$" }

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+tasks\s*\(id,\s*user_id,\s*title,\s*description,\s*status\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+created_at$`).
		WithArgs("t-1", "u-1", "Clean room", "before Friday", "OPEN").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	task := &models.Task{ID: "t-1", UserID: "u-1", Title: "Clean room", Description: "before Friday", Status: models.TaskStatusOpen}
	got, err := repo.Create(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+tasks`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Task{ID: "t-1", UserID: "u-1", Status: models.TaskStatusOpen})
	assert.ErrorContains(t, err, "db error: db down")
}

func TestFind_BuildsOwnerScopedQuery(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter models.TaskFilter
		query  string
		args   []driver.Value
	}{
		{
			name:   "no filter",
			filter: models.TaskFilter{},
			query:  selectColumns + ` WHERE user_id = $1 ORDER BY created_at, id`,
			args:   []driver.Value{"u-1"},
		},
		{
			name:   "status only",
			filter: models.TaskFilter{Status: models.TaskStatusInProgress},
			query:  selectColumns + ` WHERE user_id = $1 AND status = $2 ORDER BY created_at, id`,
			args:   []driver.Value{"u-1", "IN_PROGRESS"},
		},
		{
			name:   "search only",
			filter: models.TaskFilter{Search: "room"},
			query:  selectColumns + ` WHERE user_id = $1 AND (title ILIKE $2 OR description ILIKE $2) ORDER BY created_at, id`,
			args:   []driver.Value{"u-1", "%room%"},
		},
		{
			name:   "status and escaped search",
			filter: models.TaskFilter{Status: models.TaskStatusDone, Search: "100%_done"},
			query:  selectColumns + ` WHERE user_id = $1 AND status = $2 AND (title ILIKE $3 OR description ILIKE $3) ORDER BY created_at, id`,
			args:   []driver.Value{"u-1", "DONE", `%100\%\_done%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)

			mock.ExpectQuery(q(tt.query)).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(taskColumns).
					AddRow("t-1", "u-1", "Clean room", "", "OPEN", created))

			got, err := repo.Find(context.Background(), "u-1", tt.filter)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "u-1", got[0].UserID)
			assert.Equal(t, models.TaskStatusOpen, got[0].Status)
		})
	}
}

func TestFind_Empty(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM tasks WHERE user_id`).WithArgs("u-1").WillReturnRows(sqlmock.NewRows(taskColumns))

	got, err := repo.Find(context.Background(), "u-1", models.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFind_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`FROM tasks`).WillReturnError(errors.New("boom"))

		_, err := repo.Find(context.Background(), "u-1", models.TaskFilter{})
		assert.ErrorContains(t, err, "failed to select tasks: boom")
	})

	t.Run("rows", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`FROM tasks`).WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow("t-1", "u-1", "a", "", "OPEN", time.Now()).
			RowError(0, errors.New("row broke")))

		_, err := repo.Find(context.Background(), "u-1", models.TaskFilter{})
		assert.ErrorContains(t, err, "row broke")
	})
}

func TestGet(t *testing.T) {
	query := q(selectColumns + ` WHERE id = $1 AND user_id = $2`)

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(query).WithArgs("t-1", "u-1").
			WillReturnRows(sqlmock.NewRows(taskColumns).AddRow("t-1", "u-1", "a", "b", "DONE", time.Now()))

		got, err := repo.Get(context.Background(), "t-1", "u-1")
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusDone, got.Status)
	})

	t.Run("owned by someone else looks missing", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(query).WithArgs("t-1", "intruder").WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "t-1", "intruder")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(query).WithArgs("t-1", "u-1").WillReturnError(errors.New("boom"))

		_, err := repo.Get(context.Background(), "t-1", "u-1")
		assert.NotErrorIs(t, err, common.ErrorNotFound)
		assert.ErrorContains(t, err, "boom")
	})
}

func TestUpdateStatusAndDelete(t *testing.T) {
	update := q(`UPDATE tasks SET status = $1 WHERE id = $2 AND user_id = $3`)
	del := q(`DELETE FROM tasks WHERE id = $1 AND user_id = $2`)

	tests := []struct {
		name    string
		result  sql.Result
		dbErr   error
		wantErr error
		wantMsg string
	}{
		{name: "one row", result: sqlmock.NewResult(0, 1)},
		{name: "no rows", result: sqlmock.NewResult(0, 0), wantErr: common.ErrorNotFound},
		{name: "too many rows", result: sqlmock.NewResult(0, 2), wantMsg: "unexpected rows affected: 2"},
		{name: "rows affected fails", result: sqlmock.NewErrorResult(errors.New("nope")), wantMsg: "rows affected error: nope"},
		{name: "exec fails", dbErr: errors.New("boom"), wantMsg: "db error: boom"},
	}

	check := func(t *testing.T, err error, wantErr error, wantMsg string) {
		switch {
		case wantErr != nil:
			assert.ErrorIs(t, err, wantErr)
		case wantMsg != "":
			assert.ErrorContains(t, err, wantMsg)
		default:
			assert.NoError(t, err)
		}
	}

	for _, tt := range tests {
		t.Run("update/"+tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			e := mock.ExpectExec(update).WithArgs("DONE", "t-1", "u-1")
			if tt.dbErr != nil {
				e.WillReturnError(tt.dbErr)
			} else {
				e.WillReturnResult(tt.result)
			}
			check(t, repo.UpdateStatus(context.Background(), "t-1", "u-1", models.TaskStatusDone), tt.wantErr, tt.wantMsg)
		})

		t.Run("delete/"+tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			e := mock.ExpectExec(del).WithArgs("t-1", "u-1")
			if tt.dbErr != nil {
				e.WillReturnError(tt.dbErr)
			} else {
				e.WillReturnResult(tt.result)
			}
			check(t, repo.Delete(context.Background(), "t-1", "u-1"), tt.wantErr, tt.wantMsg)
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `plain`, escapeLike("plain"))
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
