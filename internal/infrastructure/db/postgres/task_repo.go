package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/taskhub/task-service/internal/domain"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) scanTaskRow(row *sql.Row) (taskRow, error) {
	var tr taskRow
	err := row.Scan(
		&tr.ID,
		&tr.Text,
		&tr.IsCompleted,
		&tr.CreatedAt,
		&tr.UpdatedAt,
	)
	return tr, err
}

// ---------- task.TaskRepo ----------

func (r *TaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	const q = `
SELECT id, text, is_completed, created_at, updated_at
FROM tasks
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrStoreFailure(err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var tr taskRow
		if err := rows.Scan(&tr.ID, &tr.Text, &tr.IsCompleted, &tr.CreatedAt, &tr.UpdatedAt); err != nil {
			return nil, domain.ErrStoreFailure(err)
		}
		tasks = append(tasks, toDomainTask(tr))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreFailure(err)
	}
	return tasks, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Task{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT id, text, is_completed, created_at, updated_at
FROM tasks
WHERE id = $1
LIMIT 1;
`
	tr, err := r.scanTaskRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound()
		}
		return domain.Task{}, domain.ErrStoreFailure(err)
	}
	return toDomainTask(tr), nil
}

func (r *TaskRepo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	if t.ID == "" {
		return domain.Task{}, domain.ErrMissingField("id")
	}
	// Schema-level required field; surfaced as a creation failure, not a
	// handler pre-check.
	if strings.TrimSpace(t.Text) == "" {
		return domain.Task{}, domain.ErrMissingField("text")
	}

	const q = `
INSERT INTO tasks (id, text, is_completed)
VALUES ($1,$2,$3)
RETURNING id, text, is_completed, created_at, updated_at;
`
	tr, err := r.scanTaskRow(r.db.QueryRowContext(ctx, q, t.ID, t.Text, t.IsCompleted))
	if err != nil {
		return domain.Task{}, domain.ErrStoreFailure(err)
	}
	return toDomainTask(tr), nil
}

func (r *TaskRepo) Update(ctx context.Context, id, text string, isCompleted bool) (domain.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Task{}, domain.ErrMissingField("id")
	}
	if strings.TrimSpace(text) == "" {
		return domain.Task{}, domain.ErrMissingField("text")
	}

	const q = `
UPDATE tasks
SET text = $2,
    is_completed = $3,
    updated_at = NOW()
WHERE id = $1
RETURNING id, text, is_completed, created_at, updated_at;
`
	tr, err := r.scanTaskRow(r.db.QueryRowContext(ctx, q, id, text, isCompleted))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound()
		}
		return domain.Task{}, domain.ErrStoreFailure(err)
	}
	return toDomainTask(tr), nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `DELETE FROM tasks WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrStoreFailure(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrTaskNotFound()
	}
	return nil
}
