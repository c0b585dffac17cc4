package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uxelf/tasksapp/internal/domain/entity"
	"github.com/uxelf/tasksapp/internal/domain/repository"
	"github.com/uxelf/tasksapp/pkg/helpers"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, status, start_time, end_time, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.Title, t.Description, t.Status, t.Start, t.End, t.AuthorID)

	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, status, start_time, end_time, author_id, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`, id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, status, start_time, end_time, author_id, created_at, updated_at
		FROM tasks
		WHERE author_id = $1
		ORDER BY created_at
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *TaskRepository) ListOverlapping(ctx context.Context, authorID string, from, to helpers.Date) ([]*entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, status, start_time, end_time, author_id, created_at, updated_at
		FROM tasks
		WHERE author_id = $1 AND start_time <= $3 AND end_time >= $2
		ORDER BY created_at
	`, authorID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, start_time = $4, end_time = $5, updated_at = $6
		WHERE id = $7
	`, t.Title, t.Description, t.Status, t.Start, t.End, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	t := &entity.Task{}
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Start, &t.End,
		&t.AuthorID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func collectTasks(rows pgx.Rows) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
