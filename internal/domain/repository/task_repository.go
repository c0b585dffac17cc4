package repository

import (
	"context"

	"github.com/uxelf/tasksapp/internal/domain/entity"
	"github.com/uxelf/tasksapp/pkg/helpers"
)

// TaskRepository defines the interface for task-related database operations.
// ListOverlapping returns the author's tasks whose [start, end] interval
// intersects [from, to], bounds inclusive.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Task, error)
	ListOverlapping(ctx context.Context, authorID string, from, to helpers.Date) ([]*entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id string) error
}
