package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/uxelf/tasksapp/internal/domain/entity"
	"github.com/uxelf/tasksapp/internal/domain/repository"
	"github.com/uxelf/tasksapp/pkg/helpers"
)

// In-memory repository fakes used across the service tests.

type memUserRepo struct {
	users       map[string]*entity.User // keyed by id
	createCalls int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) add(username string) *entity.User {
	u := &entity.User{ID: uuid.NewString(), Username: username, CreatedAt: time.Now()}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.createCalls++
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memTaskRepo struct {
	tasks       map[string]*entity.Task
	order       []string
	createCalls int
	updateCalls int
	deleteCalls int
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]*entity.Task{}}
}

// add stores a task directly, bypassing service validation.
func (r *memTaskRepo) add(t *entity.Task) *entity.Task {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = entity.StatusPending
	}
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return t
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.createCalls++
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	if t, ok := r.tasks[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memTaskRepo) ListByAuthor(_ context.Context, authorID string) ([]*entity.Task, error) {
	out := make([]*entity.Task, 0)
	for _, id := range r.order {
		if t := r.tasks[id]; t != nil && t.AuthorID == authorID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memTaskRepo) ListOverlapping(_ context.Context, authorID string, from, to helpers.Date) ([]*entity.Task, error) {
	out := make([]*entity.Task, 0)
	for _, id := range r.order {
		t := r.tasks[id]
		if t == nil || t.AuthorID != authorID {
			continue
		}
		if !t.Start.After(to) && !t.End.Before(from) {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memTaskRepo) Update(_ context.Context, t *entity.Task) error {
	r.updateCalls++
	if _, ok := r.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *t
	r.tasks[t.ID] = &copied
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) error {
	r.deleteCalls++
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
