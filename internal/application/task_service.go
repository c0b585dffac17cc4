package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/uxelf/tasksapp/internal/domain/entity"
	repo "github.com/uxelf/tasksapp/internal/domain/repository"
	"github.com/uxelf/tasksapp/pkg/helpers"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 5000
	maxYearsInFuture     = 10
)

// TaskView is the externally shaped representation of a task. Expired is
// derived from the server's current date at read time and never stored.
type TaskView struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Status      entity.TaskStatus `json:"status"`
	Start       helpers.Date      `json:"start"`
	End         helpers.Date      `json:"end"`
	Expired     bool              `json:"expired"`
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Start       helpers.Date
	End         helpers.Date
}

// UpdateTaskInput carries sparse-update fields; a nil pointer means "leave
// unchanged". Clearing description back to null is intentionally not
// supported.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
	Start       *helpers.Date
	End         *helpers.Date
}

// TaskService governs task creation, retrieval, mutation and deletion. Every
// operation takes the caller's authenticated user id and enforces flat
// ownership equality before touching anything.
type TaskService struct {
	Tasks  repo.TaskRepository
	Users  repo.UserRepository
	Logger *logrus.Logger

	// Now is the clock used to derive "today"; overridable in tests.
	Now func() time.Time
}

func NewTaskService(tasks repo.TaskRepository, users repo.UserRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Users: users, Logger: logger, Now: time.Now}
}

func (s *TaskService) today() helpers.Date {
	return helpers.DateOf(s.Now())
}

// Create validates the input, resolves the author and persists a new PENDING
// task. Nothing is persisted when any validation fails.
func (s *TaskService) Create(ctx context.Context, authorID string, in CreateTaskInput) (*TaskView, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}
	if err := s.validateDates(in.Start, in.End); err != nil {
		return nil, err
	}

	author, err := s.Users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	task := &entity.Task{
		Title:       strings.TrimSpace(in.Title),
		Description: trimDescription(in.Description),
		Status:      entity.StatusPending,
		Start:       in.Start,
		End:         in.End,
		AuthorID:    author.ID,
	}
	if err := s.Tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return s.view(task), nil
}

// GetByID returns the task view. The existence check always precedes the
// ownership check.
func (s *TaskService) GetByID(ctx context.Context, taskID, callerID string) (*TaskView, error) {
	task, err := s.fetchOwned(ctx, taskID, callerID)
	if err != nil {
		return nil, err
	}
	return s.view(task), nil
}

// ListByUser returns all tasks owned by the caller in storage order.
func (s *TaskService) ListByUser(ctx context.Context, callerID string) ([]*TaskView, error) {
	tasks, err := s.Tasks.ListByAuthor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return s.views(tasks), nil
}

// ListForDay returns the caller's tasks whose interval contains the given day.
func (s *TaskService) ListForDay(ctx context.Context, callerID string, date helpers.Date) ([]*TaskView, error) {
	tasks, err := s.Tasks.ListOverlapping(ctx, callerID, date, date)
	if err != nil {
		return nil, err
	}
	return s.views(tasks), nil
}

// ListForMonth returns the caller's tasks overlapping the given month.
func (s *TaskService) ListForMonth(ctx context.Context, callerID string, year int, month time.Month) ([]*TaskView, error) {
	monthStart, monthEnd := helpers.MonthBounds(year, month)
	tasks, err := s.Tasks.ListOverlapping(ctx, callerID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	return s.views(tasks), nil
}

// Update applies only the supplied fields, then re-checks start <= end against
// the task's final state. The final-state check fires even when neither date
// was part of this update.
func (s *TaskService) Update(ctx context.Context, taskID, callerID string, in UpdateTaskInput) (*TaskView, error) {
	task, err := s.fetchOwned(ctx, taskID, callerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return nil, err
		}
		task.Title = strings.TrimSpace(*in.Title)
	}

	if in.Description != nil {
		if err := validateDescription(in.Description); err != nil {
			return nil, err
		}
		task.Description = trimDescription(in.Description)
	}

	if in.Status != nil {
		// Any status may transition to any other, including backwards.
		if !in.Status.Valid() {
			return nil, validationErr(fmt.Sprintf("invalid status %q", *in.Status))
		}
		task.Status = *in.Status
	}

	if in.Start != nil {
		task.Start = *in.Start
	}

	if in.End != nil {
		task.End = *in.End
	}

	if task.End.Before(task.Start) {
		return nil, validationErr("end date must be after start date")
	}

	if err := s.Tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return s.view(task), nil
}

// Delete removes the task permanently. Completed and expired tasks may be
// deleted like any other.
func (s *TaskService) Delete(ctx context.Context, taskID, callerID string) error {
	task, err := s.fetchOwned(ctx, taskID, callerID)
	if err != nil {
		return err
	}
	return s.Tasks.Delete(ctx, task.ID)
}

func (s *TaskService) fetchOwned(ctx context.Context, taskID, callerID string) (*entity.Task, error) {
	task, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if task.AuthorID != callerID {
		return nil, ErrForbidden
	}
	return task, nil
}

func (s *TaskService) view(t *entity.Task) *TaskView {
	return &TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Start:       t.Start,
		End:         t.End,
		Expired:     t.Expired(s.today()),
	}
}

func (s *TaskService) views(tasks []*entity.Task) []*TaskView {
	today := s.today()
	out := make([]*TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, &TaskView{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Start:       t.Start,
			End:         t.End,
			Expired:     t.Expired(today),
		})
	}
	return out
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return validationErr("title can't be empty or whitespace")
	}
	if len(title) > maxTitleLength {
		return validationErr(fmt.Sprintf("title cannot exceed %d characters", maxTitleLength))
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && len(*description) > maxDescriptionLength {
		return validationErr(fmt.Sprintf("description cannot exceed %d characters", maxDescriptionLength))
	}
	return nil
}

// validateDates enforces the creation-time window: both dates present,
// start <= end, end not in the past, and end at most ten years out. The
// ten-year bound is exclusive: end == today + 10y is accepted.
func (s *TaskService) validateDates(start, end helpers.Date) error {
	if start.IsZero() {
		return validationErr("start date cannot be null")
	}
	if end.IsZero() {
		return validationErr("end date cannot be null")
	}
	if end.Before(start) {
		return validationErr("end date must be after start date")
	}
	today := s.today()
	if end.Before(today) {
		return validationErr("end date must be in the future")
	}
	if end.After(today.AddYears(maxYearsInFuture)) {
		return validationErr(fmt.Sprintf("end date cannot be more than %d years in the future", maxYearsInFuture))
	}
	return nil
}

func trimDescription(d *string) *string {
	if d == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*d)
	return &trimmed
}
