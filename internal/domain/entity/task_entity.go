package entity

import (
	"time"

	"github.com/uxelf/tasksapp/pkg/helpers"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// TaskStatuses returns the fixed list of valid status values.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}
}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task belongs to exactly one user; AuthorID is set at creation and never
// reassigned. Start and End are calendar dates with Start <= End.
type Task struct {
	ID          string
	Title       string
	Description *string
	Status      TaskStatus
	Start       helpers.Date
	End         helpers.Date
	AuthorID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expired reports whether the task ran past its end date without being
// completed, relative to the given day. Never persisted; recomputed per read.
func (t *Task) Expired(today helpers.Date) bool {
	return t.Status != StatusCompleted && t.End.Before(today)
}
