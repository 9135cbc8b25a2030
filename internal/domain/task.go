package domain

import "time"

// TaskStatus - состояние задачи
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	Status      TaskStatus `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// TaskPatch carries only the fields explicitly present in an update request.
// A nil Title or Status means "leave unchanged". Description is applied only
// when DescriptionSet is true; a nil Description then clears the column.
type TaskPatch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
}

// Empty reports whether the patch touches no fields.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && !p.DescriptionSet && p.Status == nil
}
