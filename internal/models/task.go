package models

import (
	"time"

	"github.com/thenoetrevino/tracker/internal/types"
)

// Task is a unit of work inside a project.
// OwnerID is not a column on tasks; it is the project's user, loaded by join.
type Task struct {
	ID        types.TaskID
	Name      string
	ProjectID types.ProjectID
	OwnerID   types.UserID
	Status    TaskStatus
	Priority  int
	Deadline  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the numeric id (used by quiet CLI output)
func (t *Task) GetID() int {
	return t.ID.ToInt()
}

// IsDone reports whether the task is completed
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
// ClearDeadline removes an existing deadline and wins over Deadline.
// Status is not patchable; it only moves through complete and toggle.
type TaskPatch struct {
	Name          *string
	Priority      *int
	Deadline      *time.Time
	ClearDeadline bool
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Name == nil && p.Priority == nil && p.Deadline == nil && !p.ClearDeadline
}
