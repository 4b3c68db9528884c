package models

import (
	"time"

	"github.com/thenoetrevino/tracker/internal/types"
)

// Project is the top-level container for tasks. Every project belongs to
// exactly one user and its name is unique per owner, ignoring case.
type Project struct {
	ID        types.ProjectID
	Name      string
	UserID    types.UserID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the numeric id (used by quiet CLI output)
func (p *Project) GetID() int {
	return p.ID.ToInt()
}

// ProjectWithTasks is a project with its tasks loaded in display order
type ProjectWithTasks struct {
	Project
	Tasks []*Task
}

// ProjectPatch carries a partial project update. Nil fields are left untouched.
type ProjectPatch struct {
	Name *string
}

// IsEmpty reports whether the patch changes nothing
func (p ProjectPatch) IsEmpty() bool {
	return p.Name == nil
}
