package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/thenoetrevino/tracker/internal/models"
)

// deadlineLayout is how deadlines are shown to people, in local time
const deadlineLayout = "2006-01-02 15:04"

// UserView is the printed form of a user; the password hash never leaves the
// service layer
type UserView struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	DateJoined  time.Time `json:"date_joined"`
}

// NewUserView converts a user for output
func NewUserView(u *models.User) *UserView {
	return &UserView{
		ID:          u.ID.ToInt(),
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.DateJoined,
	}
}

func (v *UserView) GetID() int { return v.ID }

func (v *UserView) WriteHuman(w io.Writer) {
	fmt.Fprintf(w, "[%d] %s", v.ID, v.Email)
	if v.IsSuperuser {
		fmt.Fprint(w, " (admin)")
	}
	fmt.Fprintln(w)
}

// TaskView is the printed form of a task
type TaskView struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	ProjectID     int        `json:"project_id"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	Priority      int        `json:"priority"`
	PriorityLabel string     `json:"priority_label"`
	Deadline      *time.Time `json:"deadline"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewTaskView converts a task for output
func NewTaskView(t *models.Task) *TaskView {
	return &TaskView{
		ID:            t.ID.ToInt(),
		Title:         t.Name,
		ProjectID:     t.ProjectID.ToInt(),
		Status:        string(t.Status),
		StatusLabel:   t.Status.Label(),
		Priority:      t.Priority,
		PriorityLabel: models.PriorityLabel(t.Priority),
		Deadline:      t.Deadline,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (v *TaskView) GetID() int { return v.ID }

func (v *TaskView) WriteHuman(w io.Writer) {
	v.writeLine(w, "")
}

func (v *TaskView) writeLine(w io.Writer, indent string) {
	fmt.Fprintf(w, "%s[%d] %s (%s, priority %s", indent, v.ID, v.Title, v.StatusLabel, v.PriorityLabel)
	if v.Deadline != nil {
		fmt.Fprintf(w, ", due %s", v.Deadline.Local().Format(deadlineLayout))
	}
	fmt.Fprintln(w, ")")
}

// TaskList is a printable slice of tasks
type TaskList []*TaskView

// NewTaskList converts tasks for output
func NewTaskList(tasks []*models.Task) TaskList {
	list := make(TaskList, len(tasks))
	for i, t := range tasks {
		list[i] = NewTaskView(t)
	}
	return list
}

func (l TaskList) GetIDs() []int {
	ids := make([]int, len(l))
	for i, v := range l {
		ids[i] = v.ID
	}
	return ids
}

func (l TaskList) WriteHuman(w io.Writer) {
	if len(l) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}
	fmt.Fprintf(w, "Found %d tasks:\n\n", len(l))
	for _, v := range l {
		v.writeLine(w, "  ")
	}
}

// ProjectView is the printed form of a project, optionally with its tasks
type ProjectView struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tasks     TaskList  `json:"tasks,omitempty"`
}

// NewProjectView converts a project for output
func NewProjectView(p *models.Project) *ProjectView {
	return &ProjectView{
		ID:        p.ID.ToInt(),
		Name:      p.Name,
		UserID:    p.UserID.ToInt(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (v *ProjectView) GetID() int { return v.ID }

func (v *ProjectView) WriteHuman(w io.Writer) {
	fmt.Fprintf(w, "[%d] %s\n", v.ID, v.Name)
}

// ProjectList is a printable slice of projects
type ProjectList []*ProjectView

// NewProjectList converts projects for output
func NewProjectList(projects []*models.Project) ProjectList {
	list := make(ProjectList, len(projects))
	for i, p := range projects {
		list[i] = NewProjectView(p)
	}
	return list
}

// NewProjectTree converts projects with their tasks for output
func NewProjectTree(projects []*models.ProjectWithTasks) ProjectList {
	list := make(ProjectList, len(projects))
	for i, p := range projects {
		list[i] = NewProjectView(&p.Project)
		list[i].Tasks = NewTaskList(p.Tasks)
	}
	return list
}

func (l ProjectList) GetIDs() []int {
	ids := make([]int, len(l))
	for i, v := range l {
		ids[i] = v.ID
	}
	return ids
}

func (l ProjectList) WriteHuman(w io.Writer) {
	if len(l) == 0 {
		fmt.Fprintln(w, "No projects found")
		return
	}
	fmt.Fprintf(w, "Found %d projects:\n\n", len(l))
	for _, v := range l {
		fmt.Fprintf(w, "  [%d] %s\n", v.ID, v.Name)
		for _, t := range v.Tasks {
			t.writeLine(w, "      ")
		}
	}
}
