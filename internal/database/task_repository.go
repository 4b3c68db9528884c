package database

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// TaskFields holds the columns written when creating a task
type TaskFields struct {
	ProjectID types.ProjectID
	Name      string
	Status    models.TaskStatus
	Priority  int
	Deadline  *time.Time
}

// TaskFilter selects tasks for List and Exists. Zero fields are ignored.
type TaskFilter struct {
	// UserID restricts to tasks in projects owned by this user
	UserID    types.UserID
	ProjectID types.ProjectID
	Status    models.TaskStatus
	Priority  int
	// DeadlineBefore selects tasks whose deadline is strictly earlier
	DeadlineBefore *time.Time
	ExcludeDone    bool
}

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
	tr translator
}

// NewTaskRepo creates a task repository
func NewTaskRepo(db *sql.DB, logger *slog.Logger) *TaskRepo {
	return &TaskRepo{db: db, tr: translator{model: "Task", logger: defaultLogger(logger)}}
}

// taskColumns expects tasks aliased as t joined to projects aliased as p
const taskColumns = `t.id, t.name, t.project_id, p.user_id, t.status, t.priority, t.deadline, t.created_at, t.updated_at`

const taskFrom = ` FROM tasks t JOIN projects p ON p.id = t.project_id`

// sortedTaskOrder puts active tasks before done ones, then higher priority,
// then newer tasks. id breaks ties between rows created in the same instant.
const sortedTaskOrder = `CASE WHEN t.status = 'done' THEN 1 ELSE 0 END, t.priority DESC, t.created_at DESC, t.id DESC`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	t := &models.Task{}
	var deadline sql.NullTime
	err := row.Scan(&t.ID, &t.Name, &t.ProjectID, &t.OwnerID, &t.Status, &t.Priority, &deadline, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Deadline = nullTimeToPtr(deadline)
	return t, nil
}

// GetByID retrieves a task by its ID, with its owner resolved
func (r *TaskRepo) GetByID(ctx context.Context, id types.TaskID) (*models.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+taskFrom+` WHERE t.id = ?`, id))
	if err != nil {
		return nil, r.tr.translate("get task", id, err)
	}
	return t, nil
}

// Create inserts a task
func (r *TaskRepo) Create(ctx context.Context, fields TaskFields) (*models.Task, error) {
	now := nowFunc()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (name, project_id, status, priority, deadline, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fields.Name, fields.ProjectID, fields.Status, fields.Priority, nullTime(fields.Deadline), now, now,
	)
	if err != nil {
		return nil, r.tr.translate("create task", fields.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, r.tr.translate("create task", fields.Name, err)
	}
	return r.GetByID(ctx, types.TaskID(id))
}

// Update applies patch to task and persists it. The passed task is modified
// in place and returned.
func (r *TaskRepo) Update(ctx context.Context, task *models.Task, patch models.TaskPatch) (*models.Task, error) {
	if patch.Name != nil {
		task.Name = *patch.Name
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Deadline != nil {
		deadline := patch.Deadline.UTC()
		task.Deadline = &deadline
	}
	if patch.ClearDeadline {
		task.Deadline = nil
	}
	task.UpdatedAt = nowFunc()

	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET name = ?, priority = ?, deadline = ?, updated_at = ? WHERE id = ?`,
		task.Name, task.Priority, nullTime(task.Deadline), task.UpdatedAt, task.ID,
	)
	if err != nil {
		return nil, r.tr.translate("update task", task.ID, err)
	}
	if err := requireAffected(result, r.tr, "update task", task.ID); err != nil {
		return nil, err
	}
	return task, nil
}

// SetStatus persists a status change. The passed task is modified in place
// and returned.
func (r *TaskRepo) SetStatus(ctx context.Context, task *models.Task, status models.TaskStatus) (*models.Task, error) {
	updatedAt := nowFunc()

	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`,
		status, updatedAt, task.ID,
	)
	if err != nil {
		return nil, r.tr.translate("set task status", task.ID, err)
	}
	if err := requireAffected(result, r.tr, "set task status", task.ID); err != nil {
		return nil, err
	}

	task.Status = status
	task.UpdatedAt = updatedAt
	return task, nil
}

// Delete removes a task
func (r *TaskRepo) Delete(ctx context.Context, task *models.Task) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, task.ID)
	if err != nil {
		return r.tr.translate("delete task", task.ID, err)
	}
	return requireAffected(result, r.tr, "delete task", task.ID)
}

// Exists reports whether any task matches filter
func (r *TaskRepo) Exists(ctx context.Context, filter TaskFilter) (bool, error) {
	where, args := filter.where()

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1`+taskFrom+where+`)`, args...).Scan(&exists)
	if err != nil {
		return false, r.tr.translate("check task exists", filter.ProjectID, err)
	}
	return exists, nil
}

// List retrieves tasks matching filter, newest first
func (r *TaskRepo) List(ctx context.Context, filter TaskFilter) ([]*models.Task, error) {
	where, args := filter.where()
	return r.query(ctx, "list tasks",
		`SELECT `+taskColumns+taskFrom+where+` ORDER BY t.created_at DESC, t.id DESC`, args...)
}

// ListByProjectSorted retrieves a project's tasks in display order
func (r *TaskRepo) ListByProjectSorted(ctx context.Context, projectID types.ProjectID) ([]*models.Task, error) {
	return r.query(ctx, "list project tasks",
		`SELECT `+taskColumns+taskFrom+` WHERE t.project_id = ? ORDER BY `+sortedTaskOrder, projectID)
}

// CountByProject returns the number of tasks in a project
func (r *TaskRepo) CountByProject(ctx context.Context, projectID types.ProjectID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE project_id = ?`, projectID).Scan(&count)
	if err != nil {
		return 0, r.tr.translate("count tasks", projectID, err)
	}
	return count, nil
}

func (f TaskFilter) where() (string, []any) {
	var conds []string
	var args []any

	if f.UserID.Valid() {
		conds = append(conds, "p.user_id = ?")
		args = append(args, f.UserID)
	}
	if f.ProjectID.Valid() {
		conds = append(conds, "t.project_id = ?")
		args = append(args, f.ProjectID)
	}
	if f.Status != "" {
		conds = append(conds, "t.status = ?")
		args = append(args, f.Status)
	}
	if f.Priority != 0 {
		conds = append(conds, "t.priority = ?")
		args = append(args, f.Priority)
	}
	if f.DeadlineBefore != nil {
		conds = append(conds, "t.deadline IS NOT NULL AND t.deadline < ?")
		args = append(args, f.DeadlineBefore.UTC())
	}
	if f.ExcludeDone {
		conds = append(conds, "t.status != 'done'")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *TaskRepo) query(ctx context.Context, op string, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.tr.translate(op, nil, err)
	}
	defer closeRows(rows)

	tasks := make([]*models.Task, 0, 10)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, r.tr.translate(op, nil, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, r.tr.translate(op, nil, err)
	}
	return tasks, nil
}
