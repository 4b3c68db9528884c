package database

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// ProjectFilter selects projects for Exists. Zero fields are ignored.
type ProjectFilter struct {
	UserID types.UserID
	// Name matches exactly, ignoring case (Unicode case folding)
	Name      string
	ExcludeID types.ProjectID
}

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
	tr translator
}

// NewProjectRepo creates a project repository
func NewProjectRepo(db *sql.DB, logger *slog.Logger) *ProjectRepo {
	return &ProjectRepo{db: db, tr: translator{model: "Project", logger: defaultLogger(logger)}}
}

const projectColumns = `id, name, user_id, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	p := &models.Project{}
	if err := row.Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

// translate maps the per-owner unique name index onto ErrDuplicateProjectName
func (r *ProjectRepo) translate(op string, id any, err error) error {
	if isUniqueViolation(err) {
		return ErrDuplicateProjectName
	}
	return r.tr.translate(op, id, err)
}

// GetByID retrieves a project by its ID
func (r *ProjectRepo) GetByID(ctx context.Context, id types.ProjectID) (*models.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if err != nil {
		return nil, r.translate("get project", id, err)
	}
	return p, nil
}

// Create inserts a project owned by userID
func (r *ProjectRepo) Create(ctx context.Context, userID types.UserID, name string) (*models.Project, error) {
	now := nowFunc()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, name_key, user_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		name, foldKey(name), userID, now, now,
	)
	if err != nil {
		return nil, r.translate("create project", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, r.translate("create project", name, err)
	}
	return r.GetByID(ctx, types.ProjectID(id))
}

// Update applies patch to project and persists it. The passed project is
// modified in place and returned.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project, patch models.ProjectPatch) (*models.Project, error) {
	if patch.Name != nil {
		project.Name = *patch.Name
	}
	project.UpdatedAt = nowFunc()

	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, name_key = ?, updated_at = ? WHERE id = ?`,
		project.Name, foldKey(project.Name), project.UpdatedAt, project.ID,
	)
	if err != nil {
		return nil, r.translate("update project", project.ID, err)
	}
	if err := requireAffected(result, r.tr, "update project", project.ID); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project; the foreign key cascades to its tasks
func (r *ProjectRepo) Delete(ctx context.Context, project *models.Project) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, project.ID)
	if err != nil {
		return r.translate("delete project", project.ID, err)
	}
	return requireAffected(result, r.tr, "delete project", project.ID)
}

// Exists reports whether any project matches filter
func (r *ProjectRepo) Exists(ctx context.Context, filter ProjectFilter) (bool, error) {
	where, args := filter.where()

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM projects`+where+`)`, args...).Scan(&exists)
	if err != nil {
		return false, r.translate("check project exists", filter.Name, err)
	}
	return exists, nil
}

func (f ProjectFilter) where() (string, []any) {
	var conds []string
	var args []any

	if f.UserID.Valid() {
		conds = append(conds, "user_id = ?")
		args = append(args, f.UserID)
	}
	if f.Name != "" {
		// name_key carries the unique index
		conds = append(conds, "name_key = ?")
		args = append(args, foldKey(f.Name))
	}
	if f.ExcludeID.Valid() {
		conds = append(conds, "id != ?")
		args = append(args, f.ExcludeID)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListByUser retrieves a user's projects, newest first
func (r *ProjectRepo) ListByUser(ctx context.Context, userID types.UserID) ([]*models.Project, error) {
	return r.query(ctx, "list projects", userID,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
}

// SearchByName retrieves a user's projects whose name contains q, ignoring case
func (r *ProjectRepo) SearchByName(ctx context.Context, userID types.UserID, q string) ([]*models.Project, error) {
	return r.query(ctx, "search projects", q,
		`SELECT `+projectColumns+` FROM projects
		 WHERE user_id = ? AND instr(name_key, ?) > 0
		 ORDER BY created_at DESC, id DESC`,
		userID, foldKey(q))
}

// ListByUserWithTasks retrieves a user's projects, newest first, each with its
// tasks loaded in display order. Two queries regardless of project count.
func (r *ProjectRepo) ListByUserWithTasks(ctx context.Context, userID types.UserID) ([]*models.ProjectWithTasks, error) {
	projects, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*models.ProjectWithTasks, len(projects))
	byID := make(map[types.ProjectID]*models.ProjectWithTasks, len(projects))
	for i, p := range projects {
		result[i] = &models.ProjectWithTasks{Project: *p, Tasks: []*models.Task{}}
		byID[p.ID] = result[i]
	}
	if len(projects) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks t JOIN projects p ON p.id = t.project_id
		 WHERE p.user_id = ?
		 ORDER BY `+sortedTaskOrder, userID)
	if err != nil {
		return nil, r.translate("list project tasks", userID, err)
	}
	defer closeRows(rows)

	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, r.translate("scan project task", userID, err)
		}
		if pw, ok := byID[task.ProjectID]; ok {
			pw.Tasks = append(pw.Tasks, task)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, r.translate("iterate project tasks", userID, err)
	}

	return result, nil
}

func (r *ProjectRepo) query(ctx context.Context, op string, id any, query string, args ...any) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.translate(op, id, err)
	}
	defer closeRows(rows)

	projects := make([]*models.Project, 0, 10)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, r.translate(op, id, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.translate(op, id, err)
	}
	return projects, nil
}

// requireAffected turns a write that touched no row into NotFound
func requireAffected(result sql.Result, tr translator, op string, id any) error {
	n, err := result.RowsAffected()
	if err != nil {
		return tr.translate(op, id, err)
	}
	if n == 0 {
		return &models.NotFoundError{Model: tr.model, Identifier: id}
	}
	return nil
}
