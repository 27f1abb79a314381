package repository

//go:generate mockgen -source=project_repository.go -destination=mock/project_repository.go -package=mock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/snowflake"
)

type ProjectFilter struct {
	FeaturedOnly bool
	// Languages restricts which translation rows are loaded. Empty loads all.
	Languages []string
}

type ProjectRepository interface {
	Create(ctx context.Context, project model.Project) (model.Project, error)
	GetByID(ctx context.Context, id int64, languages []string) (model.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]model.Project, error)
	// Update overwrites the project's attributes. A non-nil translations slice
	// replaces the whole translation set in the same transaction.
	Update(ctx context.Context, project model.Project, translations []model.ProjectTranslation) (model.Project, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, image_url, technologies, github_url, live_url, featured, created_at, updated_at`

func (r *projectRepository) Create(ctx context.Context, project model.Project) (model.Project, error) {
	project.ID = snowflake.NextID()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	technologies, err := encodeStrings(project.Technologies)
	if err != nil {
		return model.Project{}, fmt.Errorf("encode technologies: %w", err)
	}

	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO projects (id, image_url, technologies, github_url, live_url, featured, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			project.ID,
			nullableString(project.ImageURL),
			technologies,
			nullableString(project.GithubURL),
			nullableString(project.LiveURL),
			boolToInt(project.Featured),
			formatTime(now),
			formatTime(now),
		)
		if err != nil {
			return err
		}
		return insertProjectTranslations(ctx, tx, project.ID, project.Translations)
	})
	if err != nil {
		return model.Project{}, fmt.Errorf("create project: %w", err)
	}

	if project.Translations == nil {
		project.Translations = []model.ProjectTranslation{}
	}
	return project, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int64, languages []string) (model.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	project, err := scanProject(row)
	if err != nil {
		return model.Project{}, fmt.Errorf("get project: %w", err)
	}

	translations, err := loadProjectTranslations(ctx, r.db, ` AND t.project_id = ?`, []any{id}, languages)
	if err != nil {
		return model.Project{}, err
	}
	project.Translations = translations[id]
	if project.Translations == nil {
		project.Translations = []model.ProjectTranslation{}
	}
	return project, nil
}

func (r *projectRepository) List(ctx context.Context, filter ProjectFilter) ([]model.Project, error) {
	where := ""
	if filter.FeaturedOnly {
		where = ` AND p.featured = 1`
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+projectColumns+` FROM projects p WHERE 1 = 1`+where+` ORDER BY p.created_at DESC, p.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	translations, err := loadProjectTranslations(ctx, r.db, where, nil, filter.Languages)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Translations = translations[projects[i].ID]
		if projects[i].Translations == nil {
			projects[i].Translations = []model.ProjectTranslation{}
		}
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project model.Project, translations []model.ProjectTranslation) (model.Project, error) {
	technologies, err := encodeStrings(project.Technologies)
	if err != nil {
		return model.Project{}, fmt.Errorf("encode technologies: %w", err)
	}

	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(
			ctx,
			`UPDATE projects SET image_url = ?, technologies = ?, github_url = ?, live_url = ?, featured = ?, updated_at = ?
			 WHERE id = ?`,
			nullableString(project.ImageURL),
			technologies,
			nullableString(project.GithubURL),
			nullableString(project.LiveURL),
			boolToInt(project.Featured),
			formatTime(time.Now()),
			project.ID,
		)
		if err != nil {
			return err
		}
		if err := requireAffected(result); err != nil {
			return err
		}
		if translations == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM project_translations WHERE project_id = ?`, project.ID); err != nil {
			return err
		}
		return insertProjectTranslations(ctx, tx, project.ID, translations)
	})
	if err != nil {
		return model.Project{}, fmt.Errorf("update project: %w", err)
	}

	return r.GetByID(ctx, project.ID, nil)
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (r *projectRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

func insertProjectTranslations(ctx context.Context, q dbtx, projectID int64, translations []model.ProjectTranslation) error {
	for _, t := range translations {
		_, err := q.ExecContext(
			ctx,
			`INSERT INTO project_translations (id, project_id, language, title, description) VALUES (?, ?, ?, ?, ?)`,
			snowflake.NextID(),
			projectID,
			t.Language,
			t.Title,
			t.Description,
		)
		if err != nil {
			return fmt.Errorf("insert project translation %q: %w", t.Language, err)
		}
	}
	return nil
}

// loadProjectTranslations returns translations grouped by project id. where is
// appended to the query and may reference the projects table as p.
func loadProjectTranslations(ctx context.Context, q dbtx, where string, args []any, languages []string) (map[int64][]model.ProjectTranslation, error) {
	langClause, langArgs := languageFilter("t.language", languages)
	rows, err := q.QueryContext(
		ctx,
		`SELECT t.project_id, t.language, t.title, t.description
		 FROM project_translations t JOIN projects p ON p.id = t.project_id
		 WHERE 1 = 1`+where+langClause+`
		 ORDER BY t.id`,
		append(append([]any{}, args...), langArgs...)...,
	)
	if err != nil {
		return nil, fmt.Errorf("list project translations: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]model.ProjectTranslation)
	for rows.Next() {
		var projectID int64
		var t model.ProjectTranslation
		if err := rows.Scan(&projectID, &t.Language, &t.Title, &t.Description); err != nil {
			return nil, fmt.Errorf("scan project translation: %w", err)
		}
		result[projectID] = append(result[projectID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project translations: %w", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	var imageURL, githubURL, liveURL sql.NullString
	var technologies string
	var featured int
	var createdAt, updatedAt string
	if err := row.Scan(&p.ID, &imageURL, &technologies, &githubURL, &liveURL, &featured, &createdAt, &updatedAt); err != nil {
		return model.Project{}, err
	}

	var err error
	p.ImageURL = stringPtr(imageURL)
	p.GithubURL = stringPtr(githubURL)
	p.LiveURL = stringPtr(liveURL)
	p.Featured = featured == 1
	if p.Technologies, err = decodeStrings(technologies); err != nil {
		return model.Project{}, fmt.Errorf("decode technologies: %w", err)
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Project{}, fmt.Errorf("parse project created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Project{}, fmt.Errorf("parse project updated_at: %w", err)
	}
	return p, nil
}
