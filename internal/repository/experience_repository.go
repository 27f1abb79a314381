package repository

//go:generate mockgen -source=experience_repository.go -destination=mock/experience_repository.go -package=mock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/snowflake"
)

type ExperienceFilter struct {
	CurrentOnly bool
	Languages   []string
}

type ExperienceRepository interface {
	Create(ctx context.Context, experience model.Experience) (model.Experience, error)
	GetByID(ctx context.Context, id int64, languages []string) (model.Experience, error)
	List(ctx context.Context, filter ExperienceFilter) ([]model.Experience, error)
	Update(ctx context.Context, experience model.Experience, translations []model.ExperienceTranslation) (model.Experience, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type experienceRepository struct {
	db *sql.DB
}

func NewExperienceRepository(db *sql.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

const experienceColumns = `id, start_date, end_date, current, technologies, created_at, updated_at`

func (r *experienceRepository) Create(ctx context.Context, experience model.Experience) (model.Experience, error) {
	experience.ID = snowflake.NextID()
	experience.StartDate = calendarDate(experience.StartDate)
	experience.EndDate = calendarDatePtr(experience.EndDate)
	now := time.Now().UTC()
	experience.CreatedAt = now
	experience.UpdatedAt = now

	technologies, err := encodeStrings(experience.Technologies)
	if err != nil {
		return model.Experience{}, fmt.Errorf("encode technologies: %w", err)
	}

	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO experiences (id, start_date, end_date, current, technologies, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			experience.ID,
			formatDate(experience.StartDate),
			nullableDate(experience.EndDate),
			boolToInt(experience.Current),
			technologies,
			formatTime(now),
			formatTime(now),
		)
		if err != nil {
			return err
		}
		return insertExperienceTranslations(ctx, tx, experience.ID, experience.Translations)
	})
	if err != nil {
		return model.Experience{}, fmt.Errorf("create experience: %w", err)
	}

	if experience.Translations == nil {
		experience.Translations = []model.ExperienceTranslation{}
	}
	return experience, nil
}

func (r *experienceRepository) GetByID(ctx context.Context, id int64, languages []string) (model.Experience, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = ?`, id)
	experience, err := scanExperience(row)
	if err != nil {
		return model.Experience{}, fmt.Errorf("get experience: %w", err)
	}

	translations, err := loadExperienceTranslations(ctx, r.db, ` AND t.experience_id = ?`, []any{id}, languages)
	if err != nil {
		return model.Experience{}, err
	}
	experience.Translations = translations[id]
	if experience.Translations == nil {
		experience.Translations = []model.ExperienceTranslation{}
	}
	return experience, nil
}

func (r *experienceRepository) List(ctx context.Context, filter ExperienceFilter) ([]model.Experience, error) {
	where := ""
	if filter.CurrentOnly {
		where = ` AND e.current = 1`
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+experienceColumns+` FROM experiences e WHERE 1 = 1`+where+` ORDER BY e.start_date DESC, e.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	var experiences []model.Experience
	for rows.Next() {
		experience, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		experiences = append(experiences, experience)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experiences: %w", err)
	}

	translations, err := loadExperienceTranslations(ctx, r.db, where, nil, filter.Languages)
	if err != nil {
		return nil, err
	}
	for i := range experiences {
		experiences[i].Translations = translations[experiences[i].ID]
		if experiences[i].Translations == nil {
			experiences[i].Translations = []model.ExperienceTranslation{}
		}
	}

	return experiences, nil
}

func (r *experienceRepository) Update(ctx context.Context, experience model.Experience, translations []model.ExperienceTranslation) (model.Experience, error) {
	experience.StartDate = calendarDate(experience.StartDate)
	experience.EndDate = calendarDatePtr(experience.EndDate)
	technologies, err := encodeStrings(experience.Technologies)
	if err != nil {
		return model.Experience{}, fmt.Errorf("encode technologies: %w", err)
	}

	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(
			ctx,
			`UPDATE experiences SET start_date = ?, end_date = ?, current = ?, technologies = ?, updated_at = ?
			 WHERE id = ?`,
			formatDate(experience.StartDate),
			nullableDate(experience.EndDate),
			boolToInt(experience.Current),
			technologies,
			formatTime(time.Now()),
			experience.ID,
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
		if _, err := tx.ExecContext(ctx, `DELETE FROM experience_translations WHERE experience_id = ?`, experience.ID); err != nil {
			return err
		}
		return insertExperienceTranslations(ctx, tx, experience.ID, translations)
	})
	if err != nil {
		return model.Experience{}, fmt.Errorf("update experience: %w", err)
	}

	return r.GetByID(ctx, experience.ID, nil)
}

func (r *experienceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	return nil
}

func (r *experienceRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count experiences: %w", err)
	}
	return count, nil
}

func insertExperienceTranslations(ctx context.Context, q dbtx, experienceID int64, translations []model.ExperienceTranslation) error {
	for _, t := range translations {
		_, err := q.ExecContext(
			ctx,
			`INSERT INTO experience_translations (id, experience_id, language, company, position, description)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			snowflake.NextID(),
			experienceID,
			t.Language,
			t.Company,
			t.Position,
			t.Description,
		)
		if err != nil {
			return fmt.Errorf("insert experience translation %q: %w", t.Language, err)
		}
	}
	return nil
}

func loadExperienceTranslations(ctx context.Context, q dbtx, where string, args []any, languages []string) (map[int64][]model.ExperienceTranslation, error) {
	langClause, langArgs := languageFilter("t.language", languages)
	rows, err := q.QueryContext(
		ctx,
		`SELECT t.experience_id, t.language, t.company, t.position, t.description
		 FROM experience_translations t JOIN experiences e ON e.id = t.experience_id
		 WHERE 1 = 1`+where+langClause+`
		 ORDER BY t.id`,
		append(append([]any{}, args...), langArgs...)...,
	)
	if err != nil {
		return nil, fmt.Errorf("list experience translations: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]model.ExperienceTranslation)
	for rows.Next() {
		var experienceID int64
		var t model.ExperienceTranslation
		if err := rows.Scan(&experienceID, &t.Language, &t.Company, &t.Position, &t.Description); err != nil {
			return nil, fmt.Errorf("scan experience translation: %w", err)
		}
		result[experienceID] = append(result[experienceID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experience translations: %w", err)
	}
	return result, nil
}

func scanExperience(row rowScanner) (model.Experience, error) {
	var e model.Experience
	var startDate string
	var endDate sql.NullString
	var current int
	var technologies string
	var createdAt, updatedAt string
	if err := row.Scan(&e.ID, &startDate, &endDate, &current, &technologies, &createdAt, &updatedAt); err != nil {
		return model.Experience{}, err
	}

	var err error
	e.Current = current == 1
	if e.StartDate, err = parseDate(startDate); err != nil {
		return model.Experience{}, fmt.Errorf("parse experience start_date: %w", err)
	}
	if e.EndDate, err = datePtr(endDate); err != nil {
		return model.Experience{}, fmt.Errorf("parse experience end_date: %w", err)
	}
	if e.Technologies, err = decodeStrings(technologies); err != nil {
		return model.Experience{}, fmt.Errorf("decode technologies: %w", err)
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Experience{}, fmt.Errorf("parse experience created_at: %w", err)
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Experience{}, fmt.Errorf("parse experience updated_at: %w", err)
	}
	return e, nil
}
