package repository

//go:generate mockgen -source=education_repository.go -destination=mock/education_repository.go -package=mock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/snowflake"
)

type EducationFilter struct {
	CurrentOnly bool
	Languages   []string
}

type EducationRepository interface {
	Create(ctx context.Context, education model.Education) (model.Education, error)
	GetByID(ctx context.Context, id int64, languages []string) (model.Education, error)
	List(ctx context.Context, filter EducationFilter) ([]model.Education, error)
	Update(ctx context.Context, education model.Education, translations []model.EducationTranslation) (model.Education, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type educationRepository struct {
	db *sql.DB
}

func NewEducationRepository(db *sql.DB) EducationRepository {
	return &educationRepository{db: db}
}

const educationColumns = `id, start_date, end_date, current, grade, website, created_at, updated_at`

func (r *educationRepository) Create(ctx context.Context, education model.Education) (model.Education, error) {
	education.ID = snowflake.NextID()
	education.StartDate = calendarDate(education.StartDate)
	education.EndDate = calendarDatePtr(education.EndDate)
	now := time.Now().UTC()
	education.CreatedAt = now
	education.UpdatedAt = now

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO educations (id, start_date, end_date, current, grade, website, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			education.ID,
			formatDate(education.StartDate),
			nullableDate(education.EndDate),
			boolToInt(education.Current),
			nullableString(education.Grade),
			nullableString(education.Website),
			formatTime(now),
			formatTime(now),
		)
		if err != nil {
			return err
		}
		return insertEducationTranslations(ctx, tx, education.ID, education.Translations)
	})
	if err != nil {
		return model.Education{}, fmt.Errorf("create education: %w", err)
	}

	if education.Translations == nil {
		education.Translations = []model.EducationTranslation{}
	}
	return education, nil
}

func (r *educationRepository) GetByID(ctx context.Context, id int64, languages []string) (model.Education, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+educationColumns+` FROM educations WHERE id = ?`, id)
	education, err := scanEducation(row)
	if err != nil {
		return model.Education{}, fmt.Errorf("get education: %w", err)
	}

	translations, err := loadEducationTranslations(ctx, r.db, ` AND t.education_id = ?`, []any{id}, languages)
	if err != nil {
		return model.Education{}, err
	}
	education.Translations = translations[id]
	if education.Translations == nil {
		education.Translations = []model.EducationTranslation{}
	}
	return education, nil
}

func (r *educationRepository) List(ctx context.Context, filter EducationFilter) ([]model.Education, error) {
	where := ""
	if filter.CurrentOnly {
		where = ` AND ed.current = 1`
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+educationColumns+` FROM educations ed WHERE 1 = 1`+where+` ORDER BY ed.start_date DESC, ed.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list educations: %w", err)
	}
	defer rows.Close()

	var educations []model.Education
	for rows.Next() {
		education, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan education: %w", err)
		}
		educations = append(educations, education)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate educations: %w", err)
	}

	translations, err := loadEducationTranslations(ctx, r.db, where, nil, filter.Languages)
	if err != nil {
		return nil, err
	}
	for i := range educations {
		educations[i].Translations = translations[educations[i].ID]
		if educations[i].Translations == nil {
			educations[i].Translations = []model.EducationTranslation{}
		}
	}

	return educations, nil
}

func (r *educationRepository) Update(ctx context.Context, education model.Education, translations []model.EducationTranslation) (model.Education, error) {
	education.StartDate = calendarDate(education.StartDate)
	education.EndDate = calendarDatePtr(education.EndDate)

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(
			ctx,
			`UPDATE educations SET start_date = ?, end_date = ?, current = ?, grade = ?, website = ?, updated_at = ?
			 WHERE id = ?`,
			formatDate(education.StartDate),
			nullableDate(education.EndDate),
			boolToInt(education.Current),
			nullableString(education.Grade),
			nullableString(education.Website),
			formatTime(time.Now()),
			education.ID,
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
		if _, err := tx.ExecContext(ctx, `DELETE FROM education_translations WHERE education_id = ?`, education.ID); err != nil {
			return err
		}
		return insertEducationTranslations(ctx, tx, education.ID, translations)
	})
	if err != nil {
		return model.Education{}, fmt.Errorf("update education: %w", err)
	}

	return r.GetByID(ctx, education.ID, nil)
}

func (r *educationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM educations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete education: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("delete education: %w", err)
	}
	return nil
}

func (r *educationRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM educations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count educations: %w", err)
	}
	return count, nil
}

func insertEducationTranslations(ctx context.Context, q dbtx, educationID int64, translations []model.EducationTranslation) error {
	for _, t := range translations {
		_, err := q.ExecContext(
			ctx,
			`INSERT INTO education_translations (id, education_id, language, institution, degree, field, description)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			snowflake.NextID(),
			educationID,
			t.Language,
			t.Institution,
			t.Degree,
			t.Field,
			nullableString(t.Description),
		)
		if err != nil {
			return fmt.Errorf("insert education translation %q: %w", t.Language, err)
		}
	}
	return nil
}

func loadEducationTranslations(ctx context.Context, q dbtx, where string, args []any, languages []string) (map[int64][]model.EducationTranslation, error) {
	langClause, langArgs := languageFilter("t.language", languages)
	rows, err := q.QueryContext(
		ctx,
		`SELECT t.education_id, t.language, t.institution, t.degree, t.field, t.description
		 FROM education_translations t JOIN educations ed ON ed.id = t.education_id
		 WHERE 1 = 1`+where+langClause+`
		 ORDER BY t.id`,
		append(append([]any{}, args...), langArgs...)...,
	)
	if err != nil {
		return nil, fmt.Errorf("list education translations: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]model.EducationTranslation)
	for rows.Next() {
		var educationID int64
		var t model.EducationTranslation
		var description sql.NullString
		if err := rows.Scan(&educationID, &t.Language, &t.Institution, &t.Degree, &t.Field, &description); err != nil {
			return nil, fmt.Errorf("scan education translation: %w", err)
		}
		t.Description = stringPtr(description)
		result[educationID] = append(result[educationID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate education translations: %w", err)
	}
	return result, nil
}

func scanEducation(row rowScanner) (model.Education, error) {
	var ed model.Education
	var startDate string
	var endDate, grade, website sql.NullString
	var current int
	var createdAt, updatedAt string
	if err := row.Scan(&ed.ID, &startDate, &endDate, &current, &grade, &website, &createdAt, &updatedAt); err != nil {
		return model.Education{}, err
	}

	var err error
	ed.Current = current == 1
	ed.Grade = stringPtr(grade)
	ed.Website = stringPtr(website)
	if ed.StartDate, err = parseDate(startDate); err != nil {
		return model.Education{}, fmt.Errorf("parse education start_date: %w", err)
	}
	if ed.EndDate, err = datePtr(endDate); err != nil {
		return model.Education{}, fmt.Errorf("parse education end_date: %w", err)
	}
	if ed.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Education{}, fmt.Errorf("parse education created_at: %w", err)
	}
	if ed.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Education{}, fmt.Errorf("parse education updated_at: %w", err)
	}
	return ed, nil
}
