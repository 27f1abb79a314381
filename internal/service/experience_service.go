package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
)

// LocalizedExperience is an experience flattened onto one translation.
type LocalizedExperience struct {
	ID           int64
	Language     string
	Company      string
	Position     string
	Description  string
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Technologies []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ExperienceInput struct {
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Technologies []string
	Translations []model.ExperienceTranslation
}

type ExperiencePatch struct {
	StartDate    *time.Time
	EndDate      Optional[time.Time]
	Current      *bool
	Technologies []string
	Translations []model.ExperienceTranslation
}

type ExperienceService interface {
	List(ctx context.Context, lang string) ([]LocalizedExperience, error)
	ListCurrent(ctx context.Context, lang string) ([]LocalizedExperience, error)
	Get(ctx context.Context, id int64, lang string) (LocalizedExperience, error)
	GetWithTranslations(ctx context.Context, id int64) (model.Experience, error)
	Create(ctx context.Context, input ExperienceInput) (model.Experience, error)
	Update(ctx context.Context, id int64, patch ExperiencePatch) (model.Experience, error)
	Delete(ctx context.Context, id int64) error
}

type experienceService struct {
	experiences repository.ExperienceRepository
	policy      TranslationPolicy
}

func NewExperienceService(experiences repository.ExperienceRepository, policy TranslationPolicy) ExperienceService {
	return &experienceService{experiences: experiences, policy: policy}
}

func experienceParts(e model.Experience) (int64, []model.ExperienceTranslation) {
	return e.ID, e.Translations
}

func newLocalizedExperience(l localized[model.Experience, model.ExperienceTranslation]) LocalizedExperience {
	e := l.record
	return LocalizedExperience{
		ID:           e.ID,
		Language:     l.translation.Language,
		Company:      l.translation.Company,
		Position:     l.translation.Position,
		Description:  l.translation.Description,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Current:      e.Current,
		Technologies: e.Technologies,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (s *experienceService) List(ctx context.Context, lang string) ([]LocalizedExperience, error) {
	return s.list(ctx, lang, false)
}

func (s *experienceService) ListCurrent(ctx context.Context, lang string) ([]LocalizedExperience, error) {
	return s.list(ctx, lang, true)
}

func (s *experienceService) list(ctx context.Context, lang string, currentOnly bool) ([]LocalizedExperience, error) {
	experiences, err := s.experiences.List(ctx, repository.ExperienceFilter{
		CurrentOnly: currentOnly,
		Languages:   s.policy.lookupLanguages(lang),
	})
	if err != nil {
		return nil, err
	}

	items, err := localizeAll(s.policy, "experience", lang, experiences, experienceParts)
	if err != nil {
		return nil, err
	}
	result := make([]LocalizedExperience, 0, len(items))
	for _, item := range items {
		result = append(result, newLocalizedExperience(item))
	}
	return result, nil
}

func (s *experienceService) Get(ctx context.Context, id int64, lang string) (LocalizedExperience, error) {
	experience, err := s.experiences.GetByID(ctx, id, s.policy.lookupLanguages(lang))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LocalizedExperience{}, ErrNotFound
		}
		return LocalizedExperience{}, err
	}

	item, err := localizeOne(s.policy, "experience", lang, experience, experienceParts)
	if err != nil {
		return LocalizedExperience{}, err
	}
	return newLocalizedExperience(item), nil
}

func (s *experienceService) GetWithTranslations(ctx context.Context, id int64) (model.Experience, error) {
	experience, err := s.experiences.GetByID(ctx, id, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Experience{}, ErrNotFound
		}
		return model.Experience{}, err
	}
	return experience, nil
}

func (s *experienceService) Create(ctx context.Context, input ExperienceInput) (model.Experience, error) {
	if err := checkPeriod(input.StartDate, input.EndDate); err != nil {
		return model.Experience{}, err
	}
	translations, err := normalizeExperienceTranslations(input.Translations)
	if err != nil {
		return model.Experience{}, err
	}

	return s.experiences.Create(ctx, model.Experience{
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Current:      input.Current,
		Technologies: normalizeTechnologies(input.Technologies),
		Translations: translations,
	})
}

func (s *experienceService) Update(ctx context.Context, id int64, patch ExperiencePatch) (model.Experience, error) {
	experience, err := s.experiences.GetByID(ctx, id, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Experience{}, ErrNotFound
		}
		return model.Experience{}, fmt.Errorf("get experience: %w", err)
	}

	if patch.StartDate != nil {
		experience.StartDate = *patch.StartDate
	}
	experience.EndDate = apply(experience.EndDate, patch.EndDate)
	if patch.Current != nil {
		experience.Current = *patch.Current
	}
	if patch.Technologies != nil {
		experience.Technologies = normalizeTechnologies(patch.Technologies)
	}
	if err := checkPeriod(experience.StartDate, experience.EndDate); err != nil {
		return model.Experience{}, err
	}

	var translations []model.ExperienceTranslation
	if patch.Translations != nil {
		if translations, err = normalizeExperienceTranslations(patch.Translations); err != nil {
			return model.Experience{}, err
		}
	}

	updated, err := s.experiences.Update(ctx, experience, translations)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Experience{}, ErrNotFound
		}
		return model.Experience{}, err
	}
	return updated, nil
}

func (s *experienceService) Delete(ctx context.Context, id int64) error {
	if err := s.experiences.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func normalizeExperienceTranslations(input []model.ExperienceTranslation) ([]model.ExperienceTranslation, error) {
	if len(input) == 0 {
		return nil, invalidf("at least one translation is required")
	}
	result := make([]model.ExperienceTranslation, 0, len(input))
	for _, t := range input {
		var err error
		t.Language = normalizeLanguage(t.Language)
		if t.Company, err = required(t.Company, "company"); err != nil {
			return nil, err
		}
		if t.Position, err = required(t.Position, "position"); err != nil {
			return nil, err
		}
		if t.Description, err = required(t.Description, "description"); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := checkLanguages(result); err != nil {
		return nil, err
	}
	return result, nil
}
