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

// LocalizedEducation is an education record flattened onto one translation.
type LocalizedEducation struct {
	ID          int64
	Language    string
	Institution string
	Degree      string
	Field       string
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	Grade       *string
	Website     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EducationInput struct {
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Grade        *string
	Website      *string
	Translations []model.EducationTranslation
}

type EducationPatch struct {
	StartDate    *time.Time
	EndDate      Optional[time.Time]
	Current      *bool
	Grade        Optional[string]
	Website      Optional[string]
	Translations []model.EducationTranslation
}

type EducationService interface {
	List(ctx context.Context, lang string) ([]LocalizedEducation, error)
	ListCurrent(ctx context.Context, lang string) ([]LocalizedEducation, error)
	Get(ctx context.Context, id int64, lang string) (LocalizedEducation, error)
	GetWithTranslations(ctx context.Context, id int64) (model.Education, error)
	Create(ctx context.Context, input EducationInput) (model.Education, error)
	Update(ctx context.Context, id int64, patch EducationPatch) (model.Education, error)
	Delete(ctx context.Context, id int64) error
}

type educationService struct {
	educations repository.EducationRepository
	policy     TranslationPolicy
}

func NewEducationService(educations repository.EducationRepository, policy TranslationPolicy) EducationService {
	return &educationService{educations: educations, policy: policy}
}

func educationParts(e model.Education) (int64, []model.EducationTranslation) {
	return e.ID, e.Translations
}

func newLocalizedEducation(l localized[model.Education, model.EducationTranslation]) LocalizedEducation {
	e := l.record
	return LocalizedEducation{
		ID:          e.ID,
		Language:    l.translation.Language,
		Institution: l.translation.Institution,
		Degree:      l.translation.Degree,
		Field:       l.translation.Field,
		Description: l.translation.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Current:     e.Current,
		Grade:       e.Grade,
		Website:     e.Website,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (s *educationService) List(ctx context.Context, lang string) ([]LocalizedEducation, error) {
	return s.list(ctx, lang, false)
}

func (s *educationService) ListCurrent(ctx context.Context, lang string) ([]LocalizedEducation, error) {
	return s.list(ctx, lang, true)
}

func (s *educationService) list(ctx context.Context, lang string, currentOnly bool) ([]LocalizedEducation, error) {
	educations, err := s.educations.List(ctx, repository.EducationFilter{
		CurrentOnly: currentOnly,
		Languages:   s.policy.lookupLanguages(lang),
	})
	if err != nil {
		return nil, err
	}

	items, err := localizeAll(s.policy, "education", lang, educations, educationParts)
	if err != nil {
		return nil, err
	}
	result := make([]LocalizedEducation, 0, len(items))
	for _, item := range items {
		result = append(result, newLocalizedEducation(item))
	}
	return result, nil
}

func (s *educationService) Get(ctx context.Context, id int64, lang string) (LocalizedEducation, error) {
	education, err := s.educations.GetByID(ctx, id, s.policy.lookupLanguages(lang))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LocalizedEducation{}, ErrNotFound
		}
		return LocalizedEducation{}, err
	}

	item, err := localizeOne(s.policy, "education", lang, education, educationParts)
	if err != nil {
		return LocalizedEducation{}, err
	}
	return newLocalizedEducation(item), nil
}

func (s *educationService) GetWithTranslations(ctx context.Context, id int64) (model.Education, error) {
	education, err := s.educations.GetByID(ctx, id, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Education{}, ErrNotFound
		}
		return model.Education{}, err
	}
	return education, nil
}

func (s *educationService) Create(ctx context.Context, input EducationInput) (model.Education, error) {
	if err := checkPeriod(input.StartDate, input.EndDate); err != nil {
		return model.Education{}, err
	}
	website, err := optionalURL(input.Website, "website")
	if err != nil {
		return model.Education{}, err
	}
	translations, err := normalizeEducationTranslations(input.Translations)
	if err != nil {
		return model.Education{}, err
	}

	return s.educations.Create(ctx, model.Education{
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Current:      input.Current,
		Grade:        optionalText(input.Grade),
		Website:      website,
		Translations: translations,
	})
}

func (s *educationService) Update(ctx context.Context, id int64, patch EducationPatch) (model.Education, error) {
	education, err := s.educations.GetByID(ctx, id, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Education{}, ErrNotFound
		}
		return model.Education{}, fmt.Errorf("get education: %w", err)
	}

	if patch.StartDate != nil {
		education.StartDate = *patch.StartDate
	}
	education.EndDate = apply(education.EndDate, patch.EndDate)
	if patch.Current != nil {
		education.Current = *patch.Current
	}
	education.Grade = optionalText(apply(education.Grade, patch.Grade))
	if education.Website, err = optionalURL(apply(education.Website, patch.Website), "website"); err != nil {
		return model.Education{}, err
	}
	if err := checkPeriod(education.StartDate, education.EndDate); err != nil {
		return model.Education{}, err
	}

	var translations []model.EducationTranslation
	if patch.Translations != nil {
		if translations, err = normalizeEducationTranslations(patch.Translations); err != nil {
			return model.Education{}, err
		}
	}

	updated, err := s.educations.Update(ctx, education, translations)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Education{}, ErrNotFound
		}
		return model.Education{}, err
	}
	return updated, nil
}

func (s *educationService) Delete(ctx context.Context, id int64) error {
	if err := s.educations.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func normalizeEducationTranslations(input []model.EducationTranslation) ([]model.EducationTranslation, error) {
	if len(input) == 0 {
		return nil, invalidf("at least one translation is required")
	}
	result := make([]model.EducationTranslation, 0, len(input))
	for _, t := range input {
		var err error
		t.Language = normalizeLanguage(t.Language)
		if t.Institution, err = required(t.Institution, "institution"); err != nil {
			return nil, err
		}
		if t.Degree, err = required(t.Degree, "degree"); err != nil {
			return nil, err
		}
		if t.Field, err = required(t.Field, "field"); err != nil {
			return nil, err
		}
		t.Description = optionalText(t.Description)
		result = append(result, t)
	}
	if err := checkLanguages(result); err != nil {
		return nil, err
	}
	return result, nil
}
