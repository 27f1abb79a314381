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

// LocalizedProject is a project flattened onto one translation.
type LocalizedProject struct {
	ID           int64
	Language     string
	Title        string
	Description  string
	ImageURL     *string
	Technologies []string
	GithubURL    *string
	LiveURL      *string
	Featured     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProjectInput struct {
	ImageURL     *string
	Technologies []string
	GithubURL    *string
	LiveURL      *string
	Featured     bool
	Translations []model.ProjectTranslation
}

// ProjectPatch updates only the fields that are set. A non-nil Translations
// replaces the whole translation set.
type ProjectPatch struct {
	ImageURL     Optional[string]
	Technologies []string
	GithubURL    Optional[string]
	LiveURL      Optional[string]
	Featured     *bool
	Translations []model.ProjectTranslation
}

type ProjectService interface {
	List(ctx context.Context, lang string) ([]LocalizedProject, error)
	ListFeatured(ctx context.Context, lang string) ([]LocalizedProject, error)
	Get(ctx context.Context, id int64, lang string) (LocalizedProject, error)
	// GetWithTranslations returns the project with every stored translation.
	GetWithTranslations(ctx context.Context, id int64) (model.Project, error)
	Create(ctx context.Context, input ProjectInput) (model.Project, error)
	Update(ctx context.Context, id int64, patch ProjectPatch) (model.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	projects repository.ProjectRepository
	policy   TranslationPolicy
}

func NewProjectService(projects repository.ProjectRepository, policy TranslationPolicy) ProjectService {
	return &projectService{projects: projects, policy: policy}
}

func projectParts(p model.Project) (int64, []model.ProjectTranslation) {
	return p.ID, p.Translations
}

func newLocalizedProject(l localized[model.Project, model.ProjectTranslation]) LocalizedProject {
	p := l.record
	return LocalizedProject{
		ID:           p.ID,
		Language:     l.translation.Language,
		Title:        l.translation.Title,
		Description:  l.translation.Description,
		ImageURL:     p.ImageURL,
		Technologies: p.Technologies,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (s *projectService) List(ctx context.Context, lang string) ([]LocalizedProject, error) {
	return s.list(ctx, lang, false)
}

func (s *projectService) ListFeatured(ctx context.Context, lang string) ([]LocalizedProject, error) {
	return s.list(ctx, lang, true)
}

func (s *projectService) list(ctx context.Context, lang string, featuredOnly bool) ([]LocalizedProject, error) {
	projects, err := s.projects.List(ctx, repository.ProjectFilter{
		FeaturedOnly: featuredOnly,
		Languages:    s.policy.lookupLanguages(lang),
	})
	if err != nil {
		return nil, err
	}

	items, err := localizeAll(s.policy, "project", lang, projects, projectParts)
	if err != nil {
		return nil, err
	}
	result := make([]LocalizedProject, 0, len(items))
	for _, item := range items {
		result = append(result, newLocalizedProject(item))
	}
	return result, nil
}

func (s *projectService) Get(ctx context.Context, id int64, lang string) (LocalizedProject, error) {
	project, err := s.projects.GetByID(ctx, id, s.policy.lookupLanguages(lang))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LocalizedProject{}, ErrNotFound
		}
		return LocalizedProject{}, err
	}

	item, err := localizeOne(s.policy, "project", lang, project, projectParts)
	if err != nil {
		return LocalizedProject{}, err
	}
	return newLocalizedProject(item), nil
}

func (s *projectService) GetWithTranslations(ctx context.Context, id int64) (model.Project, error) {
	project, err := s.projects.GetByID(ctx, id, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, ErrNotFound
		}
		return model.Project{}, err
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, input ProjectInput) (model.Project, error) {
	project := model.Project{
		Technologies: normalizeTechnologies(input.Technologies),
		Featured:     input.Featured,
	}

	var err error
	if project.ImageURL, err = optionalURL(input.ImageURL, "imageUrl"); err != nil {
		return model.Project{}, err
	}
	if project.GithubURL, err = optionalURL(input.GithubURL, "githubUrl"); err != nil {
		return model.Project{}, err
	}
	if project.LiveURL, err = optionalURL(input.LiveURL, "liveUrl"); err != nil {
		return model.Project{}, err
	}
	if project.Translations, err = normalizeProjectTranslations(input.Translations); err != nil {
		return model.Project{}, err
	}

	return s.projects.Create(ctx, project)
}

func (s *projectService) Update(ctx context.Context, id int64, patch ProjectPatch) (model.Project, error) {
	project, err := s.projects.GetByID(ctx, id, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, ErrNotFound
		}
		return model.Project{}, fmt.Errorf("get project: %w", err)
	}

	if project.ImageURL, err = optionalURL(apply(project.ImageURL, patch.ImageURL), "imageUrl"); err != nil {
		return model.Project{}, err
	}
	if project.GithubURL, err = optionalURL(apply(project.GithubURL, patch.GithubURL), "githubUrl"); err != nil {
		return model.Project{}, err
	}
	if project.LiveURL, err = optionalURL(apply(project.LiveURL, patch.LiveURL), "liveUrl"); err != nil {
		return model.Project{}, err
	}
	if patch.Technologies != nil {
		project.Technologies = normalizeTechnologies(patch.Technologies)
	}
	if patch.Featured != nil {
		project.Featured = *patch.Featured
	}

	var translations []model.ProjectTranslation
	if patch.Translations != nil {
		if translations, err = normalizeProjectTranslations(patch.Translations); err != nil {
			return model.Project{}, err
		}
	}

	updated, err := s.projects.Update(ctx, project, translations)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, ErrNotFound
		}
		return model.Project{}, err
	}
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func normalizeProjectTranslations(input []model.ProjectTranslation) ([]model.ProjectTranslation, error) {
	if len(input) == 0 {
		return nil, invalidf("at least one translation is required")
	}
	result := make([]model.ProjectTranslation, 0, len(input))
	for _, t := range input {
		var err error
		t.Language = normalizeLanguage(t.Language)
		if t.Title, err = required(t.Title, "title"); err != nil {
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
