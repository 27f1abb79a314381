package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
)

// Summary holds the record counts shown on the admin dashboard.
type Summary struct {
	Projects    int
	Experiences int
	Educations  int
	Contacts    int
	NewContacts int
}

type SummaryService interface {
	Summary(ctx context.Context) (Summary, error)
}

type summaryService struct {
	projects    repository.ProjectRepository
	experiences repository.ExperienceRepository
	educations  repository.EducationRepository
	contacts    repository.ContactRepository
}

func NewSummaryService(
	projects repository.ProjectRepository,
	experiences repository.ExperienceRepository,
	educations repository.EducationRepository,
	contacts repository.ContactRepository,
) SummaryService {
	return &summaryService{
		projects:    projects,
		experiences: experiences,
		educations:  educations,
		contacts:    contacts,
	}
}

func (s *summaryService) Summary(ctx context.Context) (Summary, error) {
	var summary Summary
	newStatus := model.ContactStatusNew

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary.Projects, err = s.projects.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Experiences, err = s.experiences.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Educations, err = s.educations.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Contacts, err = s.contacts.Count(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		summary.NewContacts, err = s.contacts.Count(gctx, &newStatus)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
