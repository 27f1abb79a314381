// Command seed fills an empty database with sample portfolio content in every
// supported language.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"portfolio/backend/internal/config"
	"portfolio/backend/internal/db"
	"portfolio/backend/internal/logger"
	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/service"
	"portfolio/backend/internal/snowflake"
)

func main() {
	force := flag.Bool("force", false, "seed even when projects already exist")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel), logger.ParseFormat(cfg.LogFormat))
	if err := snowflake.Init(cfg.SnowflakeNode); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	ctx := context.Background()
	projectRepo := repository.NewProjectRepository(dbConn)
	count, err := projectRepo.Count(ctx)
	if err != nil {
		log.Fatalf("count projects: %v", err)
	}
	if count > 0 && !*force {
		logger.Info("database already has content", "module", "seed", "action", "seed", "resource", "database", "result", "skipped", "projects", count)
		return
	}

	projects := service.NewProjectService(projectRepo, service.PolicyStrict)
	experiences := service.NewExperienceService(repository.NewExperienceRepository(dbConn), service.PolicyStrict)
	educations := service.NewEducationService(repository.NewEducationRepository(dbConn), service.PolicyStrict)

	for _, input := range sampleProjects() {
		p, err := projects.Create(ctx, input)
		if err != nil {
			log.Fatalf("seed project: %v", err)
		}
		logger.Info("project seeded", "module", "seed", "action", "create", "resource", "project", "result", "ok", "id", p.ID)
	}
	for _, input := range sampleExperiences() {
		e, err := experiences.Create(ctx, input)
		if err != nil {
			log.Fatalf("seed experience: %v", err)
		}
		logger.Info("experience seeded", "module", "seed", "action", "create", "resource", "experience", "result", "ok", "id", e.ID)
	}
	for _, input := range sampleEducation() {
		e, err := educations.Create(ctx, input)
		if err != nil {
			log.Fatalf("seed education: %v", err)
		}
		logger.Info("education seeded", "module", "seed", "action", "create", "resource", "education", "result", "ok", "id", e.ID)
	}
}

func ptr[T any](v T) *T { return &v }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func sampleProjects() []service.ProjectInput {
	return []service.ProjectInput{
		{
			Technologies: []string{"React", "TypeScript", "Tailwind CSS", "Vite", "Go", "SQLite", "Swagger"},
			GithubURL:    ptr("https://github.com/example/portfolio"),
			LiveURL:      ptr("https://example.com"),
			Featured:     true,
			Translations: []model.ProjectTranslation{
				{Language: "en", Title: "Portfolio Website", Description: "A multilingual portfolio website with an admin panel."},
				{Language: "ru", Title: "Сайт-портфолио", Description: "Многоязычный сайт-портфолио с панелью администратора."},
				{Language: "az", Title: "Portfolio saytı", Description: "İdarəetmə paneli olan çoxdilli portfolio saytı."},
			},
		},
		{
			Technologies: []string{"Go", "PostgreSQL", "Docker"},
			GithubURL:    ptr("https://github.com/example/ecommerce-api"),
			Featured:     true,
			Translations: []model.ProjectTranslation{
				{Language: "en", Title: "E-commerce API", Description: "RESTful API for an e-commerce platform."},
				{Language: "ru", Title: "API интернет-магазина", Description: "REST API для платформы электронной коммерции."},
				{Language: "az", Title: "E-ticarət API", Description: "E-ticarət platforması üçün REST API."},
			},
		},
	}
}

func sampleExperiences() []service.ExperienceInput {
	return []service.ExperienceInput{
		{
			StartDate:    day(2022, time.January, 1),
			Current:      true,
			Technologies: []string{"React", "Go", "PostgreSQL", "AWS"},
			Translations: []model.ExperienceTranslation{
				{Language: "en", Company: "Tech Company Inc.", Position: "Senior Full Stack Developer", Description: "Led development of web applications."},
				{Language: "ru", Company: "Tech Company Inc.", Position: "Старший fullstack-разработчик", Description: "Руководил разработкой веб-приложений."},
				{Language: "az", Company: "Tech Company Inc.", Position: "Baş full stack developer", Description: "Veb tətbiqlərin hazırlanmasına rəhbərlik etdi."},
			},
		},
		{
			StartDate:    day(2020, time.June, 1),
			EndDate:      ptr(day(2021, time.December, 31)),
			Technologies: []string{"React", "Vue.js", "JavaScript", "CSS"},
			Translations: []model.ExperienceTranslation{
				{Language: "en", Company: "Aseto Group", Position: "Full Stack Developer", Description: "Built interfaces for mobile and web applications."},
				{Language: "ru", Company: "Aseto Group", Position: "Fullstack-разработчик", Description: "Разрабатывал интерфейсы мобильных и веб-приложений."},
				{Language: "az", Company: "Aseto Group", Position: "Full stack developer", Description: "Mobil və veb tətbiqlər üçün interfeyslər hazırladı."},
			},
		},
	}
}

func sampleEducation() []service.EducationInput {
	return []service.EducationInput{
		{
			StartDate: day(2016, time.September, 1),
			EndDate:   ptr(day(2020, time.June, 30)),
			Website:   ptr("https://example.edu"),
			Translations: []model.EducationTranslation{
				{Language: "en", Institution: "State University", Degree: "Bachelor", Field: "Computer Science"},
				{Language: "ru", Institution: "Государственный университет", Degree: "Бакалавр", Field: "Информатика"},
				{Language: "az", Institution: "Dövlət Universiteti", Degree: "Bakalavr", Field: "Kompüter elmləri"},
			},
		},
	}
}
