package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/db"
	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/snowflake"
)

var initOnce sync.Once

// NewTestDB opens a migrated SQLite database in a temp dir that is closed
// when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	initOnce.Do(func() {
		if err := snowflake.Init(1); err != nil {
			panic(err)
		}
	})

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// SeedProject stores a project with one translation per language in titles.
func SeedProject(t *testing.T, database *sql.DB, featured bool, titles map[string]string) model.Project {
	t.Helper()
	project := model.Project{Featured: featured, Technologies: []string{"go"}}
	for lang, title := range titles {
		project.Translations = append(project.Translations, model.ProjectTranslation{
			Language:    lang,
			Title:       title,
			Description: title + " description",
		})
	}
	created, err := repository.NewProjectRepository(database).Create(context.Background(), project)
	require.NoError(t, err)
	return created
}

// SeedExperience stores an experience starting at start with one translation
// per language in companies.
func SeedExperience(t *testing.T, database *sql.DB, start time.Time, current bool, companies map[string]string) model.Experience {
	t.Helper()
	experience := model.Experience{StartDate: start, Current: current, Technologies: []string{}}
	for lang, company := range companies {
		experience.Translations = append(experience.Translations, model.ExperienceTranslation{
			Language:    lang,
			Company:     company,
			Position:    "Engineer",
			Description: company + " description",
		})
	}
	created, err := repository.NewExperienceRepository(database).Create(context.Background(), experience)
	require.NoError(t, err)
	return created
}

// SeedContact stores a contact with the given status.
func SeedContact(t *testing.T, database *sql.DB, name, status string) model.Contact {
	t.Helper()
	created, err := repository.NewContactRepository(database).Create(context.Background(), model.Contact{
		Name:    name,
		Email:   "sender@example.com",
		Message: "hello from " + name,
		Status:  status,
	})
	require.NoError(t, err)
	return created
}
