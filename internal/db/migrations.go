package db

import (
	"database/sql"
	"fmt"
)

// Ids are snowflake values assigned by the application, so no AUTOINCREMENT.
const baseSchema = `
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
  id INTEGER PRIMARY KEY,
  image_url TEXT,
  technologies TEXT NOT NULL DEFAULT '[]',
  github_url TEXT,
  live_url TEXT,
  featured INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at);

CREATE TABLE IF NOT EXISTS project_translations (
  id INTEGER PRIMARY KEY,
  project_id INTEGER NOT NULL,
  language TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_project_translations_lang ON project_translations(project_id, language);

CREATE TABLE IF NOT EXISTS experiences (
  id INTEGER PRIMARY KEY,
  start_date TEXT NOT NULL,
  end_date TEXT,
  current INTEGER NOT NULL DEFAULT 0,
  technologies TEXT NOT NULL DEFAULT '[]',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_experiences_start_date ON experiences(start_date);

CREATE TABLE IF NOT EXISTS experience_translations (
  id INTEGER PRIMARY KEY,
  experience_id INTEGER NOT NULL,
  language TEXT NOT NULL,
  company TEXT NOT NULL,
  position TEXT NOT NULL,
  description TEXT NOT NULL,
  FOREIGN KEY (experience_id) REFERENCES experiences(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_experience_translations_lang ON experience_translations(experience_id, language);

CREATE TABLE IF NOT EXISTS educations (
  id INTEGER PRIMARY KEY,
  start_date TEXT NOT NULL,
  end_date TEXT,
  current INTEGER NOT NULL DEFAULT 0,
  grade TEXT,
  website TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_educations_start_date ON educations(start_date);

CREATE TABLE IF NOT EXISTS education_translations (
  id INTEGER PRIMARY KEY,
  education_id INTEGER NOT NULL,
  language TEXT NOT NULL,
  institution TEXT NOT NULL,
  degree TEXT NOT NULL,
  field TEXT NOT NULL,
  description TEXT,
  FOREIGN KEY (education_id) REFERENCES educations(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_education_translations_lang ON education_translations(education_id, language);

CREATE TABLE IF NOT EXISTS contacts (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  subject TEXT,
  message TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'new',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts(status);
CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts(created_at);
`

// Migrate creates the schema. Every statement is idempotent, so it runs on
// each start.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	return nil
}
