package model

import "time"

type Experience struct {
	ID           int64
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Technologies []string
	Translations []ExperienceTranslation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ExperienceTranslation struct {
	Language    string
	Company     string
	Position    string
	Description string
}

func (t ExperienceTranslation) Lang() string { return t.Language }
