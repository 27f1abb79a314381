package model

import "time"

type Education struct {
	ID           int64
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Grade        *string
	Website      *string
	Translations []EducationTranslation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type EducationTranslation struct {
	Language    string
	Institution string
	Degree      string
	Field       string
	Description *string
}

func (t EducationTranslation) Lang() string { return t.Language }
