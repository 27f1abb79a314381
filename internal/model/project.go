package model

import "time"

type Project struct {
	ID           int64
	ImageURL     *string
	Technologies []string
	GithubURL    *string
	LiveURL      *string
	Featured     bool
	Translations []ProjectTranslation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProjectTranslation struct {
	Language    string
	Title       string
	Description string
}

func (t ProjectTranslation) Lang() string { return t.Language }
