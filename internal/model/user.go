package model

import "time"

// User is the operator account allowed to edit content. It is seeded from
// configuration; there is no self-registration.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
