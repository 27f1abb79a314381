package model

import "time"

// Contact statuses an operator can move a message through.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

type Contact struct {
	ID        int64
	Name      string
	Email     string
	Subject   *string
	Message   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidContactStatus reports whether status is one of the known contact statuses.
func IsValidContactStatus(status string) bool {
	switch status {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}
