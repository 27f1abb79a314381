package repository

//go:generate mockgen -source=contact_repository.go -destination=mock/contact_repository.go -package=mock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/snowflake"
)

type ContactRepository interface {
	Create(ctx context.Context, contact model.Contact) (model.Contact, error)
	GetByID(ctx context.Context, id int64) (model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	Update(ctx context.Context, contact model.Contact) (model.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status string) (model.Contact, error)
	Delete(ctx context.Context, id int64) error
	// Count returns the number of contacts, optionally restricted to one status.
	Count(ctx context.Context, status *string) (int, error)
}

type contactRepository struct {
	db dbtx
}

func NewContactRepository(db dbtx) ContactRepository {
	return &contactRepository{db: db}
}

const contactColumns = `id, name, email, subject, message, status, created_at, updated_at`

func (r *contactRepository) Create(ctx context.Context, contact model.Contact) (model.Contact, error) {
	contact.ID = snowflake.NextID()
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	if contact.Status == "" {
		contact.Status = model.ContactStatusNew
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO contacts (id, name, email, subject, message, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		contact.ID,
		contact.Name,
		contact.Email,
		nullableString(contact.Subject),
		contact.Message,
		contact.Status,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (model.Contact, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)
	contact, err := scanContact(row)
	if err != nil {
		return model.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

func (r *contactRepository) Update(ctx context.Context, contact model.Contact) (model.Contact, error) {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE contacts SET name = ?, email = ?, subject = ?, message = ?, updated_at = ? WHERE id = ?`,
		contact.Name,
		contact.Email,
		nullableString(contact.Subject),
		contact.Message,
		formatTime(time.Now()),
		contact.ID,
	)
	if err != nil {
		return model.Contact{}, fmt.Errorf("update contact: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return model.Contact{}, fmt.Errorf("update contact: %w", err)
	}
	return r.GetByID(ctx, contact.ID)
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, status string) (model.Contact, error) {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE contacts SET status = ?, updated_at = ? WHERE id = ?`,
		status,
		formatTime(time.Now()),
		id,
	)
	if err != nil {
		return model.Contact{}, fmt.Errorf("update contact status: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return model.Contact{}, fmt.Errorf("update contact status: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

func (r *contactRepository) Count(ctx context.Context, status *string) (int, error) {
	query := `SELECT COUNT(*) FROM contacts`
	var args []any
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, *status)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return count, nil
}

func scanContact(row rowScanner) (model.Contact, error) {
	var c model.Contact
	var subject sql.NullString
	var createdAt, updatedAt string
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &subject, &c.Message, &c.Status, &createdAt, &updatedAt); err != nil {
		return model.Contact{}, err
	}

	var err error
	c.Subject = stringPtr(subject)
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Contact{}, fmt.Errorf("parse contact created_at: %w", err)
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Contact{}, fmt.Errorf("parse contact updated_at: %w", err)
	}
	return c, nil
}
