package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html"
	"net/mail"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"portfolio/backend/internal/logger"
	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
)

// notifyTimeout bounds a single notification attempt.
const notifyTimeout = 10 * time.Second

// ContactNotifier announces new contact messages to the operator.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, contact model.Contact) error
}

type ContactInput struct {
	Name    string
	Email   string
	Subject *string
	Message string
}

type ContactPatch struct {
	Name    *string
	Email   *string
	Subject Optional[string]
	Message *string
}

type ContactService interface {
	// Create stores a message from a site visitor and notifies the operator
	// in the background.
	Create(ctx context.Context, input ContactInput) (model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id int64) (model.Contact, error)
	Update(ctx context.Context, id int64, patch ContactPatch) (model.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status string) (model.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactService struct {
	contacts  repository.ContactRepository
	notifier  ContactNotifier
	sanitizer *bluemonday.Policy
}

// NewContactService creates a contact service. notifier may be nil.
func NewContactService(contacts repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactService{
		contacts:  contacts,
		notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *contactService) Create(ctx context.Context, input ContactInput) (model.Contact, error) {
	contact := model.Contact{Status: model.ContactStatusNew}

	var err error
	if contact.Name, err = required(s.clean(input.Name), "name"); err != nil {
		return model.Contact{}, err
	}
	if contact.Email, err = validEmail(input.Email); err != nil {
		return model.Contact{}, err
	}
	if contact.Message, err = required(s.clean(input.Message), "message"); err != nil {
		return model.Contact{}, err
	}
	contact.Subject = s.cleanOptional(input.Subject)

	created, err := s.contacts.Create(ctx, contact)
	if err != nil {
		return model.Contact{}, err
	}
	logger.Info("contact received", "module", "service", "action", "create", "resource", "contact", "result", "ok", "contact_id", created.ID)

	s.notify(created)
	return created, nil
}

// notify fires a single notification attempt that never affects the caller.
func (s *contactService) notify(contact model.Contact) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifyContact(ctx, contact); err != nil {
			logger.Warn("contact notification failed", "module", "service", "action", "notify", "resource", "contact", "result", "failed", "contact_id", contact.ID, "error", err)
			return
		}
		logger.Debug("contact notification sent", "module", "service", "action", "notify", "resource", "contact", "result", "ok", "contact_id", contact.ID)
	}()
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *contactService) Get(ctx context.Context, id int64) (model.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Contact{}, ErrNotFound
		}
		return model.Contact{}, err
	}
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, id int64, patch ContactPatch) (model.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Contact{}, ErrNotFound
		}
		return model.Contact{}, fmt.Errorf("get contact: %w", err)
	}

	if patch.Name != nil {
		if contact.Name, err = required(s.clean(*patch.Name), "name"); err != nil {
			return model.Contact{}, err
		}
	}
	if patch.Email != nil {
		if contact.Email, err = validEmail(*patch.Email); err != nil {
			return model.Contact{}, err
		}
	}
	if patch.Message != nil {
		if contact.Message, err = required(s.clean(*patch.Message), "message"); err != nil {
			return model.Contact{}, err
		}
	}
	if patch.Subject.Set {
		contact.Subject = s.cleanOptional(patch.Subject.Value)
	}

	updated, err := s.contacts.Update(ctx, contact)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Contact{}, ErrNotFound
		}
		return model.Contact{}, err
	}
	return updated, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id int64, status string) (model.Contact, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !model.IsValidContactStatus(status) {
		return model.Contact{}, invalidf("status must be one of new, read, replied, archived")
	}

	updated, err := s.contacts.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Contact{}, ErrNotFound
		}
		return model.Contact{}, err
	}
	return updated, nil
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// clean strips markup from visitor text and keeps it as plain text.
func (s *contactService) clean(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(value)))
}

func (s *contactService) cleanOptional(value *string) *string {
	if value == nil {
		return nil
	}
	cleaned := s.clean(*value)
	return optionalText(&cleaned)
}

func validEmail(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", invalidf("email is required")
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", invalidf("email is invalid")
	}
	return trimmed, nil
}
