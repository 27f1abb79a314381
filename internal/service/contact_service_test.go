package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository/mock"
	"portfolio/backend/internal/service"
)

// blockingNotifier records calls and holds each one until release is closed.
type blockingNotifier struct {
	calls   chan model.Contact
	release chan struct{}
	err     error
}

func newBlockingNotifier(err error) *blockingNotifier {
	return &blockingNotifier{
		calls:   make(chan model.Contact, 10),
		release: make(chan struct{}),
		err:     err,
	}
}

func (n *blockingNotifier) NotifyContact(ctx context.Context, contact model.Contact) error {
	n.calls <- contact
	select {
	case <-n.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return n.err
}

func TestContactService_Create_PersistsAndNotifiesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContacts := mock.NewMockContactRepository(ctrl)
	notifier := newBlockingNotifier(nil)
	svc := service.NewContactService(mockContacts, notifier)
	ctx := context.Background()

	mockContacts.EXPECT().
		Create(ctx, model.Contact{
			Name:    "Ann",
			Email:   "ann@example.com",
			Subject: stringPtr("Hello"),
			Message: "Nice site & good work",
			Status:  model.ContactStatusNew,
		}).
		DoAndReturn(func(_ context.Context, c model.Contact) (model.Contact, error) {
			c.ID = 99
			return c, nil
		})

	done := make(chan struct{})
	var created model.Contact
	var err error
	go func() {
		defer close(done)
		created, err = svc.Create(ctx, service.ContactInput{
			Name:    " Ann ",
			Email:   "ann@example.com",
			Subject: stringPtr("<b>Hello</b>"),
			Message: "Nice site & <i>good</i> work",
		})
	}()

	// Create returns while the notifier is still blocked.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Create blocked on notification")
	}
	require.NoError(t, err)
	require.Equal(t, int64(99), created.ID)
	require.Equal(t, model.ContactStatusNew, created.Status)

	select {
	case notified := <-notifier.calls:
		require.Equal(t, int64(99), notified.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not attempted")
	}
	close(notifier.release)

	select {
	case <-notifier.calls:
		t.Fatal("notification attempted more than once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestContactService_Create_NotifierFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContacts := mock.NewMockContactRepository(ctrl)
	notifier := newBlockingNotifier(errors.New("telegram down"))
	close(notifier.release)
	svc := service.NewContactService(mockContacts, notifier)
	ctx := context.Background()

	mockContacts.EXPECT().Create(ctx, gomock.Any()).Return(model.Contact{ID: 1, Status: model.ContactStatusNew}, nil)

	_, err := svc.Create(ctx, service.ContactInput{Name: "Bob", Email: "bob@example.com", Message: "Hi"})
	require.NoError(t, err)

	select {
	case <-notifier.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not attempted")
	}
}

func TestContactService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewContactService(mock.NewMockContactRepository(ctrl), nil)
	ctx := context.Background()

	cases := map[string]service.ContactInput{
		"missing name":    {Email: "a@example.com", Message: "m"},
		"markup only":     {Name: "<b></b>", Email: "a@example.com", Message: "m"},
		"missing email":   {Name: "A", Message: "m"},
		"invalid email":   {Name: "A", Email: "not-an-email", Message: "m"},
		"display address": {Name: "A", Email: "A <a@example.com>", Message: "m"},
		"missing message": {Name: "A", Email: "a@example.com"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, input)
			require.ErrorIs(t, err, service.ErrInvalid)
		})
	}
}

func TestContactService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContacts := mock.NewMockContactRepository(ctrl)
	svc := service.NewContactService(mockContacts, nil)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 1, "spam")
	require.ErrorIs(t, err, service.ErrInvalid)

	mockContacts.EXPECT().
		UpdateStatus(ctx, int64(1), model.ContactStatusReplied).
		Return(model.Contact{ID: 1, Status: model.ContactStatusReplied}, nil)
	updated, err := svc.UpdateStatus(ctx, 1, "Replied")
	require.NoError(t, err)
	require.Equal(t, model.ContactStatusReplied, updated.Status)

	mockContacts.EXPECT().
		UpdateStatus(ctx, int64(2), model.ContactStatusRead).
		Return(model.Contact{}, sql.ErrNoRows)
	_, err = svc.UpdateStatus(ctx, 2, "read")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestContactService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContacts := mock.NewMockContactRepository(ctrl)
	svc := service.NewContactService(mockContacts, nil)
	ctx := context.Background()

	stored := model.Contact{ID: 5, Name: "Ann", Email: "ann@example.com", Subject: stringPtr("Old"), Message: "Hi", Status: model.ContactStatusRead}
	mockContacts.EXPECT().GetByID(ctx, int64(5)).Return(stored, nil)
	mockContacts.EXPECT().
		Update(ctx, model.Contact{ID: 5, Name: "Ann", Email: "ann@example.org", Message: "Hi", Status: model.ContactStatusRead}).
		DoAndReturn(func(_ context.Context, c model.Contact) (model.Contact, error) { return c, nil })

	updated, err := svc.Update(ctx, 5, service.ContactPatch{
		Email:   stringPtr("ann@example.org"),
		Subject: service.Optional[string]{Set: true},
	})
	require.NoError(t, err)
	require.Nil(t, updated.Subject)

	mockContacts.EXPECT().GetByID(ctx, int64(6)).Return(model.Contact{}, sql.ErrNoRows)
	_, err = svc.Update(ctx, 6, service.ContactPatch{})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestContactService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContacts := mock.NewMockContactRepository(ctrl)
	svc := service.NewContactService(mockContacts, nil)
	ctx := context.Background()

	mockContacts.EXPECT().Delete(ctx, int64(3)).Return(nil)
	require.NoError(t, svc.Delete(ctx, 3))

	mockContacts.EXPECT().Delete(ctx, int64(4)).Return(sql.ErrNoRows)
	require.ErrorIs(t, svc.Delete(ctx, 4), service.ErrNotFound)
}
