package service

import (
	"Brightline/internal/api/dto"
	"Brightline/internal/model"
	"Brightline/internal/pkg/notify"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionService_ContactRequiresNameAndEmail(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	dispatcher := &recordingDispatcher{}
	svc := NewSubmissionService(repo, dispatcher)
	ctx := context.Background()

	for _, req := range []*dto.ContactDTO{
		{Name: "Jane"},
		{Email: "jane@x.com"},
		{Name: "   ", Email: "jane@x.com"},
	} {
		_, err := svc.SubmitContact(ctx, req)
		assert.ErrorIs(t, err, ErrContactFieldsRequired)
	}
	assert.Empty(t, repo.contacts)
	assert.Empty(t, dispatcher.subs)
}

func TestSubmissionService_Contact(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	dispatcher := &recordingDispatcher{}
	svc := NewSubmissionService(repo, dispatcher)

	contact, err := svc.SubmitContact(context.Background(), &dto.ContactDTO{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Company: ptr("Acme"),
		Budget:  ptr(" "),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, model.ContactStatusNew, contact.Status)
	assert.Equal(t, "Acme", *contact.Company)
	assert.Nil(t, contact.Budget)

	require.Len(t, dispatcher.subs, 1)
	assert.Equal(t, notify.TypeContact, dispatcher.subs[0].Type)
	assert.Equal(t, contact.ID, dispatcher.subs[0].ID)
}

func TestSubmissionService_BookingRequiresDateAndTime(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	svc := NewSubmissionService(repo, &recordingDispatcher{})
	ctx := context.Background()

	_, err := svc.SubmitBooking(ctx, &dto.BookingDTO{Name: "Jane", Email: "jane@x.com", SelectedTime: "10:00 AM"})
	assert.ErrorIs(t, err, ErrBookingFieldsRequired)
	_, err = svc.SubmitBooking(ctx, &dto.BookingDTO{Name: "Jane", Email: "jane@x.com", SelectedDate: "2025-06-01"})
	assert.ErrorIs(t, err, ErrBookingFieldsRequired)
	assert.Empty(t, repo.bookings)
}

func TestSubmissionService_BookingWithoutSinks(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	dispatcher := notify.NewAsyncDispatcher(notify.NewNotifier(), time.Second)
	svc := NewSubmissionService(repo, dispatcher)

	booking, err := svc.SubmitBooking(context.Background(), &dto.BookingDTO{
		Name:         "Jane Doe",
		Email:        "jane@x.com",
		SelectedDate: "2025-06-01",
		SelectedTime: "10:00 AM",
	})
	require.NoError(t, err)
	dispatcher.Wait()

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "2025-06-01 at 10:00 AM", booking.ScheduledFor())
	assert.Equal(t, model.BookingStatusScheduled, booking.Status)

	bookings, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestSubmissionService_PersistenceFailureSkipsNotification(t *testing.T) {
	repo := &fakeSubmissionRepo{fail: true}
	dispatcher := &recordingDispatcher{}
	svc := NewSubmissionService(repo, dispatcher)

	_, err := svc.SubmitContact(context.Background(), &dto.ContactDTO{Name: "Jane", Email: "jane@x.com"})
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, dispatcher.subs)
}

func TestSubmissionService_ListNewestFirst(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	svc := NewSubmissionService(repo, &recordingDispatcher{})
	ctx := context.Background()

	_, err := svc.SubmitContact(ctx, &dto.ContactDTO{Name: "First", Email: "1@x.com"})
	require.NoError(t, err)
	_, err = svc.SubmitContact(ctx, &dto.ContactDTO{Name: "Second", Email: "2@x.com"})
	require.NoError(t, err)

	contacts, err := svc.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Second", contacts[0].Name)
}
