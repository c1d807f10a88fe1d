package service

import (
	"Brightline/internal/api/dto"
	"Brightline/internal/model"
	"Brightline/internal/pkg/notify"
	"Brightline/internal/pkg/util"
	"Brightline/internal/repository"
	"context"
	log "log/slog"
	"strings"
)

type SubmissionService interface {
	SubmitContact(ctx context.Context, req *dto.ContactDTO) (*model.Contact, error)
	SubmitBooking(ctx context.Context, req *dto.BookingDTO) (*model.Booking, error)
	ListContacts(ctx context.Context) ([]*model.Contact, error)
	ListBookings(ctx context.Context) ([]*model.Booking, error)
}

type submissionServiceImpl struct {
	repo       repository.SubmissionRepo
	dispatcher notify.Dispatcher
}

func NewSubmissionService(repo repository.SubmissionRepo, dispatcher notify.Dispatcher) SubmissionService {
	return &submissionServiceImpl{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// SubmitContact 校验必填项、落库，再异步触发通知
func (s *submissionServiceImpl) SubmitContact(ctx context.Context, req *dto.ContactDTO) (*model.Contact, error) {
	name, email := strings.TrimSpace(req.Name), strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, ErrContactFieldsRequired
	}

	contact := &model.Contact{
		Name:    name,
		Email:   email,
		Phone:   util.OptionalString(req.Phone),
		Company: util.OptionalString(req.Company),
		Service: util.OptionalString(req.Service),
		Budget:  util.OptionalString(req.Budget),
		Message: util.OptionalString(req.Message),
	}
	if err := s.repo.CreateContact(ctx, contact); err != nil {
		log.ErrorContext(ctx, "save contact failed", "email", email, "err", err)
		return nil, err
	}

	log.InfoContext(ctx, "contact submitted", "contact_id", contact.ID)
	s.dispatcher.Dispatch(ctx, notify.FromContact(contact))
	return contact, nil
}

// SubmitBooking 日期与时段同样必填
func (s *submissionServiceImpl) SubmitBooking(ctx context.Context, req *dto.BookingDTO) (*model.Booking, error) {
	name, email := strings.TrimSpace(req.Name), strings.TrimSpace(req.Email)
	date, slot := strings.TrimSpace(req.SelectedDate), strings.TrimSpace(req.SelectedTime)
	if name == "" || email == "" || date == "" || slot == "" {
		return nil, ErrBookingFieldsRequired
	}

	booking := &model.Booking{
		Name:         name,
		Email:        email,
		Phone:        util.OptionalString(req.Phone),
		Company:      util.OptionalString(req.Company),
		Message:      util.OptionalString(req.Message),
		SelectedDate: date,
		SelectedTime: slot,
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		log.ErrorContext(ctx, "save booking failed", "email", email, "err", err)
		return nil, err
	}

	log.InfoContext(ctx, "booking submitted", "booking_id", booking.ID, "scheduled_for", booking.ScheduledFor())
	s.dispatcher.Dispatch(ctx, notify.FromBooking(booking))
	return booking, nil
}

func (s *submissionServiceImpl) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.ListContacts(ctx)
}

func (s *submissionServiceImpl) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.repo.ListBookings(ctx)
}
