package repository

import (
	"Brightline/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	CreateContact(ctx context.Context, contact *model.Contact) error
	CreateBooking(ctx context.Context, booking *model.Booking) error
	ListContacts(ctx context.Context) ([]*model.Contact, error)
	ListBookings(ctx context.Context) ([]*model.Booking, error)
}

type submissionRepoImpl struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) SubmissionRepo {
	return &submissionRepoImpl{db: db}
}

// CreateContact 写入联系表单，ID 与状态由 BeforeCreate 填充
func (s *submissionRepoImpl) CreateContact(ctx context.Context, contact *model.Contact) error {
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		return errors.Wrap(err, "insert contact")
	}
	return nil
}

// CreateBooking 写入预约表单
func (s *submissionRepoImpl) CreateBooking(ctx context.Context, booking *model.Booking) error {
	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return errors.Wrap(err, "insert booking")
	}
	return nil
}

// ListContacts 按创建时间倒序返回全部联系记录
func (s *submissionRepoImpl) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	contacts := make([]*model.Contact, 0)
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, errors.Wrap(err, "list contacts")
	}
	return contacts, nil
}

// ListBookings 按创建时间倒序返回全部预约记录
func (s *submissionRepoImpl) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	bookings := make([]*model.Booking, 0)
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, errors.Wrap(err, "list bookings")
	}
	return bookings, nil
}
