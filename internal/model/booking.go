package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking 预约表单提交记录
type Booking struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;index:idx_booking_email" json:"email"`
	Phone        *string   `gorm:"type:varchar(64)" json:"phone"`
	Company      *string   `gorm:"type:varchar(255)" json:"company"`
	Message      *string   `gorm:"type:text" json:"message"`
	SelectedDate string    `gorm:"type:varchar(32);not null" json:"selected_date"`
	SelectedTime string    `gorm:"type:varchar(32);not null" json:"selected_time"`
	Status       string    `gorm:"type:varchar(32);not null;default:'scheduled'" json:"status"`
	CreatedAt    time.Time `gorm:"index:idx_booking_created_at" json:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.Status = BookingStatusScheduled
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	return nil
}

// ScheduledFor 形如 "2025-06-01 at 10:00 AM"
func (b *Booking) ScheduledFor() string {
	return b.SelectedDate + " at " + b.SelectedTime
}
