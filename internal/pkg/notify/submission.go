package notify

import (
	"Brightline/internal/model"
	"time"
)

const (
	TypeContact = "contact"
	TypeBooking = "booking"
)

// Submission 已落库的表单记录，各渠道按自己的格式渲染
type Submission struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Service   string    `json:"service,omitempty"`
	Budget    string    `json:"budget,omitempty"`
	Message   string    `json:"message,omitempty"`
	Date      string    `json:"selected_date,omitempty"`
	Time      string    `json:"selected_time,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContact(c *model.Contact) *Submission {
	return &Submission{
		Type:      TypeContact,
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     deref(c.Phone),
		Company:   deref(c.Company),
		Service:   deref(c.Service),
		Budget:    deref(c.Budget),
		Message:   deref(c.Message),
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

func FromBooking(b *model.Booking) *Submission {
	return &Submission{
		Type:      TypeBooking,
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     deref(b.Phone),
		Company:   deref(b.Company),
		Message:   deref(b.Message),
		Date:      b.SelectedDate,
		Time:      b.SelectedTime,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}

func (s *Submission) IsBooking() bool {
	return s.Type == TypeBooking
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
