package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactStatusNew       = "new"
	BookingStatusScheduled = "scheduled"
)

// Contact 联系表单提交记录，创建后不再修改
type Contact struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null;index:idx_contact_email" json:"email"`
	Phone     *string   `gorm:"type:varchar(64)" json:"phone"`
	Company   *string   `gorm:"type:varchar(255)" json:"company"`
	Service   *string   `gorm:"type:varchar(255)" json:"service"`
	Budget    *string   `gorm:"type:varchar(128)" json:"budget"`
	Message   *string   `gorm:"type:text" json:"message"`
	Status    string    `gorm:"type:varchar(32);not null;default:'new'" json:"status"`
	CreatedAt time.Time `gorm:"index:idx_contact_created_at" json:"created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate 由服务端分配 ID、状态与创建时间
func (c *Contact) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Status = ContactStatusNew
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return nil
}
