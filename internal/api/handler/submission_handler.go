package handler

import (
	"Brightline/internal/api/dto"
	"Brightline/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler 表单提交接口，响应结构与前端表单约定一致，不使用统一响应封装
type SubmissionHandler struct {
	submissionSvc service.SubmissionService
	serviceName   string
}

func NewSubmissionHandler(submissionSvc service.SubmissionService, serviceName string) *SubmissionHandler {
	return &SubmissionHandler{
		submissionSvc: submissionSvc,
		serviceName:   serviceName,
	}
}

func (s *SubmissionHandler) SubmitContact(c *gin.Context) {
	var req dto.ContactDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrContactFieldsRequired.Error()})
		return
	}

	contact, err := s.submissionSvc.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrContactFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Contact form submitted successfully",
		"contactId": contact.ID,
	})
}

func (s *SubmissionHandler) SubmitBooking(c *gin.Context) {
	var req dto.BookingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrBookingFieldsRequired.Error()})
		return
	}

	booking, err := s.submissionSvc.SubmitBooking(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrBookingFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Booking request submitted successfully",
		"bookingId":    booking.ID,
		"scheduledFor": booking.ScheduledFor(),
	})
}

// ListContacts TODO: 后台列表目前未鉴权，接入 AuthMiddleware 前需要前端同步携带 Token
func (s *SubmissionHandler) ListContacts(c *gin.Context) {
	contacts, err := s.submissionSvc.ListContacts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contacts": contacts})
}

func (s *SubmissionHandler) ListBookings(c *gin.Context) {
	bookings, err := s.submissionSvc.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

func (s *SubmissionHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   s.serviceName,
	})
}
