package dto

import (
	"time"

	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/model"
)

// ============================
// Create Request DTO (public form)
// ============================

type CreateSubmissionRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=120"`
	Email   string  `json:"email" validate:"required,email,max=160"`
	Phone   string  `json:"phone" validate:"required,min=6,max=32"`
	Message string  `json:"message" validate:"required,min=3"`
	Date    *string `json:"date" validate:"omitempty,max=16"`
	Time    *string `json:"time" validate:"omitempty,max=8"`
}

// ============================
// Update Request DTO (admin, partial)
// ============================

type UpdateSubmissionRequest struct {
	Status       *string    `json:"status" validate:"omitempty,oneof=new in_progress closed"`
	Notes        *string    `json:"notes"`
	DueDate      *time.Time `json:"due_date"`
	ClosedReason *string    `json:"closed_reason"`
	IsResponded  *bool      `json:"is_responded"`
}

// ============================
// Response DTO
// ============================

type SubmissionDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Message      string     `json:"message"`
	VisitDate    *string    `json:"visit_date"`
	VisitTime    *string    `json:"visit_time"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	DueDate      *time.Time `json:"due_date"`
	IsResponded  bool       `json:"is_responded"`
	ClosedReason *string    `json:"closed_reason"`
	EmailSent    bool       `json:"email_sent"`
	EmailError   *string    `json:"email_error"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SubmissionStatsDTO struct {
	ThisWeek     int64   `json:"this_week"`
	Overdue      int64   `json:"overdue"`
	New          int64   `json:"new"`
	ResponseRate float64 `json:"response_rate"`
}

// ============================
// Converter
// ============================

func ToSubmissionDTO(m model.ContactSubmission) SubmissionDTO {
	return SubmissionDTO{
		ID:           m.SubmissionID,
		Name:         m.SubmissionName,
		Email:        m.SubmissionEmail,
		Phone:        m.SubmissionPhone,
		Message:      m.SubmissionMessage,
		VisitDate:    m.SubmissionVisitDate,
		VisitTime:    m.SubmissionVisitTime,
		Status:       m.SubmissionStatus,
		Notes:        m.SubmissionNotes,
		DueDate:      m.SubmissionDueDate,
		IsResponded:  m.SubmissionResponded,
		ClosedReason: m.SubmissionClosedReason,
		EmailSent:    m.SubmissionEmailSent,
		EmailError:   m.SubmissionEmailError,
		CreatedAt:    m.SubmissionCreatedAt,
		UpdatedAt:    m.SubmissionUpdatedAt,
	}
}
