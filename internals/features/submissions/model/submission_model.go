package model

import "time"

const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

type ContactSubmission struct {
	SubmissionID        string     `gorm:"column:submission_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"submission_id"`
	SubmissionName      string     `gorm:"column:submission_name;type:varchar(120);not null" json:"submission_name"`
	SubmissionEmail     string     `gorm:"column:submission_email;type:varchar(160);not null" json:"submission_email"`
	SubmissionPhone     string     `gorm:"column:submission_phone;type:varchar(32);not null" json:"submission_phone"`
	SubmissionMessage   string     `gorm:"column:submission_message;type:text;not null" json:"submission_message"`
	SubmissionVisitDate *string    `gorm:"column:submission_visit_date;type:varchar(16)" json:"submission_visit_date"`
	SubmissionVisitTime *string    `gorm:"column:submission_visit_time;type:varchar(8)" json:"submission_visit_time"`
	SubmissionStatus    string     `gorm:"column:submission_status;type:varchar(16);not null;default:new" json:"submission_status"`
	SubmissionNotes     string     `gorm:"column:submission_notes;type:text" json:"submission_notes"`
	SubmissionDueDate   *time.Time `gorm:"column:submission_due_date" json:"submission_due_date"`
	SubmissionResponded bool       `gorm:"column:submission_is_responded;not null;default:false" json:"submission_is_responded"`
	SubmissionClosedReason *string `gorm:"column:submission_closed_reason;type:text" json:"submission_closed_reason"`
	SubmissionEmailSent bool       `gorm:"column:submission_email_sent;not null;default:false" json:"submission_email_sent"`
	SubmissionEmailError *string   `gorm:"column:submission_email_error;type:text" json:"submission_email_error"`
	SubmissionCreatedAt time.Time  `gorm:"column:submission_created_at;autoCreateTime" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time  `gorm:"column:submission_updated_at;autoUpdateTime" json:"submission_updated_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
