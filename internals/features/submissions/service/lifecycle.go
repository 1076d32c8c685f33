package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/dto"
	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/model"
)

var ErrSubmissionNotFound = errors.New("submission tidak ditemukan")

// ValidationError: input form tidak lengkap/tidak valid — tidak ada yang
// dipersist dan tidak ada notifikasi yang dikirim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// SubmissionStore adalah kontrak row store untuk contact_submissions.
// Implementasi produksi memakai GORM (store_gorm.go).
type SubmissionStore interface {
	Insert(ctx context.Context, sub *model.ContactSubmission) error
	Get(ctx context.Context, id string) (*model.ContactSubmission, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	List(ctx context.Context, status string, offset, limit int) ([]model.ContactSubmission, int64, error)
	All(ctx context.Context, status string) ([]model.ContactSubmission, error)
	CountCreatedSince(ctx context.Context, t time.Time) (int64, error)
	CountOverdue(ctx context.Context, today time.Time) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountResponded(ctx context.Context) (responded int64, total int64, err error)
}

// Lifecycle mengelola state machine submission (new → in_progress → closed)
// beserta side-effect notifikasinya.
type Lifecycle struct {
	Store      SubmissionStore
	Dispatcher *Dispatcher
}

func NewLifecycle(store SubmissionStore, dispatcher *Dispatcher) *Lifecycle {
	return &Lifecycle{Store: store, Dispatcher: dispatcher}
}

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s.]+$`)

// Create: validasi → persist (fatal bila gagal) → dispatch notifikasi →
// tulis balik outcome. Persistensi selalu mendahului notifikasi; kegagalan
// total semua channel tidak pernah menggagalkan pembuatan submission.
func (l *Lifecycle) Create(ctx context.Context, req dto.CreateSubmissionRequest) (*model.ContactSubmission, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return nil, &ValidationError{Msg: "Mohon lengkapi semua field yang wajib diisi"}
	}
	if !emailShape.MatchString(strings.TrimSpace(req.Email)) {
		return nil, &ValidationError{Msg: "Format email tidak valid"}
	}

	sub := &model.ContactSubmission{
		SubmissionName:      strings.TrimSpace(req.Name),
		SubmissionEmail:     strings.TrimSpace(req.Email),
		SubmissionPhone:     strings.TrimSpace(req.Phone),
		SubmissionMessage:   strings.TrimSpace(req.Message),
		SubmissionVisitDate: req.Date,
		SubmissionVisitTime: req.Time,
		SubmissionStatus:    model.StatusNew,
	}
	if err := l.Store.Insert(ctx, sub); err != nil {
		return nil, fmt.Errorf("gagal menyimpan submission: %w", err)
	}

	outcome := l.Dispatcher.Dispatch(ctx, NotificationPayload{
		Name:      sub.SubmissionName,
		Email:     sub.SubmissionEmail,
		Phone:     sub.SubmissionPhone,
		Message:   sub.SubmissionMessage,
		VisitDate: sub.SubmissionVisitDate,
		VisitTime: sub.SubmissionVisitTime,
	})

	sub.SubmissionEmailSent = outcome.EmailSent
	sub.SubmissionEmailError = outcome.EmailError
	if err := l.Store.Update(ctx, sub.SubmissionID, map[string]any{
		"submission_email_sent":  outcome.EmailSent,
		"submission_email_error": outcome.EmailError,
	}); err != nil {
		// Non-kritis: outcome notifikasi gagal tercatat, submission tetap sah.
		log.Printf("[SUBMISSION] gagal tulis balik status email untuk %s: %v", sub.SubmissionID, err)
	}

	return sub, nil
}

// Update: mutator parsial atas field lifecycle. Saat status keluar dari
// closed, closed_reason ikut dibersihkan supaya record tidak menyimpan
// alasan penutupan yang sudah tidak berlaku.
func (l *Lifecycle) Update(ctx context.Context, id string, req dto.UpdateSubmissionRequest) (*model.ContactSubmission, error) {
	existing, err := l.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSubmissionNotFound
	}

	fields := map[string]any{}
	if req.Status != nil {
		fields["submission_status"] = *req.Status
		if *req.Status != model.StatusClosed {
			fields["submission_closed_reason"] = nil
		}
	}
	if req.ClosedReason != nil {
		status := existing.SubmissionStatus
		if req.Status != nil {
			status = *req.Status
		}
		if status == model.StatusClosed {
			fields["submission_closed_reason"] = *req.ClosedReason
		}
	}
	if req.Notes != nil {
		fields["submission_notes"] = *req.Notes
	}
	if req.DueDate != nil {
		fields["submission_due_date"] = *req.DueDate
	}
	if req.IsResponded != nil {
		fields["submission_is_responded"] = *req.IsResponded
	}
	if len(fields) == 0 {
		return existing, nil
	}

	if err := l.Store.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return l.Store.Get(ctx, id)
}

// RetryNotification menjalankan ulang dispatch tiga channel untuk submission
// yang sudah ada dan hanya menulis balik pasangan (email_sent, email_error).
func (l *Lifecycle) RetryNotification(ctx context.Context, id string) (*DispatchOutcome, error) {
	sub, err := l.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}

	outcome := l.Dispatcher.Dispatch(ctx, NotificationPayload{
		Name:      sub.SubmissionName,
		Email:     sub.SubmissionEmail,
		Phone:     sub.SubmissionPhone,
		Message:   sub.SubmissionMessage,
		VisitDate: sub.SubmissionVisitDate,
		VisitTime: sub.SubmissionVisitTime,
	})

	if err := l.Store.Update(ctx, id, map[string]any{
		"submission_email_sent":  outcome.EmailSent,
		"submission_email_error": outcome.EmailError,
	}); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// Stats: agregat read-only untuk dashboard admin.
func (l *Lifecycle) Stats(ctx context.Context) (*dto.SubmissionStatsDTO, error) {
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	thisWeek, err := l.Store.CountCreatedSince(ctx, weekAgo)
	if err != nil {
		return nil, err
	}
	overdue, err := l.Store.CountOverdue(ctx, today)
	if err != nil {
		return nil, err
	}
	newCount, err := l.Store.CountByStatus(ctx, model.StatusNew)
	if err != nil {
		return nil, err
	}
	responded, total, err := l.Store.CountResponded(ctx)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if total > 0 {
		rate = float64(responded) / float64(total) * 100
	}
	return &dto.SubmissionStatsDTO{
		ThisWeek:     thisWeek,
		Overdue:      overdue,
		New:          newCount,
		ResponseRate: rate,
	}, nil
}

// ExportCSV menserialisasi submission (opsional difilter status) menjadi CSV.
func (l *Lifecycle) ExportCSV(ctx context.Context, status string) ([]byte, error) {
	subs, err := l.Store.All(ctx, status)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"id", "name", "email", "phone", "message",
		"visit_date", "visit_time", "status", "notes", "due_date",
		"is_responded", "closed_reason", "email_sent", "email_error", "created_at",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range subs {
		row := []string{
			s.SubmissionID,
			s.SubmissionName,
			s.SubmissionEmail,
			s.SubmissionPhone,
			s.SubmissionMessage,
			strDeref(s.SubmissionVisitDate),
			strDeref(s.SubmissionVisitTime),
			s.SubmissionStatus,
			s.SubmissionNotes,
			timeDeref(s.SubmissionDueDate),
			strconv.FormatBool(s.SubmissionResponded),
			strDeref(s.SubmissionClosedReason),
			strconv.FormatBool(s.SubmissionEmailSent),
			strDeref(s.SubmissionEmailError),
			s.SubmissionCreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeDeref(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
