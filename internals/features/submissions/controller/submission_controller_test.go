package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/model"
	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/service"
)

type fakeStore struct {
	inserted []*model.ContactSubmission
}

func (f *fakeStore) Insert(ctx context.Context, sub *model.ContactSubmission) error {
	sub.SubmissionID = "sub-test"
	sub.SubmissionCreatedAt = time.Now()
	f.inserted = append(f.inserted, sub)
	return nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	return nil, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (f *fakeStore) List(ctx context.Context, status string, offset, limit int) ([]model.ContactSubmission, int64, error) {
	return nil, 0, nil
}

func (f *fakeStore) All(ctx context.Context, status string) ([]model.ContactSubmission, error) {
	return nil, nil
}

func (f *fakeStore) CountCreatedSince(ctx context.Context, t time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeStore) CountOverdue(ctx context.Context, today time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

func (f *fakeStore) CountResponded(ctx context.Context) (int64, int64, error) {
	return 0, 0, nil
}

func noopChannel(ctx context.Context, p service.NotificationPayload) error { return nil }

func newTestApp(store service.SubmissionStore) *fiber.App {
	lc := service.NewLifecycle(store, &service.Dispatcher{
		AdminChannel:   noopChannel,
		VisitorChannel: noopChannel,
		CRMChannel:     noopChannel,
	})
	ctrl := NewSubmissionController(lc)

	app := fiber.New()
	app.Post("/api/contact", ctrl.Create)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	rb, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(rb, &env); err != nil {
		t.Fatalf("response bukan JSON envelope: %v (%s)", err, rb)
	}
	return resp.StatusCode, env
}

func TestContactFormSuccess(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store)

	status, env := postJSON(t, app, "/api/contact", fiber.Map{
		"name":    "Budi Santoso",
		"email":   "budi@example.com",
		"phone":   "081234567890",
		"message": "Mau lihat rumah tipe 45 minggu ini",
	})

	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", status, env.Message)
	}
	if !env.Success {
		t.Error("success harus true")
	}
	if len(store.inserted) != 1 {
		t.Fatalf("jumlah insert = %d, want 1", len(store.inserted))
	}
	if store.inserted[0].SubmissionStatus != model.StatusNew {
		t.Errorf("status submission = %q, want new", store.inserted[0].SubmissionStatus)
	}
}

func TestContactFormMissingMessage(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store)

	status, env := postJSON(t, app, "/api/contact", fiber.Map{
		"name":  "Budi",
		"email": "budi@example.com",
		"phone": "0812",
	})

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if env.Message != "Mohon lengkapi semua field yang wajib diisi" {
		t.Errorf("message = %q", env.Message)
	}
	if len(store.inserted) != 0 {
		t.Error("tidak boleh ada insert saat validasi gagal")
	}
}

func TestContactFormInvalidEmail(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store)

	status, env := postJSON(t, app, "/api/contact", fiber.Map{
		"name":    "Budi",
		"email":   "bukan-email",
		"phone":   "0812",
		"message": "halo",
	})

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if env.Message != "Format email tidak valid" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestContactFormOptionalVisitSchedule(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store)

	status, _ := postJSON(t, app, "/api/contact", fiber.Map{
		"name":    "Ani",
		"email":   "ani@example.com",
		"phone":   "0813",
		"message": "Jadwalkan kunjungan",
		"date":    "2026-09-05",
		"time":    "14:00",
	})

	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", status)
	}
	sub := store.inserted[0]
	if sub.SubmissionVisitDate == nil || *sub.SubmissionVisitDate != "2026-09-05" {
		t.Errorf("visit date = %v", sub.SubmissionVisitDate)
	}
	if sub.SubmissionVisitTime == nil || *sub.SubmissionVisitTime != "14:00" {
		t.Errorf("visit time = %v", sub.SubmissionVisitTime)
	}
}
