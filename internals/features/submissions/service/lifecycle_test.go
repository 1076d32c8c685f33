package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/dto"
	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/model"
)

type mockStore struct {
	insertFn            func(ctx context.Context, sub *model.ContactSubmission) error
	getFn               func(ctx context.Context, id string) (*model.ContactSubmission, error)
	updateFn            func(ctx context.Context, id string, fields map[string]any) error
	allFn               func(ctx context.Context, status string) ([]model.ContactSubmission, error)
	countCreatedSinceFn func(ctx context.Context, t time.Time) (int64, error)
	countOverdueFn      func(ctx context.Context, today time.Time) (int64, error)
	countByStatusFn     func(ctx context.Context, status string) (int64, error)
	countRespondedFn    func(ctx context.Context) (int64, int64, error)

	events []string
}

func (m *mockStore) Insert(ctx context.Context, sub *model.ContactSubmission) error {
	m.events = append(m.events, "insert")
	if m.insertFn != nil {
		return m.insertFn(ctx, sub)
	}
	sub.SubmissionID = "sub-1"
	return nil
}

func (m *mockStore) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	m.events = append(m.events, "get")
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) Update(ctx context.Context, id string, fields map[string]any) error {
	m.events = append(m.events, "update")
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}

func (m *mockStore) List(ctx context.Context, status string, offset, limit int) ([]model.ContactSubmission, int64, error) {
	return nil, 0, nil
}

func (m *mockStore) All(ctx context.Context, status string) ([]model.ContactSubmission, error) {
	if m.allFn != nil {
		return m.allFn(ctx, status)
	}
	return nil, nil
}

func (m *mockStore) CountCreatedSince(ctx context.Context, t time.Time) (int64, error) {
	if m.countCreatedSinceFn != nil {
		return m.countCreatedSinceFn(ctx, t)
	}
	return 0, nil
}

func (m *mockStore) CountOverdue(ctx context.Context, today time.Time) (int64, error) {
	if m.countOverdueFn != nil {
		return m.countOverdueFn(ctx, today)
	}
	return 0, nil
}

func (m *mockStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	if m.countByStatusFn != nil {
		return m.countByStatusFn(ctx, status)
	}
	return 0, nil
}

func (m *mockStore) CountResponded(ctx context.Context) (int64, int64, error) {
	if m.countRespondedFn != nil {
		return m.countRespondedFn(ctx)
	}
	return 0, 0, nil
}

func stubDispatcher(track *[]string, adminOK bool) *Dispatcher {
	ch := func(name string, ok bool) ChannelFunc {
		return func(ctx context.Context, p NotificationPayload) error {
			if track != nil {
				*track = append(*track, "dispatch:"+name)
			}
			if !ok {
				return errors.New(name + " gagal")
			}
			return nil
		}
	}
	return &Dispatcher{
		AdminChannel:   ch("admin", adminOK),
		VisitorChannel: ch("visitor", true),
		CRMChannel:     ch("crm", true),
	}
}

func validCreateReq() dto.CreateSubmissionRequest {
	return dto.CreateSubmissionRequest{
		Name:    "Budi Santoso",
		Email:   "budi@example.com",
		Phone:   "081234567890",
		Message: "Mau tanya rumah tipe 45",
	}
}

func TestCreatePersistsBeforeNotifying(t *testing.T) {
	st := &mockStore{}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	sub, err := lc.Create(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sub.SubmissionStatus != model.StatusNew {
		t.Errorf("status awal = %q, want new", sub.SubmissionStatus)
	}
	if !sub.SubmissionEmailSent {
		t.Error("EmailSent harus true saat channel admin sukses")
	}

	// insert harus selalu mendahului update outcome
	if len(st.events) < 2 || st.events[0] != "insert" || st.events[len(st.events)-1] != "update" {
		t.Errorf("urutan store salah: %v", st.events)
	}
}

func TestCreateValidationStopsEverything(t *testing.T) {
	cases := []struct {
		name string
		req  dto.CreateSubmissionRequest
		want string
	}{
		{"pesan kosong", dto.CreateSubmissionRequest{Name: "Budi", Email: "b@x.com", Phone: "08", Message: "   "}, "Mohon lengkapi semua field yang wajib diisi"},
		{"nama kosong", dto.CreateSubmissionRequest{Email: "b@x.com", Phone: "08", Message: "halo"}, "Mohon lengkapi semua field yang wajib diisi"},
		{"email rusak", dto.CreateSubmissionRequest{Name: "Budi", Email: "bukan-email", Phone: "08", Message: "halo"}, "Format email tidak valid"},
		{"email tanpa tld", dto.CreateSubmissionRequest{Name: "Budi", Email: "b@x", Phone: "08", Message: "halo"}, "Format email tidak valid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var dispatched []string
			st := &mockStore{}
			lc := NewLifecycle(st, stubDispatcher(&dispatched, true))

			_, err := lc.Create(context.Background(), tc.req)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error bukan *ValidationError: %v", err)
			}
			if ve.Msg != tc.want {
				t.Errorf("pesan = %q, want %q", ve.Msg, tc.want)
			}
			if len(st.events) != 0 {
				t.Errorf("tidak boleh ada akses store saat validasi gagal: %v", st.events)
			}
			if len(dispatched) != 0 {
				t.Errorf("tidak boleh ada notifikasi saat validasi gagal: %v", dispatched)
			}
		})
	}
}

func TestCreateInsertFailureIsFatal(t *testing.T) {
	var dispatched []string
	st := &mockStore{
		insertFn: func(ctx context.Context, sub *model.ContactSubmission) error {
			return errors.New("db down")
		},
	}
	lc := NewLifecycle(st, stubDispatcher(&dispatched, true))

	_, err := lc.Create(context.Background(), validCreateReq())
	if err == nil {
		t.Fatal("expected error saat insert gagal")
	}
	if len(dispatched) != 0 {
		t.Errorf("notifikasi tidak boleh jalan saat persist gagal: %v", dispatched)
	}
}

func TestCreateNotificationFailureDoesNotFail(t *testing.T) {
	st := &mockStore{}
	lc := NewLifecycle(st, stubDispatcher(nil, false))

	sub, err := lc.Create(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("kegagalan notifikasi tidak boleh menggagalkan Create: %v", err)
	}
	if sub.SubmissionEmailSent {
		t.Error("EmailSent harus false")
	}
	if sub.SubmissionEmailError == nil || !strings.Contains(*sub.SubmissionEmailError, "notifikasi admin gagal") {
		t.Errorf("EmailError = %v", sub.SubmissionEmailError)
	}
}

func TestCreateWriteBackFailureSwallowed(t *testing.T) {
	st := &mockStore{
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			return errors.New("db down")
		},
	}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	if _, err := lc.Create(context.Background(), validCreateReq()); err != nil {
		t.Fatalf("kegagalan tulis balik outcome tidak boleh menggagalkan Create: %v", err)
	}
}

func existingSubmission(status string, closedReason *string) *model.ContactSubmission {
	return &model.ContactSubmission{
		SubmissionID:           "sub-1",
		SubmissionName:         "Budi",
		SubmissionEmail:        "budi@example.com",
		SubmissionPhone:        "08",
		SubmissionMessage:      "halo",
		SubmissionStatus:       status,
		SubmissionClosedReason: closedReason,
	}
}

func TestUpdateReopenClearsClosedReason(t *testing.T) {
	reason := "sudah beli di tempat lain"
	var captured map[string]any
	st := &mockStore{
		getFn: func(ctx context.Context, id string) (*model.ContactSubmission, error) {
			return existingSubmission(model.StatusClosed, &reason), nil
		},
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			captured = fields
			return nil
		},
	}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	status := model.StatusInProgress
	if _, err := lc.Update(context.Background(), "sub-1", dto.UpdateSubmissionRequest{Status: &status}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	v, ok := captured["submission_closed_reason"]
	if !ok {
		t.Fatal("closed_reason harus ikut dibersihkan saat keluar dari closed")
	}
	if v != nil {
		t.Errorf("closed_reason = %v, want nil", v)
	}
}

func TestUpdateClosedReasonIgnoredWhenNotClosed(t *testing.T) {
	var captured map[string]any
	st := &mockStore{
		getFn: func(ctx context.Context, id string) (*model.ContactSubmission, error) {
			return existingSubmission(model.StatusInProgress, nil), nil
		},
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			captured = fields
			return nil
		},
	}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	reason := "batal"
	notes := "follow up minggu depan"
	if _, err := lc.Update(context.Background(), "sub-1", dto.UpdateSubmissionRequest{
		ClosedReason: &reason,
		Notes:        &notes,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, ok := captured["submission_closed_reason"]; ok {
		t.Error("closed_reason tidak boleh di-set saat status bukan closed")
	}
	if captured["submission_notes"] != notes {
		t.Errorf("notes = %v", captured["submission_notes"])
	}
}

func TestUpdateCloseWithReason(t *testing.T) {
	var captured map[string]any
	st := &mockStore{
		getFn: func(ctx context.Context, id string) (*model.ContactSubmission, error) {
			return existingSubmission(model.StatusInProgress, nil), nil
		},
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			captured = fields
			return nil
		},
	}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	status := model.StatusClosed
	reason := "deal"
	if _, err := lc.Update(context.Background(), "sub-1", dto.UpdateSubmissionRequest{
		Status:       &status,
		ClosedReason: &reason,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if captured["submission_status"] != model.StatusClosed {
		t.Errorf("status = %v", captured["submission_status"])
	}
	if captured["submission_closed_reason"] != reason {
		t.Errorf("closed_reason = %v, want %q", captured["submission_closed_reason"], reason)
	}
}

func TestUpdateNotFound(t *testing.T) {
	st := &mockStore{}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	status := model.StatusClosed
	_, err := lc.Update(context.Background(), "hilang", dto.UpdateSubmissionRequest{Status: &status})
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("err = %v, want ErrSubmissionNotFound", err)
	}
}

func TestRetryNotificationWritesOutcomePairOnly(t *testing.T) {
	var captured map[string]any
	st := &mockStore{
		getFn: func(ctx context.Context, id string) (*model.ContactSubmission, error) {
			return existingSubmission(model.StatusNew, nil), nil
		},
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			captured = fields
			return nil
		},
	}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	out, err := lc.RetryNotification(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("RetryNotification: %v", err)
	}
	if !out.EmailSent {
		t.Error("EmailSent harus true")
	}
	if len(captured) != 2 {
		t.Errorf("hanya pasangan email_sent/email_error yang boleh ditulis: %v", captured)
	}
	if captured["submission_email_sent"] != true {
		t.Errorf("email_sent = %v", captured["submission_email_sent"])
	}
}

func TestRetryNotificationNotFound(t *testing.T) {
	st := &mockStore{}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	if _, err := lc.RetryNotification(context.Background(), "hilang"); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("err = %v, want ErrSubmissionNotFound", err)
	}
}

func TestStatsResponseRate(t *testing.T) {
	st := &mockStore{
		countCreatedSinceFn: func(ctx context.Context, t time.Time) (int64, error) { return 5, nil },
		countOverdueFn:      func(ctx context.Context, today time.Time) (int64, error) { return 2, nil },
		countByStatusFn:     func(ctx context.Context, status string) (int64, error) { return 3, nil },
		countRespondedFn:    func(ctx context.Context) (int64, int64, error) { return 6, 8, nil },
	}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	stats, err := lc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.ThisWeek != 5 || stats.Overdue != 2 || stats.New != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.ResponseRate != 75.0 {
		t.Errorf("response rate = %v, want 75", stats.ResponseRate)
	}
}

func TestStatsZeroSubmissions(t *testing.T) {
	st := &mockStore{}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	stats, err := lc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.ResponseRate != 0 {
		t.Errorf("response rate tanpa data = %v, want 0", stats.ResponseRate)
	}
}

func TestExportCSVEscaping(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	st := &mockStore{
		allFn: func(ctx context.Context, status string) ([]model.ContactSubmission, error) {
			return []model.ContactSubmission{
				{
					SubmissionID:        "sub-1",
					SubmissionName:      `Budi "Agen" Santoso`,
					SubmissionEmail:     "budi@example.com",
					SubmissionPhone:     "08",
					SubmissionMessage:   "Halo,\nmau tanya rumah, harga nego?",
					SubmissionStatus:    model.StatusNew,
					SubmissionCreatedAt: created,
				},
			}, nil
		},
	}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	out, err := lc.ExportCSV(context.Background(), "")
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "id,name,email,phone,message,") {
		t.Errorf("header CSV salah: %q", strings.SplitN(s, "\n", 2)[0])
	}
	if !strings.Contains(s, `"Budi ""Agen"" Santoso"`) {
		t.Error("nama dengan kutip harus di-escape standar CSV")
	}
	if !strings.Contains(s, created.Format(time.RFC3339)) {
		t.Error("created_at harus RFC3339")
	}
}

func TestExportCSVEmpty(t *testing.T) {
	st := &mockStore{}
	lc := NewLifecycle(st, stubDispatcher(nil, true))

	out, err := lc.ExportCSV(context.Background(), "closed")
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 1 {
		t.Errorf("export kosong harus tetap punya header saja, dapat %d baris", len(lines))
	}
}
