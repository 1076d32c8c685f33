package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newBrevoTestServer(t *testing.T, status int, respBody string, capture *brevoRecorder) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			capture.Path = r.URL.Path
			capture.APIKey = r.Header.Get("api-key")
			_ = json.NewDecoder(r.Body).Decode(&capture.Body)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
}

type brevoRecorder struct {
	Path   string
	APIKey string
	Body   map[string]any
}

func TestBrevoSendEmail(t *testing.T) {
	var rec brevoRecorder
	srv := newBrevoTestServer(t, http.StatusCreated, `{"messageId":"x"}`, &rec)
	defer srv.Close()

	b := &BrevoClient{APIKey: "key-123", BaseURL: srv.URL, HTTP: srv.Client()}
	err := b.SendEmail(context.Background(), "Budi", "budi@example.com", "Halo", "<p>isi</p>")
	if err != nil {
		t.Fatalf("SendEmail: %v", err)
	}
	if rec.Path != "/smtp/email" {
		t.Errorf("path = %q, want /smtp/email", rec.Path)
	}
	if rec.APIKey != "key-123" {
		t.Errorf("api-key header = %q", rec.APIKey)
	}
	if rec.Body["subject"] != "Halo" {
		t.Errorf("subject = %v", rec.Body["subject"])
	}
}

func TestBrevoUpsertContactPayload(t *testing.T) {
	var rec brevoRecorder
	srv := newBrevoTestServer(t, http.StatusCreated, `{}`, &rec)
	defer srv.Close()

	b := &BrevoClient{APIKey: "key-123", BaseURL: srv.URL, HTTP: srv.Client()}
	err := b.UpsertContact(context.Background(), "budi@example.com",
		map[string]any{"NAMA": "Budi"}, 7)
	if err != nil {
		t.Fatalf("UpsertContact: %v", err)
	}
	if rec.Path != "/contacts" {
		t.Errorf("path = %q, want /contacts", rec.Path)
	}
	if rec.Body["updateEnabled"] != true {
		t.Error("updateEnabled harus true (semantik upsert)")
	}
	ids, _ := rec.Body["listIds"].([]any)
	if len(ids) != 1 || ids[0] != float64(7) {
		t.Errorf("listIds = %v, want [7]", rec.Body["listIds"])
	}
}

func TestBrevoErrorEmbedsStatusAndBody(t *testing.T) {
	srv := newBrevoTestServer(t, http.StatusBadRequest,
		`{"code":"duplicate_parameter","message":"Unable to create contact"}`, nil)
	defer srv.Close()

	b := &BrevoClient{APIKey: "key-123", BaseURL: srv.URL, HTTP: srv.Client()}
	err := b.UpsertContact(context.Background(), "budi@example.com", nil, 0)
	if err == nil {
		t.Fatal("expected error untuk status 400")
	}
	// Body ikut dalam pesan supaya dispatcher bisa mendeteksi duplicate_parameter
	if !strings.Contains(err.Error(), "status 400") || !strings.Contains(err.Error(), "duplicate_parameter") {
		t.Errorf("error = %q", err)
	}
	if !isAlreadyExistsError(err.Error()) {
		t.Error("pesan error harus terdeteksi sebagai kontak duplikat")
	}
}

func TestBrevoMissingAPIKey(t *testing.T) {
	b := &BrevoClient{BaseURL: "http://127.0.0.1:0"}
	if err := b.SendEmail(context.Background(), "a", "a@b.co", "s", "h"); err == nil {
		t.Fatal("expected error saat API key kosong")
	}
}
