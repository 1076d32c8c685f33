package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Candratama/four-best-website-sub000/internals/configs"
)

const brevoBaseURL = "https://api.brevo.com/v3"

// BrevoClient memanggil API transaksional Brevo (email + contacts)
// lewat net/http biasa.
type BrevoClient struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewBrevoClientFromEnv() *BrevoClient {
	return &BrevoClient{
		APIKey:  configs.BrevoAPIKey,
		BaseURL: brevoBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoEmailRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

type brevoContactRequest struct {
	Email         string         `json:"email"`
	Attributes    map[string]any `json:"attributes,omitempty"`
	ListIDs       []int          `json:"listIds,omitempty"`
	UpdateEnabled bool           `json:"updateEnabled"`
}

// SendEmail mengirim satu email transaksional {recipient, subject, htmlBody}.
func (b *BrevoClient) SendEmail(ctx context.Context, recipientName, recipientEmail, subject, htmlBody string) error {
	payload := brevoEmailRequest{
		Sender:      brevoAddress{Name: configs.MailSenderName, Email: configs.MailSenderEmail},
		To:          []brevoAddress{{Name: recipientName, Email: recipientEmail}},
		Subject:     subject,
		HTMLContent: htmlBody,
	}
	return b.post(ctx, "/smtp/email", payload)
}

// UpsertContact mendaftarkan kontak ke list CRM.
// Respons "sudah ada" dikembalikan sebagai error berisi body — caller
// (dispatcher) yang memutuskan itu sukses (semantik upsert).
func (b *BrevoClient) UpsertContact(ctx context.Context, email string, attributes map[string]any, listID int) error {
	payload := brevoContactRequest{
		Email:         email,
		Attributes:    attributes,
		UpdateEnabled: true,
	}
	if listID > 0 {
		payload.ListIDs = []int{listID}
	}
	return b.post(ctx, "/contacts", payload)
}

func (b *BrevoClient) post(ctx context.Context, path string, payload any) error {
	if b.APIKey == "" {
		return fmt.Errorf("BREVO_API_KEY belum diset")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("api-key", b.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := b.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brevo %s status %d: %s", path, resp.StatusCode, string(respBody))
	}
	return nil
}
