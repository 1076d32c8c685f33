package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Candratama/four-best-website-sub000/internals/configs"
)

type NotificationPayload struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	VisitDate *string
	VisitTime *string
}

type ChannelResult struct {
	Success bool
	Error   string
}

// DispatchOutcome adalah hasil agregat tiga channel. Hanya channel admin
// yang menentukan pasangan (email_sent, email_error) yang disimpan;
// kegagalan channel lain cukup dicatat.
type DispatchOutcome struct {
	EmailSent  bool
	EmailError *string
	Admin      ChannelResult
	Visitor    ChannelResult
	CRM        ChannelResult
}

type ChannelFunc func(ctx context.Context, p NotificationPayload) error

// Dispatcher menjalankan tiga channel notifikasi secara paralel:
// email notifikasi admin, email konfirmasi pengunjung, dan upsert kontak CRM.
// Ketiganya independen — kegagalan satu channel tidak membatalkan yang lain.
type Dispatcher struct {
	AdminChannel   ChannelFunc
	VisitorChannel ChannelFunc
	CRMChannel     ChannelFunc
	Timeout        time.Duration
}

const defaultChannelTimeout = 10 * time.Second

func NewDispatcher(brevo *BrevoClient) *Dispatcher {
	return &Dispatcher{
		AdminChannel:   adminNotificationChannel(brevo),
		VisitorChannel: visitorConfirmationChannel(brevo),
		CRMChannel:     crmUpsertChannel(brevo),
		Timeout:        defaultChannelTimeout,
	}
}

// Dispatch: ketiga channel dijalankan bersamaan, semuanya ditunggu selesai
// (sukses atau gagal), baru outcome agregat dihitung — join-all, bukan race.
func (d *Dispatcher) Dispatch(ctx context.Context, p NotificationPayload) DispatchOutcome {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultChannelTimeout
	}

	var (
		wg                     sync.WaitGroup
		admin, visitor, crmRes ChannelResult
	)

	run := func(name string, ch ChannelFunc, out *ChannelResult) {
		defer wg.Done()
		if ch == nil {
			out.Success = false
			out.Error = "channel tidak terpasang"
			return
		}
		cctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := ch(cctx, p); err != nil {
			out.Success = false
			out.Error = err.Error()
			log.Printf("[NOTIFY] channel %s gagal: %v", name, err)
			return
		}
		out.Success = true
	}

	wg.Add(3)
	go run("admin", d.AdminChannel, &admin)
	go run("visitor", d.VisitorChannel, &visitor)
	go run("crm", d.CRMChannel, &crmRes)
	wg.Wait()

	// Upsert semantics: kontak yang sudah terdaftar dihitung sukses.
	if !crmRes.Success && isAlreadyExistsError(crmRes.Error) {
		crmRes = ChannelResult{Success: true}
	}

	outcome := DispatchOutcome{
		Admin:   admin,
		Visitor: visitor,
		CRM:     crmRes,
	}
	if admin.Success {
		outcome.EmailSent = true
	} else {
		msg := fmt.Sprintf("notifikasi admin gagal: %s", admin.Error)
		outcome.EmailError = &msg
	}
	return outcome
}

func isAlreadyExistsError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "already exist") ||
		strings.Contains(lower, "duplicate_parameter")
}

/* ==========================
   Channel produksi (Brevo)
========================== */

func adminNotificationChannel(brevo *BrevoClient) ChannelFunc {
	return func(ctx context.Context, p NotificationPayload) error {
		to := configs.AdminNotifyEmail
		if to == "" {
			return fmt.Errorf("ADMIN_NOTIFY_EMAIL belum diset")
		}
		subject := fmt.Sprintf("Lead baru dari website: %s", p.Name)
		return brevo.SendEmail(ctx, "Admin", to, subject, adminEmailBody(p))
	}
}

func visitorConfirmationChannel(brevo *BrevoClient) ChannelFunc {
	return func(ctx context.Context, p NotificationPayload) error {
		subject := "Terima kasih telah menghubungi kami"
		return brevo.SendEmail(ctx, p.Name, p.Email, subject, visitorEmailBody(p))
	}
}

func crmUpsertChannel(brevo *BrevoClient) ChannelFunc {
	return func(ctx context.Context, p NotificationPayload) error {
		attrs := map[string]any{
			"NAMA":    p.Name,
			"TELEPON": p.Phone,
		}
		return brevo.UpsertContact(ctx, p.Email, attrs, configs.BrevoListID)
	}
}

func adminEmailBody(p NotificationPayload) string {
	var b strings.Builder
	b.WriteString("<h2>Lead baru dari form kontak</h2>")
	b.WriteString("<table>")
	fmt.Fprintf(&b, "<tr><td><b>Nama</b></td><td>%s</td></tr>", p.Name)
	fmt.Fprintf(&b, "<tr><td><b>Email</b></td><td>%s</td></tr>", p.Email)
	fmt.Fprintf(&b, "<tr><td><b>Telepon</b></td><td>%s</td></tr>", p.Phone)
	fmt.Fprintf(&b, "<tr><td><b>Pesan</b></td><td>%s</td></tr>", p.Message)
	if p.VisitDate != nil {
		fmt.Fprintf(&b, "<tr><td><b>Rencana kunjungan</b></td><td>%s", *p.VisitDate)
		if p.VisitTime != nil {
			fmt.Fprintf(&b, " %s", *p.VisitTime)
		}
		b.WriteString("</td></tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

func visitorEmailBody(p NotificationPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Halo %s,</p>", p.Name)
	b.WriteString("<p>Terima kasih telah menghubungi Four Best Property. ")
	b.WriteString("Pesan Anda sudah kami terima dan tim kami akan segera menghubungi Anda.</p>")
	b.WriteString("<p>Salam,<br>Four Best Property</p>")
	return b.String()
}
