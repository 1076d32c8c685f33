package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/dto"
	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/service"
	helper "github.com/Candratama/four-best-website-sub000/internals/helpers"
)

var validateSubmission = validator.New()

type SubmissionController struct {
	Lifecycle *service.Lifecycle
}

func NewSubmissionController(lc *service.Lifecycle) *SubmissionController {
	return &SubmissionController{Lifecycle: lc}
}

// =======================
// ✉️ Create submission (public contact form)
// =======================
func (ctrl *SubmissionController) Create(c *fiber.Ctx) error {
	var body dto.CreateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	sub, err := ctrl.Lifecycle.Create(c.UserContext(), body)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return helper.JsonError(c, fiber.StatusBadRequest, ve.Msg)
		}
		// Persistensi gagal — fatal untuk request ini.
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan. Silakan coba lagi.")
	}

	// Outcome notifikasi tidak memengaruhi respons ke pengunjung.
	return helper.JsonCreated(c, "Pesan Anda berhasil terkirim. Kami akan segera menghubungi Anda.", dto.ToSubmissionDTO(*sub))
}

// =======================
// 📄 List submissions (admin, paginated)
// Query: ?page=&per_page=&status=
// =======================
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	status := c.Query("status")

	subs, total, err := ctrl.Lifecycle.Store.List(c.UserContext(), status, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data submission")
	}

	resp := make([]dto.SubmissionDTO, 0, len(subs))
	for _, s := range subs {
		resp = append(resp, dto.ToSubmissionDTO(s))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Get submission detail (admin)
// =======================
func (ctrl *SubmissionController) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	sub, err := ctrl.Lifecycle.Store.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}
	if sub == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.ToSubmissionDTO(*sub))
}

// =======================
// 📝 Update submission lifecycle fields (admin)
// =======================
func (ctrl *SubmissionController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubmission.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sub, err := ctrl.Lifecycle.Update(c.UserContext(), id, body)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update submission")
	}
	return helper.JsonUpdated(c, "Submission diperbarui", dto.ToSubmissionDTO(*sub))
}

// =======================
// 🔁 Resend notification (admin)
// =======================
func (ctrl *SubmissionController) ResendEmail(c *fiber.Ctx) error {
	id := c.Params("id")

	outcome, err := ctrl.Lifecycle.RetryNotification(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim ulang notifikasi")
	}

	if !outcome.EmailSent {
		msg := "Notifikasi admin gagal dikirim"
		if outcome.EmailError != nil {
			msg = *outcome.EmailError
		}
		return helper.JsonOK(c, msg, fiber.Map{
			"email_sent":  false,
			"email_error": outcome.EmailError,
		})
	}
	return helper.JsonOK(c, "Notifikasi berhasil dikirim ulang", fiber.Map{
		"email_sent": true,
	})
}

// =======================
// 📊 Stats (admin dashboard)
// =======================
func (ctrl *SubmissionController) Stats(c *fiber.Ctx) error {
	stats, err := ctrl.Lifecycle.Stats(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "ok", stats)
}

// =======================
// 📤 Export CSV (admin)
// Query: ?status=
// =======================
func (ctrl *SubmissionController) Export(c *fiber.Ctx) error {
	data, err := ctrl.Lifecycle.ExportCSV(c.UserContext(), c.Query("status"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal export submission")
	}

	filename := "submissions_" + time.Now().Format("20060102") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
