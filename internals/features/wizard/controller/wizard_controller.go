package controller

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reportModel "laporanku_backend/internals/features/reports/model"
	reportService "laporanku_backend/internals/features/reports/service"
	staffModel "laporanku_backend/internals/features/staff/model"
	dto "laporanku_backend/internals/features/wizard/dto"
	service "laporanku_backend/internals/features/wizard/service"
	helper "laporanku_backend/internals/helpers"

	reportDto "laporanku_backend/internals/features/reports/dto"
)

const sessionCookieName = "report_session"

// StaffDirectory menyediakan daftar nama petugas TRANSMISI yang masih aktif,
// dipakai untuk merekonsiliasi pilihan yang tersimpan di dokumen wizard.
type StaffDirectory interface {
	TransmisiNames(ctx context.Context) ([]string, error)
}

type gormStaffDirectory struct {
	db *gorm.DB
}

func (d *gormStaffDirectory) TransmisiNames(ctx context.Context) ([]string, error) {
	var names []string
	err := d.db.WithContext(ctx).
		Model(&staffModel.StaffModel{}).
		Where("jenis = ?", "TRANSMISI").
		Pluck("nama", &names).Error
	return names, err
}

type WizardController struct {
	Staff   StaffDirectory
	Store   *service.WizardStore
	Reports *reportService.ReportService
	Now     func() time.Time
}

func NewWizardController(db *gorm.DB, store *service.WizardStore, reports *reportService.ReportService) *WizardController {
	return &WizardController{
		Staff:   &gormStaffDirectory{db: db},
		Store:   store,
		Reports: reports,
		Now:     time.Now,
	}
}

// sessionID: header X-Session-ID menang, lalu cookie; kalau dua-duanya kosong
// dibuatkan sesi baru dan ditanam sebagai cookie.
func (ctrl *WizardController) sessionID(c *fiber.Ctx) string {
	if sid := c.Get("X-Session-ID"); sid != "" {
		return sid
	}
	if sid := c.Cookies(sessionCookieName); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return sid
}

func parseKind(c *fiber.Ctx) (reportModel.ReportKind, bool) {
	return reportModel.ParseReportKind(c.Params("kind"))
}

// =============================
// GET /api/form/:kind
// =============================
// Muat dokumen wizard; pilihan TRANSMISI direkonsiliasi dulu terhadap
// direktori petugas supaya nama yang sudah dihapus admin tidak muncul lagi.
func (ctrl *WizardController) Get(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report type")
	}
	sid := ctrl.sessionID(c)

	payload, err := ctrl.Store.Load(c.Context(), sid, kind)
	if err != nil {
		log.Printf("[ERROR] load wizard doc: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load form")
	}

	if len(payload.TransmisiStaff) > 0 {
		if names, err := ctrl.Staff.TransmisiNames(c.Context()); err != nil {
			log.Printf("[WARN] transmisi reconcile skipped: %v", err)
		} else if _, err := ctrl.Store.DropMissingTransmisi(c.Context(), sid, kind, payload, names); err != nil {
			log.Printf("[WARN] transmisi reconcile not persisted: %v", err)
		}
	}

	return c.JSON(fiber.Map{"sessionId": sid, "form": payload})
}

// =============================
// PUT /api/form/:kind
// =============================
// Patch shallow-merge: hanya field top-level yang dikirim yang menimpa.
func (ctrl *WizardController) Put(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report type")
	}

	var patch map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &patch); err != nil || patch == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}

	sid := ctrl.sessionID(c)
	payload, err := ctrl.Store.Save(c.Context(), sid, kind, patch)
	if err != nil {
		log.Printf("[ERROR] save wizard doc: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save form")
	}
	return c.JSON(fiber.Map{"sessionId": sid, "form": payload})
}

// =============================
// DELETE /api/form/:kind
// =============================
func (ctrl *WizardController) Delete(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report type")
	}
	sid := ctrl.sessionID(c)
	if err := ctrl.Store.Clear(c.Context(), sid, kind); err != nil {
		log.Printf("[ERROR] clear wizard doc: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset form")
	}
	return helper.JsonOK(c, "Form reset", nil)
}

// =============================
// POST /api/form/:kind/events/toggle
// =============================
// Toggle exact-triple: kirim triple yang sama dua kali = kembali ke semula.
func (ctrl *WizardController) ToggleEvent(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report type")
	}

	var ev reportDto.SelectedEvent
	if err := c.BodyParser(&ev); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if ev.Time == "" || ev.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "time and name are required")
	}

	sid := ctrl.sessionID(c)
	payload, err := ctrl.Store.ToggleEvent(c.Context(), sid, kind, ev)
	if err != nil {
		log.Printf("[ERROR] toggle event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle event")
	}
	return c.JSON(fiber.Map{"sessionId": sid, "selectedEvents": payload.SelectedEvents})
}

// =============================
// GET /api/form/:kind/summary
// =============================
func (ctrl *WizardController) Summary(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report type")
	}
	sid := ctrl.sessionID(c)

	payload, err := ctrl.Store.Load(c.Context(), sid, kind)
	if err != nil {
		log.Printf("[ERROR] load wizard doc: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load form")
	}
	return c.JSON(dto.BuildSummary(kind, payload, ctrl.Now()))
}

// =============================
// POST /api/form/:kind/resend
// =============================
// Kirim ulang dokumen wizard saat ini sebagai submission baru. Dokumen tidak
// dibersihkan: resend memang dipakai saat submit pertama diragukan sampai.
func (ctrl *WizardController) Resend(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report type")
	}
	sid := ctrl.sessionID(c)

	payload, err := ctrl.Store.Load(c.Context(), sid, kind)
	if err != nil {
		log.Printf("[ERROR] load wizard doc: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load form")
	}

	if err := ctrl.Reports.Submit(c.Context(), kind, payload); err != nil {
		log.Printf("[ERROR] resend %s report: %v", kind, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to resend data",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Data berhasil dikirim ulang!",
	})
}
