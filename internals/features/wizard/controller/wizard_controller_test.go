package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reportModel "laporanku_backend/internals/features/reports/model"
	reportService "laporanku_backend/internals/features/reports/service"
	service "laporanku_backend/internals/features/wizard/service"
)

/* =========================
   Fakes
   ========================= */

type memDocs struct {
	docs map[string][]byte
}

func (m *memDocs) Get(_ context.Context, sid string, kind reportModel.ReportKind) ([]byte, error) {
	return m.docs[sid+"/"+string(kind)], nil
}

func (m *memDocs) Put(_ context.Context, sid string, kind reportModel.ReportKind, raw []byte) error {
	m.docs[sid+"/"+string(kind)] = raw
	return nil
}

func (m *memDocs) Delete(_ context.Context, sid string, kind reportModel.ReportKind) error {
	delete(m.docs, sid+"/"+string(kind))
	return nil
}

type memRows struct {
	inserted []*reportModel.ReportModel
}

func (m *memRows) Insert(_ context.Context, _ reportModel.ReportKind, row *reportModel.ReportModel) error {
	m.inserted = append(m.inserted, row)
	return nil
}

func (m *memRows) List(_ context.Context, _ reportModel.ReportKind, _, _ int) ([]reportModel.ReportModel, int64, error) {
	return nil, 0, nil
}

func (m *memRows) FindByID(_ context.Context, _ reportModel.ReportKind, _ uuid.UUID) (*reportModel.ReportModel, error) {
	return nil, reportService.ErrReportNotFound
}

func (m *memRows) DeleteByID(_ context.Context, _ reportModel.ReportKind, _ uuid.UUID) error {
	return nil
}

type memDirectory struct {
	names []string
}

func (m *memDirectory) TransmisiNames(_ context.Context) ([]string, error) {
	return m.names, nil
}

type memMirror struct {
	appends [][]string
}

func (m *memMirror) Append(_ context.Context, _ string, row []string) error {
	m.appends = append(m.appends, row)
	return nil
}

func (m *memMirror) DeleteRowByTimestamp(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}

func newWizardApp(directory *memDirectory) (*fiber.App, *memRows, *memMirror) {
	rows := &memRows{}
	mirror := &memMirror{}
	reports := &reportService.ReportService{
		Rows:   rows,
		Mirror: mirror,
		Now:    func() time.Time { return time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC) },
	}
	store := &service.WizardStore{Docs: &memDocs{docs: map[string][]byte{}}}
	ctrl := &WizardController{
		Staff:   directory,
		Store:   store,
		Reports: reports,
		Now:     reports.Now,
	}

	app := fiber.New()
	form := app.Group("/api/form")
	form.Get("/:kind", ctrl.Get)
	form.Put("/:kind", ctrl.Put)
	form.Delete("/:kind", ctrl.Delete)
	form.Post("/:kind/events/toggle", ctrl.ToggleEvent)
	form.Get("/:kind/summary", ctrl.Summary)
	form.Post("/:kind/resend", ctrl.Resend)
	return app, rows, mirror
}

func doJSON(t *testing.T, app *fiber.App, method, url, body, sid string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.Header.Set("X-Session-ID", sid)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	out := map[string]json.RawMessage{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return resp, out
}

/* =========================
   Tests
   ========================= */

func TestGetIssuesSessionCookieWhenMissing(t *testing.T) {
	app, _, _ := newWizardApp(&memDirectory{})

	resp, out := doJSON(t, app, http.MethodGet, "/api/form/morning", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, out["sessionId"])

	found := false
	for _, ck := range resp.Cookies() {
		if ck.Name == "report_session" && ck.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "cookie report_session harus ditanam")
}

func TestPutThenGetRoundTrip(t *testing.T) {
	app, _, _ := newWizardApp(&memDirectory{names: []string{"Budi"}})

	resp, _ := doJSON(t, app, http.MethodPut, "/api/form/morning",
		`{"pduStaff":"Andi","transmisiStaff":["Budi"]}`, "sess-1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Patch kedua tidak menimpa field yang tidak dikirim.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/form/morning", `{"tdStaff":"Rina"}`, "sess-1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, out := doJSON(t, app, http.MethodGet, "/api/form/morning", "", "sess-1")
	var form struct {
		PduStaff       string   `json:"pduStaff"`
		TdStaff        string   `json:"tdStaff"`
		TransmisiStaff []string `json:"transmisiStaff"`
	}
	require.NoError(t, json.Unmarshal(out["form"], &form))
	assert.Equal(t, "Andi", form.PduStaff)
	assert.Equal(t, "Rina", form.TdStaff)
	assert.Equal(t, []string{"Budi"}, form.TransmisiStaff)
}

// Nama transmisi yang sudah dihapus admin harus hilang dari dokumen pada
// load berikutnya.
func TestGetReconcilesStaleTransmisi(t *testing.T) {
	app, _, _ := newWizardApp(&memDirectory{names: []string{"Sari"}})

	doJSON(t, app, http.MethodPut, "/api/form/morning",
		`{"transmisiStaff":["Budi","Sari"]}`, "sess-1")

	_, out := doJSON(t, app, http.MethodGet, "/api/form/morning", "", "sess-1")
	var form struct {
		TransmisiStaff []string `json:"transmisiStaff"`
	}
	require.NoError(t, json.Unmarshal(out["form"], &form))
	assert.Equal(t, []string{"Sari"}, form.TransmisiStaff)
}

func TestPutInvalidKind(t *testing.T) {
	app, _, _ := newWizardApp(&memDirectory{})
	resp, _ := doJSON(t, app, http.MethodPut, "/api/form/night", `{"pduStaff":"X"}`, "sess-1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteResetsForm(t *testing.T) {
	app, _, _ := newWizardApp(&memDirectory{})

	doJSON(t, app, http.MethodPut, "/api/form/morning", `{"pduStaff":"Andi"}`, "sess-1")
	resp, _ := doJSON(t, app, http.MethodDelete, "/api/form/morning", "", "sess-1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, out := doJSON(t, app, http.MethodGet, "/api/form/morning", "", "sess-1")
	var form struct {
		PduStaff string `json:"pduStaff"`
	}
	require.NoError(t, json.Unmarshal(out["form"], &form))
	assert.Equal(t, "", form.PduStaff)
}

func TestToggleEventEndpoint(t *testing.T) {
	app, _, _ := newWizardApp(&memDirectory{})
	body := `{"time":"08.00 - 09.30","name":"HABAR BANUA","type":"rerun"}`

	_, out := doJSON(t, app, http.MethodPost, "/api/form/morning/events/toggle", body, "sess-1")
	var evs []map[string]string
	require.NoError(t, json.Unmarshal(out["selectedEvents"], &evs))
	assert.Len(t, evs, 1)

	_, out = doJSON(t, app, http.MethodPost, "/api/form/morning/events/toggle", body, "sess-1")
	require.NoError(t, json.Unmarshal(out["selectedEvents"], &evs))
	assert.Empty(t, evs)
}

func TestResendSubmitsCurrentDocument(t *testing.T) {
	app, rows, mirror := newWizardApp(&memDirectory{})

	doJSON(t, app, http.MethodPut, "/api/form/afternoon", `{"pduStaff":"Andi"}`, "sess-1")
	resp, out := doJSON(t, app, http.MethodPost, "/api/form/afternoon/resend", "", "sess-1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", string(out["success"]))

	require.Len(t, rows.inserted, 1)
	assert.Equal(t, "Andi", rows.inserted[0].PduStaff)
	require.Len(t, mirror.appends, 1)
}

func TestSummaryEndpoint(t *testing.T) {
	app, _, _ := newWizardApp(&memDirectory{})

	doJSON(t, app, http.MethodPut, "/api/form/morning", `{"pduStaff":"Andi"}`, "sess-1")
	resp, out := doJSON(t, app, http.MethodGet, "/api/form/morning/summary", "", "sess-1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var title string
	require.NoError(t, json.Unmarshal(out["title"], &title))
	assert.Equal(t, "Laporan TD Pagi", title)
}
