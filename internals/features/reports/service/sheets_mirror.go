package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"laporanku_backend/internals/configs"
)

// SheetMirror adalah kontrak ke spreadsheet mirror. Dibuat interface supaya
// submit/delete bisa dites tanpa jaringan.
type SheetMirror interface {
	Append(ctx context.Context, sheetName string, row []string) error
	// DeleteRowByTimestamp memindai kolom A mencari timestamp yang sama
	// persis; (false, nil) kalau tidak ketemu.
	DeleteRowByTimestamp(ctx context.Context, sheetName, timestamp string) (bool, error)
}

/* =========================
   Implementasi Google Sheets
   ========================= */

type GoogleSheetsMirror struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewGoogleSheetsMirrorFromEnv merakit kredensial service account dari
// potongan ENV yang sama dengan aplikasi lama (GOOGLE_SHEETS_*).
func NewGoogleSheetsMirrorFromEnv(ctx context.Context) (*GoogleSheetsMirror, error) {
	spreadsheetID := configs.SpreadsheetID
	if spreadsheetID == "" {
		return nil, fmt.Errorf("missing env: GOOGLE_SHEETS_SPREADSHEET_ID")
	}

	privateKey := strings.ReplaceAll(configs.GetEnv("GOOGLE_SHEETS_PRIVATE_KEY"), `\n`, "\n")
	creds := map[string]string{
		"type":                        "service_account",
		"project_id":                  configs.GetEnv("GOOGLE_SHEETS_PROJECT_ID"),
		"private_key_id":              configs.GetEnv("GOOGLE_SHEETS_PRIVATE_KEY_ID"),
		"private_key":                 privateKey,
		"client_email":                configs.GetEnv("GOOGLE_SHEETS_CLIENT_EMAIL"),
		"client_id":                   configs.GetEnv("GOOGLE_SHEETS_CLIENT_ID"),
		"auth_uri":                    "https://accounts.google.com/o/oauth2/auth",
		"token_uri":                   "https://oauth2.googleapis.com/token",
		"auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
		"client_x509_cert_url":        configs.GetEnv("GOOGLE_SHEETS_CLIENT_X509_CERT_URL"),
	}
	raw, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("marshal credentials: %w", err)
	}

	cred, err := google.CredentialsFromJSON(ctx, raw, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithCredentials(cred))
	if err != nil {
		return nil, fmt.Errorf("sheets.NewService: %w", err)
	}

	return &GoogleSheetsMirror{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (m *GoogleSheetsMirror) Append(ctx context.Context, sheetName string, row []string) error {
	// Hitung baris berikutnya dari isi kolom A (cara aplikasi lama).
	resp, err := m.svc.Spreadsheets.Values.
		Get(m.spreadsheetID, sheetName+"!A:A").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read %s!A:A: %w", sheetName, err)
	}
	next := len(resp.Values) + 1

	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	_, err = m.svc.Spreadsheets.Values.
		Append(m.spreadsheetID, fmt.Sprintf("%s!A%d", sheetName, next), &sheets.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %s row %d: %w", sheetName, next, err)
	}
	return nil
}

func (m *GoogleSheetsMirror) DeleteRowByTimestamp(ctx context.Context, sheetName, timestamp string) (bool, error) {
	resp, err := m.svc.Spreadsheets.Values.
		Get(m.spreadsheetID, sheetName+"!A:A").
		Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("read %s!A:A: %w", sheetName, err)
	}

	idx := FindRowByTimestamp(resp.Values, timestamp)
	if idx < 0 {
		return false, nil
	}

	sheetID, err := m.sheetID(ctx, sheetName)
	if err != nil {
		return false, err
	}

	_, err = m.svc.Spreadsheets.BatchUpdate(m.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(idx),
					EndIndex:   int64(idx + 1),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("delete %s row %d: %w", sheetName, idx+1, err)
	}
	return true, nil
}

func (m *GoogleSheetsMirror) sheetID(ctx context.Context, sheetName string) (int64, error) {
	ss, err := m.svc.Spreadsheets.Get(m.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == sheetName {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %q tidak ditemukan", sheetName)
}

// FindRowByTimestamp memindai kolom A secara linier mencari kecocokan persis.
// Mengembalikan indeks baris 0-based, atau -1.
func FindRowByTimestamp(values [][]interface{}, timestamp string) int {
	for i, row := range values {
		if len(row) == 0 {
			continue
		}
		if s, ok := row[0].(string); ok && s == timestamp {
			return i
		}
	}
	return -1
}
