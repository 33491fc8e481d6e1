// Package export renders campaign data as XLSX workbooks for the promo
// team's offline tooling.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"huntly/internal/lottery"
	"huntly/internal/participants"
)

const timeLayout = "2006-01-02 15:04:05"

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func newWorkbook(sheet string, header []any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	end, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", end, style); err != nil {
		return nil, err
	}
	return f, nil
}

// ParticipantsWorkbook renders per-participant progress summaries.
func ParticipantsWorkbook(summaries []participants.Summary) (*excelize.File, error) {
	const sheet = "Participants"
	f, err := newWorkbook(sheet, []any{
		"ID", "Name", "Email", "Phone", "External ID",
		"Scans", "Progress %", "Completed", "Drawing Entries", "Bonus Entries",
		"Redemptions", "Registered", "First Scan", "Completed At",
	})
	if err != nil {
		return nil, err
	}

	for i := range summaries {
		s := &summaries[i]
		row := []any{
			s.ID, s.Name, s.Email, s.Phone, s.ExternalID,
			s.ScannedCount, s.ProgressPercent, s.IsCompleted, s.DrawingEntries, s.BonusEntries,
			s.TotalRedemptions, s.CreatedAt.UTC().Format(timeLayout),
			formatTime(s.FirstScanAt), formatTime(s.CompletionTime),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write participant row: %w", err)
		}
	}
	return f, nil
}

// EntriesWorkbook renders the current lottery ticket pool.
func EntriesWorkbook(entries []lottery.Entry) (*excelize.File, error) {
	const sheet = "Entries"
	f, err := newWorkbook(sheet, []any{
		"User ID", "Name", "Email", "Phone", "External ID", "Type", "Entry Number",
	})
	if err != nil {
		return nil, err
	}

	for i, e := range entries {
		row := []any{e.UserID, e.Name, e.Email, e.Phone, e.ExternalID, string(e.Type), e.EntryNumber}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write entry row: %w", err)
		}
	}
	return f, nil
}

// WinnersWorkbook renders the persisted winner history.
func WinnersWorkbook(records []lottery.WinnerRecord) (*excelize.File, error) {
	const sheet = "Winners"
	f, err := newWorkbook(sheet, []any{
		"ID", "Drawn At", "User ID", "Name", "Email", "Phone", "External ID",
		"Entry Type", "Entry Number", "Total Entries At Draw",
	})
	if err != nil {
		return nil, err
	}

	for i, r := range records {
		row := []any{
			r.ID, r.DrawTimestamp.UTC().Format(timeLayout), r.UserID,
			r.Name, r.Email, r.Phone, r.ExternalID,
			string(r.EntryType), r.EntryNumber, r.TotalEntriesAtDraw,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write winner row: %w", err)
		}
	}
	return f, nil
}
