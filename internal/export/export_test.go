package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntly/internal/lottery"
	"huntly/internal/participants"
)

func TestParticipantsWorkbook(t *testing.T) {
	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	summaries := []participants.Summary{
		{
			ID: "u1", Name: "Ada Lovelace", Email: "ada@example.com",
			ScannedCount: 9, ProgressPercent: 50,
			DrawingEntries: 2, BonusEntries: 1,
			CreatedAt: first, FirstScanAt: &first,
		},
	}

	f, err := ParticipantsWorkbook(summaries)
	require.NoError(t, err)

	header, err := f.GetCellValue("Participants", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	name, err := f.GetCellValue("Participants", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)

	scans, err := f.GetCellValue("Participants", "F2")
	require.NoError(t, err)
	assert.Equal(t, "9", scans)

	firstScan, err := f.GetCellValue("Participants", "M2")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01 10:00:00", firstScan)

	// Missing completion timestamp renders as an empty cell.
	completed, err := f.GetCellValue("Participants", "N2")
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestEntriesWorkbook(t *testing.T) {
	entries := []lottery.Entry{
		{UserID: "u1", Name: "Ada", ExternalID: "crm-7", Type: lottery.EntryTypeScan, EntryNumber: 1},
		{UserID: "u1", Name: "Ada", ExternalID: "crm-7", Type: lottery.EntryTypeBonus, EntryNumber: 2},
	}

	f, err := EntriesWorkbook(entries)
	require.NoError(t, err)

	external, err := f.GetCellValue("Entries", "E2")
	require.NoError(t, err)
	assert.Equal(t, "crm-7", external)

	kind, err := f.GetCellValue("Entries", "F3")
	require.NoError(t, err)
	assert.Equal(t, "Bonus", kind)
}

func TestWinnersWorkbook(t *testing.T) {
	records := []lottery.WinnerRecord{
		{
			ID: "w1", DrawTimestamp: time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC),
			UserID: "u1", Name: "Ada", ExternalID: "crm-7",
			EntryType:   lottery.EntryTypeScan,
			EntryNumber: 1, TotalEntriesAtDraw: 42,
		},
	}

	f, err := WinnersWorkbook(records)
	require.NoError(t, err)

	drawn, err := f.GetCellValue("Winners", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-07 18:00:00", drawn)

	external, err := f.GetCellValue("Winners", "G2")
	require.NoError(t, err)
	assert.Equal(t, "crm-7", external)

	total, err := f.GetCellValue("Winners", "J2")
	require.NoError(t, err)
	assert.Equal(t, "42", total)
}
