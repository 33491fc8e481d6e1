package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntly/internal/participants"
)

func TestBuildEntriesExpandsCounts(t *testing.T) {
	users := []participants.Summary{
		{ID: "a", Name: "Ada", ExternalID: "crm-1", DrawingEntries: 2, BonusEntries: 1},
		{ID: "b", Name: "Bob", DrawingEntries: 0, BonusEntries: 0},
		{ID: "c", Name: "Cyd", DrawingEntries: 1, BonusEntries: 0},
	}

	entries := BuildEntries(users)
	require.Len(t, entries, 4)

	assert.Equal(t, "a", entries[0].UserID)
	assert.Equal(t, "crm-1", entries[0].ExternalID)
	assert.Equal(t, EntryTypeScan, entries[0].Type)
	assert.Equal(t, 1, entries[0].EntryNumber)

	assert.Equal(t, EntryTypeScan, entries[1].Type)
	assert.Equal(t, 2, entries[1].EntryNumber)

	// Bonus tickets follow scan tickets within a user.
	assert.Equal(t, "a", entries[2].UserID)
	assert.Equal(t, EntryTypeBonus, entries[2].Type)
	assert.Equal(t, 3, entries[2].EntryNumber)

	// Numbering continues across users rather than restarting.
	assert.Equal(t, "c", entries[3].UserID)
	assert.Equal(t, 4, entries[3].EntryNumber)
}

func TestBuildEntriesNumbersWholePool(t *testing.T) {
	users := []participants.Summary{
		{ID: "a", DrawingEntries: 3, BonusEntries: 2},
		{ID: "b", DrawingEntries: 1, BonusEntries: 1},
	}
	entries := BuildEntries(users)
	require.Len(t, entries, 7)
	for i, e := range entries {
		assert.Equal(t, i+1, e.EntryNumber)
	}
}

func TestBuildEntriesNegativeCountsIgnored(t *testing.T) {
	users := []participants.Summary{
		{ID: "a", DrawingEntries: -3, BonusEntries: 1},
	}
	entries := BuildEntries(users)
	require.Len(t, entries, 1)
	assert.Equal(t, EntryTypeBonus, entries[0].Type)
	assert.Equal(t, 1, entries[0].EntryNumber)
}

func TestSummarizeEntries(t *testing.T) {
	users := []participants.Summary{
		{ID: "a", DrawingEntries: 2, BonusEntries: 1},
		{ID: "b", DrawingEntries: 1},
	}
	stats := SummarizeEntries(BuildEntries(users))

	assert.Equal(t, 4, stats.TotalEntries)
	assert.Equal(t, 3, stats.ScanEntries)
	assert.Equal(t, 1, stats.BonusEntries)
	assert.Equal(t, 2, stats.UsersWithEntries)
	assert.InDelta(t, 2.0, stats.AvgEntriesPerUser, 0.001)
}

func TestSummarizeEntriesAverageOneDecimal(t *testing.T) {
	users := []participants.Summary{
		{ID: "a", DrawingEntries: 5},
		{ID: "b", DrawingEntries: 1},
		{ID: "c", DrawingEntries: 1},
	}
	stats := SummarizeEntries(BuildEntries(users))
	assert.InDelta(t, 2.3, stats.AvgEntriesPerUser, 0.001)
}

func TestSummarizeEntriesEmpty(t *testing.T) {
	stats := SummarizeEntries(nil)
	assert.Equal(t, 0, stats.TotalEntries)
	assert.Equal(t, 0, stats.UsersWithEntries)
	assert.Equal(t, 0.0, stats.AvgEntriesPerUser)
}
