// Package lottery builds the weighted ticket list and runs the
// exclusion-aware winner drawing against the persisted winner history.
package lottery

import (
	"math"

	"huntly/internal/participants"
)

// EntryType distinguishes how a ticket was earned.
type EntryType string

const (
	EntryTypeScan  EntryType = "Scan"
	EntryTypeBonus EntryType = "Bonus"
)

// Entry is one synthetic lottery ticket. A user holding five tickets is
// five times as likely to be drawn as a user holding one; that is the
// whole fairness model.
type Entry struct {
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ExternalID  string    `json:"external_id"`
	Type        EntryType `json:"type"`
	EntryNumber int       `json:"entry_number"`
}

// EntryStats summarizes the ticket pool.
type EntryStats struct {
	TotalEntries      int     `json:"total_entries"`
	ScanEntries       int     `json:"scan_entries"`
	BonusEntries      int     `json:"bonus_entries"`
	UsersWithEntries  int     `json:"users_with_entries"`
	AvgEntriesPerUser float64 `json:"avg_entries_per_participant"`
}

// BuildEntries expands per-user entry counts into a flat ticket list:
// per user, drawing entries first, then bonus entries. Ticket numbers run
// sequentially from 1 across the whole pool. Negative counts contribute
// nothing.
func BuildEntries(users []participants.Summary) []Entry {
	var entries []Entry
	seq := 0
	for i := range users {
		u := &users[i]
		for n := 0; n < u.DrawingEntries; n++ {
			seq++
			entries = append(entries, Entry{
				UserID:      u.ID,
				Name:        u.Name,
				Email:       u.Email,
				Phone:       u.Phone,
				ExternalID:  u.ExternalID,
				Type:        EntryTypeScan,
				EntryNumber: seq,
			})
		}
		for n := 0; n < u.BonusEntries; n++ {
			seq++
			entries = append(entries, Entry{
				UserID:      u.ID,
				Name:        u.Name,
				Email:       u.Email,
				Phone:       u.Phone,
				ExternalID:  u.ExternalID,
				Type:        EntryTypeBonus,
				EntryNumber: seq,
			})
		}
	}
	return entries
}

// SummarizeEntries tallies the ticket pool for display.
func SummarizeEntries(entries []Entry) EntryStats {
	stats := EntryStats{TotalEntries: len(entries)}
	holders := map[string]struct{}{}
	for _, e := range entries {
		switch e.Type {
		case EntryTypeScan:
			stats.ScanEntries++
		case EntryTypeBonus:
			stats.BonusEntries++
		}
		holders[e.UserID] = struct{}{}
	}
	stats.UsersWithEntries = len(holders)
	if stats.UsersWithEntries > 0 {
		stats.AvgEntriesPerUser = math.Round(float64(stats.TotalEntries)/float64(stats.UsersWithEntries)*10) / 10
	}
	return stats
}
