package participants

import (
	"math"
	"time"

	json "github.com/goccy/go-json"

	"huntly/internal/instant"
)

// TierStatus is the computed state of one reward tier for one participant.
type TierStatus struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	RequiredScans int        `json:"required_scans"`
	Unlocked      bool       `json:"unlocked"`
	Redeemed      bool       `json:"redeemed"`
	Pending       bool       `json:"pending"`
	RedeemedAt    *time.Time `json:"redeemed_at,omitempty"`
}

// Summary is the derived per-participant progress view served by the API
// and consumed by the campaign aggregators.
type Summary struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	ExternalID       string       `json:"external_id"`
	ScannedCount     int          `json:"scanned_count"`
	TotalCodes       int          `json:"total_codes"`
	ProgressPercent  int          `json:"progress_percent"`
	IsCompleted      bool         `json:"is_completed"`
	DrawingEntries   int          `json:"drawing_entries"`
	BonusEntries     int          `json:"bonus_entries"`
	TotalRedemptions int          `json:"total_redemptions"`
	Tiers            []TierStatus `json:"tiers"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	FirstScanAt      *time.Time   `json:"first_scan_at,omitempty"`
	CompletionTime   *time.Time   `json:"completion_time,omitempty"`

	// Events is the normalized scan history; excluded from API payloads.
	Events []ScanEvent `json:"-"`
}

type redemptionEntry struct {
	Redeemed   bool            `json:"redeemed"`
	RedeemedAt instant.Instant `json:"redeemedTimestamp"`
}

// parseRedemptions decodes the stored redemption-status JSON. It fails
// closed: any decode error means no tier counts as redeemed.
func parseRedemptions(raw string) map[string]redemptionEntry {
	out := map[string]redemptionEntry{}
	if raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return map[string]redemptionEntry{}
	}
	return out
}

// Summarize computes the full progress view for one participant. Scanned
// count is the raw history length, so a scan whose code was lost still
// counts toward progress. Redemptions only count for known tiers.
func Summarize(p *Participant, totalCodes int) Summary {
	events := NormalizeScans(p.ScannedCodes)
	scanned := len(events)

	progress := 0
	if totalCodes > 0 {
		progress = int(math.Round(float64(scanned) / float64(totalCodes) * 100))
		if progress > 100 {
			progress = 100
		}
	}

	redemptions := parseRedemptions(p.RedemptionStatus)

	tiers := make([]TierStatus, 0, len(knownTiers))
	totalRedeemed := 0
	for _, tier := range knownTiers {
		status := TierStatus{
			ID:            tier.ID,
			Name:          tier.Name,
			RequiredScans: tier.RequiredScans,
			Unlocked:      scanned >= tier.RequiredScans,
		}
		if entry, ok := redemptions[tier.ID]; ok && entry.Redeemed {
			status.Redeemed = true
			totalRedeemed++
			if !entry.RedeemedAt.IsZero() {
				t := entry.RedeemedAt.Time()
				status.RedeemedAt = &t
			}
		}
		status.Pending = status.Unlocked && !status.Redeemed
		tiers = append(tiers, status)
	}

	return Summary{
		ID:               p.ID,
		Name:             p.Name(),
		Email:            p.Email,
		Phone:            p.Phone,
		ExternalID:       p.ExternalID,
		ScannedCount:     scanned,
		TotalCodes:       totalCodes,
		ProgressPercent:  progress,
		IsCompleted:      totalCodes > 0 && scanned >= totalCodes,
		DrawingEntries:   p.DrawingEntries,
		BonusEntries:     p.BonusEntries,
		TotalRedemptions: totalRedeemed,
		Tiers:            tiers,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		FirstScanAt:      p.FirstScanAt,
		CompletionTime:   p.CompletionTime,
		Events:           events,
	}
}

// SummarizeAll computes summaries for a batch of participants.
func SummarizeAll(list []Participant, totalCodes int) []Summary {
	out := make([]Summary, 0, len(list))
	for i := range list {
		out = append(out, Summarize(&list[i], totalCodes))
	}
	return out
}
