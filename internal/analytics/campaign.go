package analytics

import (
	"time"

	"huntly/internal/participants"
)

// EngagementBuckets segments users by scan count. The buckets are mutually
// exclusive and always sum to the total user count.
type EngagementBuckets struct {
	Bounced      int `json:"bounced"`
	EarlyDropoff int `json:"early_dropoff"`
	Moderate     int `json:"moderate"`
	NearComplete int `json:"near_complete"`
	Completed    int `json:"completed"`
}

// CompletionTimeBuckets segments completed users by minutes between their
// first scan and completion. Only users carrying both timestamps bucket.
type CompletionTimeBuckets struct {
	Under5Min   int `json:"under_5_min"`
	Under30Min  int `json:"under_30_min"`
	Under1Hour  int `json:"under_1_hour"`
	Under6Hours int `json:"under_6_hours"`
	Over6Hours  int `json:"over_6_hours"`
}

// TierPrizeStats is the redemption funnel for one reward tier.
type TierPrizeStats struct {
	TierID         string `json:"tier_id"`
	Name           string `json:"name"`
	RequiredScans  int    `json:"required_scans"`
	UnlockedUsers  int    `json:"unlocked_users"`
	RedeemedUsers  int    `json:"redeemed_users"`
	RedemptionRate int    `json:"redemption_rate"`
}

// DataQuality counts contact-field gaps across all users.
type DataQuality struct {
	MissingEmail       int `json:"missing_email"`
	MissingPhone       int `json:"missing_phone"`
	MissingExternalID  int `json:"missing_external_id"`
	IncompleteProfiles int `json:"incomplete_profiles"`
}

// CampaignStatistics is the full campaign rollup.
type CampaignStatistics struct {
	HasData bool `json:"has_data"`

	TotalUsers     int `json:"total_users"`
	ActiveUsers    int `json:"active_users"`
	CompletedUsers int `json:"completed_users"`
	TotalScans     int `json:"total_scans"`
	TotalEntries   int `json:"total_entries"`

	// UsersWithRedemptions deliberately counts any user with at least one
	// scan; TierRedemptions is the strict count of redeemed tier flags.
	UsersWithRedemptions  int `json:"users_with_redemptions"`
	TierRedemptions       int `json:"tier_redemptions"`
	AllTiersRedeemedUsers int `json:"all_tiers_redeemed_users"`

	CompletionRate  int     `json:"completion_rate"`
	AverageProgress int     `json:"average_progress"`
	BounceRate      int     `json:"bounce_rate"`
	AverageScans    float64 `json:"average_scans"`

	Engagement      EngagementBuckets     `json:"engagement"`
	CompletionTimes CompletionTimeBuckets `json:"completion_times"`

	CompletedIn5Minutes int      `json:"completed_in_5_minutes"`
	SuspiciousCount     int      `json:"suspicious_count"`
	SuspiciousUserIDs   []string `json:"suspicious_user_ids"`

	Quality DataQuality      `json:"quality"`
	Tiers   []TierPrizeStats `json:"tiers"`

	PeakHour      int     `json:"peak_hour"`
	PeakHourCount int     `json:"peak_hour_count"`
	HourlySignups [24]int `json:"hourly_signups"`

	GeneratedAt time.Time `json:"generated_at"`
}

// suspiciousThreshold flags completions faster than a human could plausibly
// visit every placement.
const suspiciousThreshold = 2 * time.Minute

// ComputeCampaignStats rolls per-user summaries into global metrics. It is
// a pure function of its inputs and recomputes everything from scratch.
func ComputeCampaignStats(users []participants.Summary, totalCodes int) CampaignStatistics {
	stats := CampaignStatistics{
		GeneratedAt:       time.Now().UTC(),
		SuspiciousUserIDs: []string{},
	}
	if len(users) == 0 {
		return stats
	}
	stats.HasData = true
	stats.TotalUsers = len(users)

	tierOrder := participants.Tiers()
	tierTally := make([]TierPrizeStats, len(tierOrder))
	tierIndex := make(map[string]int, len(tierOrder))
	for i, tier := range tierOrder {
		tierTally[i] = TierPrizeStats{TierID: tier.ID, Name: tier.Name, RequiredScans: tier.RequiredScans}
		tierIndex[tier.ID] = i
	}

	progressSum := 0
	for i := range users {
		u := &users[i]
		progressSum += u.ProgressPercent
		stats.TotalScans += u.ScannedCount
		stats.TotalEntries += u.DrawingEntries + u.BonusEntries
		stats.TierRedemptions += u.TotalRedemptions

		if u.ScannedCount > 0 {
			stats.ActiveUsers++
			stats.UsersWithRedemptions++
		}
		if u.IsCompleted {
			stats.CompletedUsers++
		}
		if u.TotalRedemptions == len(u.Tiers) && len(u.Tiers) > 0 {
			stats.AllTiersRedeemedUsers++
		}

		bucketEngagement(&stats.Engagement, u.ScannedCount, totalCodes)
		bucketCompletionTime(&stats, u)
		tallyQuality(&stats.Quality, u)

		for _, status := range u.Tiers {
			i, ok := tierIndex[status.ID]
			if !ok {
				continue
			}
			if status.Unlocked {
				tierTally[i].UnlockedUsers++
			}
			if status.Redeemed {
				tierTally[i].RedeemedUsers++
			}
		}

		stats.HourlySignups[u.CreatedAt.Hour()]++
	}

	stats.CompletionRate = percentOf(stats.CompletedUsers, stats.TotalUsers)
	stats.AverageProgress = percentOf(progressSum, stats.TotalUsers*100)
	stats.BounceRate = percentOf(stats.TotalUsers-stats.ActiveUsers, stats.TotalUsers)
	stats.AverageScans = ratio1(stats.TotalScans, stats.ActiveUsers)

	for i := range tierTally {
		tierTally[i].RedemptionRate = percentOf(tierTally[i].RedeemedUsers, tierTally[i].UnlockedUsers)
	}
	stats.Tiers = tierTally

	for hour, count := range stats.HourlySignups {
		if count > stats.PeakHourCount {
			stats.PeakHour = hour
			stats.PeakHourCount = count
		}
	}

	return stats
}

func bucketEngagement(b *EngagementBuckets, scanned, totalCodes int) {
	switch {
	case scanned == 0:
		b.Bounced++
	case scanned <= 5:
		b.EarlyDropoff++
	case scanned <= 12:
		b.Moderate++
	case scanned < totalCodes:
		b.NearComplete++
	default:
		b.Completed++
	}
}

func bucketCompletionTime(stats *CampaignStatistics, u *participants.Summary) {
	if !u.IsCompleted || u.CompletionTime == nil {
		return
	}
	// Imported records rarely carry an explicit first-scan timestamp; the
	// signup time is the working proxy for when the hunt started.
	start := u.CreatedAt
	if u.FirstScanAt != nil {
		start = *u.FirstScanAt
	}
	if start.IsZero() {
		return
	}
	delta := u.CompletionTime.Sub(start)

	switch {
	case delta <= 5*time.Minute:
		stats.CompletionTimes.Under5Min++
	case delta <= 30*time.Minute:
		stats.CompletionTimes.Under30Min++
	case delta <= time.Hour:
		stats.CompletionTimes.Under1Hour++
	case delta <= 6*time.Hour:
		stats.CompletionTimes.Under6Hours++
	default:
		stats.CompletionTimes.Over6Hours++
	}

	if delta <= 5*time.Minute {
		stats.CompletedIn5Minutes++
	}
	if delta < suspiciousThreshold {
		stats.SuspiciousCount++
		stats.SuspiciousUserIDs = append(stats.SuspiciousUserIDs, u.ID)
	}
}

func tallyQuality(q *DataQuality, u *participants.Summary) {
	missingEmail := u.Email == ""
	missingPhone := u.Phone == ""
	if missingEmail {
		q.MissingEmail++
	}
	if missingPhone {
		q.MissingPhone++
	}
	if u.ExternalID == "" {
		q.MissingExternalID++
	}
	if missingEmail || missingPhone {
		q.IncompleteProfiles++
	}
}
