package analytics

import (
	"sort"
	"time"

	"huntly/internal/instant"
	"huntly/internal/locations"
	"huntly/internal/participants"
)

// Performance categories relative to the mean scan count.
const (
	CategoryHigh   = "high"
	CategoryMedium = "medium"
	CategoryLow    = "low"
)

// LocationStat is the computed performance view of one registered location.
type LocationStat struct {
	Code           string     `json:"code"`
	LocationNumber string     `json:"location_number"`
	Name           string     `json:"name"`
	Active         bool       `json:"active"`
	TotalScans     int        `json:"total_scans"`
	UniqueUsers    int        `json:"unique_users"`
	LastScanned    *time.Time `json:"last_scanned,omitempty"`
	FirstScans     int        `json:"first_scans"`
	DiscoveryRate  int        `json:"discovery_rate"`
	Rank           int        `json:"rank"`
	Performance    int        `json:"performance"`
	Efficiency     float64    `json:"efficiency"`
	Category       string     `json:"category"`
}

// LocationReport is the full location aggregation pass output. The
// reconciliation invariant holds on every report: the sum of per-location
// TotalScans plus UnknownCodeScans equals the sum of raw per-user scan
// counts.
type LocationReport struct {
	Locations        []LocationStat `json:"locations"`
	TotalRawScans    int            `json:"total_raw_scans"`
	UnknownCodeScans int            `json:"unknown_code_scans"`
	ScanningUsers    int            `json:"scanning_users"`
}

type locationTally struct {
	stat        LocationStat
	userIDs     map[string]struct{}
	lastScanned instant.Instant
}

// ComputeLocationStats tallies every participant's normalized scan history
// against the registered location set. Scans whose code is missing or does
// not reference a registered location count only toward the raw total.
func ComputeLocationStats(locs []locations.Location, users []participants.Summary) LocationReport {
	tallies := make([]*locationTally, 0, len(locs))
	byCode := make(map[string]*locationTally, len(locs))
	for _, loc := range locs {
		t := &locationTally{
			stat: LocationStat{
				Code:           loc.Code,
				LocationNumber: loc.LocationNumber,
				Name:           loc.Name,
				Active:         loc.Active,
			},
			userIDs: map[string]struct{}{},
		}
		tallies = append(tallies, t)
		byCode[loc.Code] = t
	}

	report := LocationReport{}
	for i := range users {
		user := &users[i]
		if len(user.Events) == 0 {
			continue
		}
		report.ScanningUsers++
		report.TotalRawScans += len(user.Events)

		// First-scan attribution uses the very first history element,
		// even when later elements would have matched.
		if first := user.Events[0]; first.HasCode() {
			if t, ok := byCode[first.Code]; ok {
				t.stat.FirstScans++
			}
		}

		for _, ev := range user.Events {
			t, ok := byCode[ev.Code]
			if !ev.HasCode() || !ok {
				report.UnknownCodeScans++
				continue
			}
			t.stat.TotalScans++
			t.userIDs[user.ID] = struct{}{}

			ts := ev.Timestamp
			if ts.IsZero() {
				// Best-effort proxy when the scan carried no timestamp.
				ts = instant.FromTime(user.UpdatedAt)
			}
			if ts.After(t.lastScanned) {
				t.lastScanned = ts
			}
		}
	}

	totalKnownScans := 0
	for _, t := range tallies {
		t.stat.UniqueUsers = len(t.userIDs)
		totalKnownScans += t.stat.TotalScans
	}

	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].stat.TotalScans > tallies[j].stat.TotalScans
	})

	maxScans := 0
	if len(tallies) > 0 {
		maxScans = tallies[0].stat.TotalScans
	}
	mean := 0.0
	if len(tallies) > 0 {
		mean = float64(totalKnownScans) / float64(len(tallies))
	}

	stats := make([]LocationStat, 0, len(tallies))
	for i, t := range tallies {
		s := t.stat
		s.Rank = i + 1
		if maxScans > 0 {
			s.Performance = percentOf(s.TotalScans, maxScans)
		}
		s.Efficiency = ratio1(s.TotalScans, s.UniqueUsers)
		s.DiscoveryRate = percentOf(s.FirstScans, report.ScanningUsers)
		s.Category = categorize(s.TotalScans, mean)
		if !t.lastScanned.IsZero() {
			ts := t.lastScanned.Time()
			s.LastScanned = &ts
		}
		stats = append(stats, s)
	}

	report.Locations = stats
	return report
}

func categorize(scans int, mean float64) string {
	switch {
	case mean > 0 && float64(scans) >= mean*1.5:
		return CategoryHigh
	case mean > 0 && float64(scans) >= mean*0.8:
		return CategoryMedium
	default:
		return CategoryLow
	}
}
