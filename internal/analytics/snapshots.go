package analytics

import (
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"gorm.io/gorm"

	"huntly/internal/config"
	"huntly/internal/locations"
	"huntly/internal/participants"
)

// CampaignSummary is one persisted recalculation snapshot. Headline numbers
// are columns for cheap querying; the full statistics struct rides along as
// JSON.
type CampaignSummary struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	GeneratedAt    time.Time `gorm:"index" json:"generated_at"`
	TotalUsers     int       `json:"total_users"`
	ActiveUsers    int       `json:"active_users"`
	CompletedUsers int       `json:"completed_users"`
	CompletionRate int       `json:"completion_rate"`
	BounceRate     int       `json:"bounce_rate"`
	TotalEntries   int       `json:"total_entries"`
	PeakHour       int       `json:"peak_hour"`
	Payload        string    `gorm:"type:text" json:"-"`
}

// LocationStatRecord is one location row belonging to a snapshot.
type LocationStatRecord struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	SummaryID     uint       `gorm:"index" json:"summary_id"`
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	TotalScans    int        `json:"total_scans"`
	UniqueUsers   int        `json:"unique_users"`
	FirstScans    int        `json:"first_scans"`
	DiscoveryRate int        `json:"discovery_rate"`
	Rank          int        `json:"rank"`
	Performance   int        `json:"performance"`
	Efficiency    float64    `json:"efficiency"`
	Category      string     `json:"category"`
	LastScanned   *time.Time `json:"last_scanned,omitempty"`
}

// DiscoveryStatRecord is one discovery-category row belonging to a snapshot.
type DiscoveryStatRecord struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	SummaryID     uint   `gorm:"index" json:"summary_id"`
	CategoryID    string `json:"category_id"`
	Name          string `json:"name"`
	VisitorCount  int    `json:"visitor_count"`
	DiscoveryRate int    `json:"discovery_rate"`
}

// Service runs the aggregation passes against the live database.
type Service struct {
	db         *gorm.DB
	logger     *slog.Logger
	totalCodes int
	rules      []CategoryRule
}

// NewService creates an analytics service using the default discovery rules.
func NewService(db *gorm.DB, logger *slog.Logger, cfg *config.Config) *Service {
	return &Service{
		db:         db,
		logger:     logger,
		totalCodes: cfg.TotalCodes,
		rules:      DefaultCategoryRules(),
	}
}

func (s *Service) loadInputs() ([]participants.Summary, []locations.Location, error) {
	if s.db == nil {
		return nil, nil, fmt.Errorf("analytics: database not initialized")
	}
	users, err := participants.ListParticipants(s.db)
	if err != nil {
		return nil, nil, err
	}
	locs, err := locations.ListLocations(s.db)
	if err != nil {
		return nil, nil, err
	}
	return participants.SummarizeAll(users, s.totalCodes), locs, nil
}

// CampaignStats computes a live campaign rollup.
func (s *Service) CampaignStats() (*CampaignStatistics, error) {
	summaries, _, err := s.loadInputs()
	if err != nil {
		return nil, err
	}
	stats := ComputeCampaignStats(summaries, s.totalCodes)
	return &stats, nil
}

// LocationStats computes a live per-location report.
func (s *Service) LocationStats() (*LocationReport, error) {
	summaries, locs, err := s.loadInputs()
	if err != nil {
		return nil, err
	}
	report := ComputeLocationStats(locs, summaries)
	return &report, nil
}

// DiscoveryStats computes live per-category discovery attribution.
func (s *Service) DiscoveryStats() ([]DiscoveryStat, error) {
	summaries, locs, err := s.loadInputs()
	if err != nil {
		return nil, err
	}
	return ClassifyDiscovery(s.rules, locs, summaries), nil
}

// Snapshot bundles everything one recalculation produced.
type Snapshot struct {
	Summary   CampaignSummary    `json:"summary"`
	Campaign  CampaignStatistics `json:"campaign"`
	Locations LocationReport     `json:"locations"`
	Discovery []DiscoveryStat    `json:"discovery"`
}

// Recalculate recomputes all statistics from a single read of the inputs
// and persists the snapshot rows in one transaction. A failed write leaves
// no partial snapshot behind.
func (s *Service) Recalculate() (*Snapshot, error) {
	summaries, locs, err := s.loadInputs()
	if err != nil {
		return nil, err
	}

	campaign := ComputeCampaignStats(summaries, s.totalCodes)
	report := ComputeLocationStats(locs, summaries)
	discovery := ClassifyDiscovery(s.rules, locs, summaries)

	payload, err := json.Marshal(campaign)
	if err != nil {
		return nil, fmt.Errorf("failed to encode campaign payload: %w", err)
	}

	summary := CampaignSummary{
		GeneratedAt:    campaign.GeneratedAt,
		TotalUsers:     campaign.TotalUsers,
		ActiveUsers:    campaign.ActiveUsers,
		CompletedUsers: campaign.CompletedUsers,
		CompletionRate: campaign.CompletionRate,
		BounceRate:     campaign.BounceRate,
		TotalEntries:   campaign.TotalEntries,
		PeakHour:       campaign.PeakHour,
		Payload:        string(payload),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&summary).Error; err != nil {
			return fmt.Errorf("failed to persist campaign summary: %w", err)
		}
		for _, stat := range report.Locations {
			record := LocationStatRecord{
				SummaryID:     summary.ID,
				Code:          stat.Code,
				Name:          stat.Name,
				TotalScans:    stat.TotalScans,
				UniqueUsers:   stat.UniqueUsers,
				FirstScans:    stat.FirstScans,
				DiscoveryRate: stat.DiscoveryRate,
				Rank:          stat.Rank,
				Performance:   stat.Performance,
				Efficiency:    stat.Efficiency,
				Category:      stat.Category,
				LastScanned:   stat.LastScanned,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to persist location stat for %s: %w", stat.Code, err)
			}
		}
		for _, stat := range discovery {
			record := DiscoveryStatRecord{
				SummaryID:     summary.ID,
				CategoryID:    stat.CategoryID,
				Name:          stat.Name,
				VisitorCount:  stat.VisitorCount,
				DiscoveryRate: stat.DiscoveryRate,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to persist discovery stat for %s: %w", stat.CategoryID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Recalculated campaign statistics",
		slog.Int("users", campaign.TotalUsers),
		slog.Int("locations", len(report.Locations)),
		slog.Uint64("summary_id", uint64(summary.ID)))

	return &Snapshot{
		Summary:   summary,
		Campaign:  campaign,
		Locations: report,
		Discovery: discovery,
	}, nil
}
