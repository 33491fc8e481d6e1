package lottery

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huntly/internal/config"
	"huntly/internal/participants"
)

// DrawingResult reports one drawing round. Winners may be shorter than
// Requested when the eligible pool runs dry; that is a valid partial
// outcome, not an error.
type DrawingResult struct {
	Requested       int            `json:"requested"`
	Winners         []WinnerRecord `json:"winners"`
	TotalEntries    int            `json:"total_entries"`
	EligibleEntries int            `json:"eligible_entries"`
	ExcludedUsers   int            `json:"excluded_users"`
	Notice          string         `json:"notice,omitempty"`
}

// Selector runs prize drawings. A mutex serializes rounds so two concurrent
// requests cannot both draw a user before either batch commits.
type Selector struct {
	db      *gorm.DB
	history HistoryStore
	logger  *slog.Logger
	window  int
	codes   int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector with a time-seeded random source.
func NewSelector(db *gorm.DB, history HistoryStore, logger *slog.Logger, cfg *config.Config) *Selector {
	return &Selector{
		db:      db,
		history: history,
		logger:  logger,
		window:  cfg.WinnerExclusionWindow,
		codes:   cfg.TotalCodes,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand replaces the random source, making draws reproducible in tests.
func (s *Selector) SetRand(r *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = r
}

// Entries builds the current ticket pool without drawing.
func (s *Selector) Entries() ([]Entry, error) {
	users, err := participants.ListParticipants(s.db)
	if err != nil {
		return nil, err
	}
	return BuildEntries(participants.SummarizeAll(users, s.codes)), nil
}

// Draw runs one drawing round for up to n winners and commits the results
// as a single batch. Users who won within the recent exclusion window, or
// earlier in this round, are ineligible. n <= 0 is a no-op.
func (s *Selector) Draw(n int) (*DrawingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &DrawingResult{Requested: n, Winners: []WinnerRecord{}}
	if n <= 0 {
		result.Notice = "no winners requested"
		return result, nil
	}

	entries, err := s.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to build entries: %w", err)
	}
	result.TotalEntries = len(entries)

	recent, err := s.history.ListRecent(s.window)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent winners: %w", err)
	}
	excluded := make(map[string]struct{}, len(recent)+n)
	for _, rec := range recent {
		excluded[rec.UserID] = struct{}{}
	}
	result.ExcludedUsers = len(excluded)

	drawTime := time.Now().UTC()
	for len(result.Winners) < n {
		eligible := make([]Entry, 0, len(entries))
		for _, e := range entries {
			if _, out := excluded[e.UserID]; !out {
				eligible = append(eligible, e)
			}
		}
		if len(result.Winners) == 0 {
			result.EligibleEntries = len(eligible)
		}
		if len(eligible) == 0 {
			break
		}

		ticket := eligible[s.rng.Intn(len(eligible))]
		excluded[ticket.UserID] = struct{}{}
		result.Winners = append(result.Winners, WinnerRecord{
			ID:                 uuid.NewString(),
			DrawTimestamp:      drawTime,
			UserID:             ticket.UserID,
			Name:               ticket.Name,
			Email:              ticket.Email,
			Phone:              ticket.Phone,
			ExternalID:         ticket.ExternalID,
			EntryType:          ticket.Type,
			EntryNumber:        ticket.EntryNumber,
			TotalEntriesAtDraw: len(entries),
			CreatedAt:          drawTime,
		})
	}

	if len(result.Winners) < n {
		result.Notice = fmt.Sprintf("only %d of %d winners could be selected: no eligible entries remain", len(result.Winners), n)
	}

	if err := s.history.AppendBatch(result.Winners); err != nil {
		return nil, err
	}

	s.logger.Info("Drawing completed",
		slog.Int("requested", n),
		slog.Int("selected", len(result.Winners)),
		slog.Int("total_entries", result.TotalEntries))

	return result, nil
}
