package lottery

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// WinnerRecord is one append-only draw outcome. Contact fields are a
// snapshot taken at draw time; later edits to the participant never rewrite
// history.
type WinnerRecord struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	DrawTimestamp      time.Time `gorm:"index" json:"draw_timestamp"`
	UserID             string    `gorm:"index" json:"user_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	ExternalID         string    `json:"external_id"`
	EntryType          EntryType `json:"entry_type"`
	EntryNumber        int       `json:"entry_number"`
	TotalEntriesAtDraw int       `json:"total_entries_at_draw"`
	CreatedAt          time.Time `json:"created_at"`
}

// HistoryStore is the narrow persistence contract the selector depends on.
type HistoryStore interface {
	ListRecent(limit int) ([]WinnerRecord, error)
	AppendBatch(records []WinnerRecord) error
	ClearAll() error
}

// GormHistoryStore implements HistoryStore on the application database.
type GormHistoryStore struct {
	db *gorm.DB
}

// NewHistoryStore creates a winner history store.
func NewHistoryStore(db *gorm.DB) *GormHistoryStore {
	return &GormHistoryStore{db: db}
}

// ListRecent returns up to limit records, most recent draw first. A
// non-positive limit returns nothing.
func (s *GormHistoryStore) ListRecent(limit int) ([]WinnerRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	var records []WinnerRecord
	err := s.db.Order("draw_timestamp DESC, created_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list winner history: %w", err)
	}
	return records, nil
}

// ListAll returns the complete history, most recent draw first.
func (s *GormHistoryStore) ListAll() ([]WinnerRecord, error) {
	var records []WinnerRecord
	err := s.db.Order("draw_timestamp DESC, created_at DESC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list winner history: %w", err)
	}
	return records, nil
}

// AppendBatch persists a draw's winner records atomically. Either every
// record lands or none does.
func (s *GormHistoryStore) AppendBatch(records []WinnerRecord) error {
	if len(records) == 0 {
		return nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to persist winner batch: %w", err)
	}
	return nil
}

// ClearAll wipes the winner history.
func (s *GormHistoryStore) ClearAll() error {
	if err := s.db.Where("1 = 1").Delete(&WinnerRecord{}).Error; err != nil {
		return fmt.Errorf("failed to clear winner history: %w", err)
	}
	return nil
}
