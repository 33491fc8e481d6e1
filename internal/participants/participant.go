// Package participants holds the campaign participant model and the pure
// transforms that turn raw stored records into per-user summaries.
package participants

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Participant is a registered scavenger-hunt player. ScannedCodes and
// RedemptionStatus are stored as raw JSON text: the scan array is
// heterogeneous (bare code strings next to {code, timestamp} objects from
// older app versions) and is only interpreted by the normalizer.
type Participant struct {
	ID          string `gorm:"primaryKey" json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ExternalID  string `json:"external_id"` // CRM customer reference

	ScannedCodes     string `gorm:"type:text" json:"-"`
	DrawingEntries   int    `json:"drawing_entries"`
	BonusEntries     int    `json:"bonus_entries"`
	RedemptionStatus string `gorm:"type:text" json:"-"`

	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	FirstScanAt    *time.Time `json:"first_scan_at"`
	CompletionTime *time.Time `json:"completion_time"`
}

// Name returns the best available display name for the participant.
func (p *Participant) Name() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.DisplayName != "":
		return p.DisplayName
	case p.FirstName != "":
		return p.FirstName
	default:
		return "Anonymous User"
	}
}

// ListParticipants returns all participants, newest first.
func ListParticipants(db *gorm.DB) ([]Participant, error) {
	var list []Participant
	if err := db.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return list, nil
}

// GetParticipantByID retrieves a single participant.
func GetParticipantByID(db *gorm.DB, id string) (*Participant, error) {
	var p Participant
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateParticipant inserts a new participant, assigning an ID and sane
// defaults for the JSON columns when missing.
func CreateParticipant(db *gorm.DB, p *Participant) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.ScannedCodes == "" {
		p.ScannedCodes = "[]"
	}
	if p.RedemptionStatus == "" {
		p.RedemptionStatus = "{}"
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return db.Create(p).Error
}

// ResetParticipant clears a participant's scan history, drawing entries,
// redemption status, and progress timestamps. This is the only operation
// allowed to shrink a scan sequence.
func ResetParticipant(db *gorm.DB, id string) error {
	result := db.Model(&Participant{}).Where("id = ?", id).Updates(map[string]any{
		"scanned_codes":     "[]",
		"drawing_entries":   0,
		"bonus_entries":     0,
		"redemption_status": "{}",
		"first_scan_at":     nil,
		"completion_time":   nil,
		"updated_at":        time.Now().UTC(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to reset participant %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
