// Package locations manages the registry of scannable QR locations.
package locations

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Location is one physical QR placement in the venue. Code is the value
// embedded in the QR payload and is the natural key.
type Location struct {
	Code           string    `gorm:"primaryKey" json:"code"`
	LocationNumber string    `json:"location_number"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListLocations returns every registered location ordered by location number.
func ListLocations(db *gorm.DB) ([]Location, error) {
	var list []Location
	if err := db.Order("location_number ASC, code ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return list, nil
}

// GetLocationByCode retrieves one location by its QR code value.
func GetLocationByCode(db *gorm.DB, code string) (*Location, error) {
	var loc Location
	if err := db.First(&loc, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// UpsertLocation inserts or updates a location keyed by code.
func UpsertLocation(db *gorm.DB, loc *Location) error {
	loc.Code = strings.TrimSpace(loc.Code)
	if loc.Code == "" {
		return fmt.Errorf("location code is required")
	}
	now := time.Now().UTC()
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = now
	}
	loc.UpdatedAt = now

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"location_number", "name", "description", "active", "updated_at"}),
	}).Create(loc).Error
	if err != nil {
		return fmt.Errorf("failed to upsert location %s: %w", loc.Code, err)
	}
	return nil
}

// DeleteLocation removes a location from the registry. Scans referencing
// the code remain in participant histories and show up as unknown-code
// scans in the analytics reconciliation.
func DeleteLocation(db *gorm.DB, code string) error {
	result := db.Delete(&Location{}, "code = ?", code)
	if result.Error != nil {
		return fmt.Errorf("failed to delete location %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
