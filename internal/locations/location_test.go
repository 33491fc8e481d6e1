package locations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"huntly/internal/locations"
	"huntly/internal/testsupport"
)

func TestUpsertLocationInsertsThenUpdates(t *testing.T) {
	db := testsupport.SetupTestDB(t, "locations_upsert")

	loc := &locations.Location{Code: "bth-272", LocationNumber: "00", Name: "Booth", Active: true}
	require.NoError(t, locations.UpsertLocation(db, loc))

	loc.Name = "Promo Booth"
	loc.Active = false
	require.NoError(t, locations.UpsertLocation(db, loc))

	got, err := locations.GetLocationByCode(db, "bth-272")
	require.NoError(t, err)
	assert.Equal(t, "Promo Booth", got.Name)
	assert.False(t, got.Active)

	list, err := locations.ListLocations(db)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpsertLocationRequiresCode(t *testing.T) {
	db := testsupport.SetupTestDB(t, "locations_code_required")
	err := locations.UpsertLocation(db, &locations.Location{Code: "   ", Name: "x"})
	assert.Error(t, err)
}

func TestListLocationsOrder(t *testing.T) {
	db := testsupport.SetupTestDB(t, "locations_order")

	require.NoError(t, locations.UpsertLocation(db, &locations.Location{Code: "flr-02", LocationNumber: "02", Name: "Floor 02"}))
	require.NoError(t, locations.UpsertLocation(db, &locations.Location{Code: "flr-01", LocationNumber: "01", Name: "Floor 01"}))

	list, err := locations.ListLocations(db)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "flr-01", list[0].Code)
	assert.Equal(t, "flr-02", list[1].Code)
}

func TestDeleteLocation(t *testing.T) {
	db := testsupport.SetupTestDB(t, "locations_delete")

	require.NoError(t, locations.UpsertLocation(db, &locations.Location{Code: "flr-01", Name: "Floor 01"}))
	require.NoError(t, locations.DeleteLocation(db, "flr-01"))

	_, err := locations.GetLocationByCode(db, "flr-01")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, locations.DeleteLocation(db, "flr-01"), gorm.ErrRecordNotFound)
}
