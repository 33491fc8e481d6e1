package participants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"huntly/internal/participants"
	"huntly/internal/testsupport"
)

func TestCreateAndListParticipants(t *testing.T) {
	db := testsupport.SetupTestDB(t, "participants_create")

	p := &participants.Participant{FirstName: "Ada", Email: "ada@example.com"}
	require.NoError(t, participants.CreateParticipant(db, p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "[]", p.ScannedCodes)
	assert.Equal(t, "{}", p.RedemptionStatus)

	list, err := participants.ListParticipants(db)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestResetParticipant(t *testing.T) {
	db := testsupport.SetupTestDB(t, "participants_reset")

	p := &participants.Participant{
		ID:               "u1",
		ScannedCodes:     testsupport.ScanJSON("loc-1", "loc-2"),
		DrawingEntries:   3,
		BonusEntries:     1,
		RedemptionStatus: `{"tier1":{"redeemed":true}}`,
	}
	require.NoError(t, participants.CreateParticipant(db, p))

	require.NoError(t, participants.ResetParticipant(db, "u1"))

	got, err := participants.GetParticipantByID(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, "[]", got.ScannedCodes)
	assert.Equal(t, 0, got.DrawingEntries)
	assert.Equal(t, 0, got.BonusEntries)
	assert.Equal(t, "{}", got.RedemptionStatus)
	assert.Nil(t, got.FirstScanAt)
	assert.Nil(t, got.CompletionTime)
}

func TestResetParticipantNotFound(t *testing.T) {
	db := testsupport.SetupTestDB(t, "participants_reset_missing")
	err := participants.ResetParticipant(db, "nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
