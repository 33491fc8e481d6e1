package participants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeScansBareStrings(t *testing.T) {
	events := NormalizeScans(`["loc-1","loc-2","loc-1"]`)
	require.Len(t, events, 3)
	assert.Equal(t, "loc-1", events[0].Code)
	assert.Equal(t, "loc-2", events[1].Code)
	assert.Equal(t, "loc-1", events[2].Code)
	assert.True(t, events[0].Timestamp.IsZero())
}

func TestNormalizeScansObjects(t *testing.T) {
	events := NormalizeScans(`[{"code":"loc-1","timestamp":"2025-06-01T10:00:00Z"}]`)
	require.Len(t, events, 1)
	assert.Equal(t, "loc-1", events[0].Code)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), events[0].Timestamp.Time())
}

func TestNormalizeScansMixedForms(t *testing.T) {
	raw := `["loc-1",{"code":"loc-2","timestamp":{"seconds":1748772000,"nanoseconds":0}},{"timestamp":"2025-06-01T10:00:00Z"}]`
	events := NormalizeScans(raw)
	require.Len(t, events, 3)
	assert.Equal(t, "loc-1", events[0].Code)
	assert.Equal(t, "loc-2", events[1].Code)
	assert.False(t, events[1].Timestamp.IsZero())
	// Object without a code still counts as an event, just code-less.
	assert.False(t, events[2].HasCode())
}

func TestNormalizeScansMalformedElement(t *testing.T) {
	events := NormalizeScans(`["loc-1",42,null]`)
	require.Len(t, events, 3)
	assert.True(t, events[0].HasCode())
	assert.False(t, events[1].HasCode())
	assert.False(t, events[2].HasCode())
}

func TestNormalizeScansNotAnArray(t *testing.T) {
	assert.Empty(t, NormalizeScans(`{"oops":true}`))
	assert.Empty(t, NormalizeScans(`not json`))
	assert.Empty(t, NormalizeScans(""))
	assert.Empty(t, NormalizeScans("[]"))
}
