// Package instant provides a tolerant timestamp type for the heterogeneous
// encodings found in imported participant records: RFC 3339 strings, epoch
// numbers, and legacy document-store objects carrying seconds/nanoseconds.
// Parsing happens once here, at the input boundary; the rest of the codebase
// only ever sees time.Time values.
package instant

import (
	"time"

	json "github.com/goccy/go-json"
)

// Instant is a point in time parsed from any supported wire encoding.
// The zero Instant means "no timestamp".
type Instant struct {
	t time.Time
}

// FromTime wraps a time.Time in an Instant.
func FromTime(t time.Time) Instant {
	return Instant{t: t}
}

// Time returns the underlying time. It is the zero time when the source
// carried no parseable timestamp.
func (i Instant) Time() time.Time {
	return i.t
}

// IsZero reports whether the instant carries no timestamp.
func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

// After reports whether i is strictly later than other. A zero instant is
// never after anything, so stale or missing timestamps can never advance a
// "latest seen" value.
func (i Instant) After(other Instant) bool {
	if i.IsZero() {
		return false
	}
	return i.t.After(other.t)
}

// stringLayouts are tried in order when the wire value is a string.
var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// secondsObject is the legacy document-store timestamp shape.
type secondsObject struct {
	Seconds     *int64 `json:"seconds"`
	Nanoseconds int64  `json:"nanoseconds"`
	// Some exports prefix the fields with an underscore.
	USeconds     *int64 `json:"_seconds"`
	UNanoseconds int64  `json:"_nanoseconds"`
}

// UnmarshalJSON accepts null, an RFC 3339 (or date-only) string, an epoch
// number (seconds, or milliseconds when implausibly large for seconds), or a
// seconds/nanoseconds object. Unparseable values decode to the zero Instant
// rather than failing, so one bad timestamp never rejects a whole record.
func (i *Instant) UnmarshalJSON(data []byte) error {
	i.t = time.Time{}

	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil || s == "" {
			return nil
		}
		for _, layout := range stringLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				i.t = t.UTC()
				return nil
			}
		}
	case '{':
		var obj secondsObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		if obj.Seconds != nil {
			i.t = time.Unix(*obj.Seconds, obj.Nanoseconds).UTC()
		} else if obj.USeconds != nil {
			i.t = time.Unix(*obj.USeconds, obj.UNanoseconds).UTC()
		}
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil || n <= 0 {
			return nil
		}
		// Heuristic: values beyond year 9999 in seconds are milliseconds.
		if n > 2.5e11 {
			i.t = time.UnixMilli(int64(n)).UTC()
		} else {
			i.t = time.Unix(int64(n), 0).UTC()
		}
	}

	return nil
}

// MarshalJSON renders RFC 3339 or null for the zero Instant.
func (i Instant) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(i.t.UTC().Format(time.RFC3339Nano))
}
