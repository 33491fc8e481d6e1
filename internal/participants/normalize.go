package participants

import (
	"bytes"

	json "github.com/goccy/go-json"

	"huntly/internal/instant"
)

// ScanEvent is one normalized element of a participant's scan history.
// Code is empty when the element carried no usable location code; such
// events still count toward the raw scan total.
type ScanEvent struct {
	Code      string
	Timestamp instant.Instant
}

// HasCode reports whether the event carries a usable location code.
func (e ScanEvent) HasCode() bool {
	return e.Code != ""
}

type scanObject struct {
	Code      string          `json:"code"`
	Timestamp instant.Instant `json:"timestamp"`
}

// NormalizeScans parses the raw scanned-codes JSON into a flat event slice,
// preserving order. Elements may be bare code strings or {code, timestamp}
// objects. A malformed element degrades to a code-less event; a field that
// is not a JSON array at all yields an empty history.
func NormalizeScans(raw string) []ScanEvent {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil
	}

	events := make([]ScanEvent, 0, len(elems))
	for _, elem := range elems {
		events = append(events, normalizeScanElement(elem))
	}
	return events
}

func normalizeScanElement(raw json.RawMessage) ScanEvent {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ScanEvent{}
	}

	switch raw[0] {
	case '"':
		var code string
		if err := json.Unmarshal(raw, &code); err != nil {
			return ScanEvent{}
		}
		return ScanEvent{Code: code}
	case '{':
		var obj scanObject
		if err := json.Unmarshal(raw, &obj); err != nil {
			return ScanEvent{}
		}
		return ScanEvent{Code: obj.Code, Timestamp: obj.Timestamp}
	default:
		return ScanEvent{}
	}
}
