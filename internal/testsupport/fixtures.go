package testsupport

import (
	"fmt"
	"strings"
	"time"
)

// ScanJSON builds a scanned-codes field from bare code strings.
func ScanJSON(codes ...string) string {
	if len(codes) == 0 {
		return "[]"
	}
	quoted := make([]string, len(codes))
	for i, c := range codes {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

// ScanObjectJSON builds one {code, timestamp} scan element.
func ScanObjectJSON(code string, ts time.Time) string {
	return fmt.Sprintf(`{"code":%q,"timestamp":%q}`, code, ts.UTC().Format(time.RFC3339))
}

// ScanArrayJSON wraps already-encoded scan elements into an array.
func ScanArrayJSON(elements ...string) string {
	return "[" + strings.Join(elements, ",") + "]"
}
