package telemetry

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp decodes a stored time field. It accepts RFC3339 strings and
// unix epochs in seconds or milliseconds, as a JSON number or numeric string.
// An unparsable value returns the zero time and false.
func ParseTimestamp(raw json.RawMessage) (time.Time, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, false
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		text = strings.TrimSpace(text)
		if ts, err := time.Parse(time.RFC3339Nano, text); err == nil {
			return ts.UTC(), true
		}
		if n, err := strconv.ParseFloat(text, 64); err == nil {
			return fromEpoch(n)
		}
		return time.Time{}, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return fromEpoch(n)
	}
	return time.Time{}, false
}

func fromEpoch(value float64) (time.Time, bool) {
	if value <= 0 {
		return time.Time{}, false
	}
	// Accept milliseconds or seconds.
	if value > 1_000_000_000_000 {
		return time.UnixMilli(int64(value)).UTC(), true
	}
	return time.Unix(int64(value), 0).UTC(), true
}
