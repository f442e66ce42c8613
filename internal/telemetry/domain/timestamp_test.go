package telemetry

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, time.February, 3, 4, 5, 6, 0, time.UTC)
	cases := map[string]string{
		"rfc3339":        `"2025-02-03T04:05:06Z"`,
		"rfc3339 offset": `"2025-02-03T13:05:06+09:00"`,
		"seconds":        `1738555506`,
		"milliseconds":   `1738555506000`,
		"numeric string": `"1738555506"`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			ts, ok := ParseTimestamp(json.RawMessage(raw))
			assert.True(t, ok)
			assert.True(t, want.Equal(ts), "got %s", ts)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, raw := range []string{``, `null`, `"yesterday"`, `0`, `-5`, `{}`} {
		ts, ok := ParseTimestamp(json.RawMessage(raw))
		assert.False(t, ok, raw)
		assert.True(t, ts.IsZero(), raw)
	}
}
