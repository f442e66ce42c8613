package http

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// number accepts a JSON number or a numeric string, as posted by HTML forms.
// Null and empty strings leave it unset. NaN and infinities are invalid.
type number struct {
	value   float64
	set     bool
	invalid bool
}

func (n *number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(text, 64)
		n.assign(parsed, err)
		return nil
	}

	var parsed float64
	n.assign(parsed, json.Unmarshal(data, &parsed))
	return nil
}

func (n *number) assign(v float64, err error) {
	n.set = true
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		n.invalid = true
		return
	}
	n.value = v
}
