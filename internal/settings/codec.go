package settings

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotObject = errors.New("settings: blob is not a JSON object")

// legacySizes maps the slider values older builds stored for size.
var legacySizes = map[string]Size{
	"1": Small,
	"2": Medium,
	"3": Large,
}

// Encode serializes the normalized record.
func Encode(c ClockSettings) ([]byte, error) {
	return json.Marshal(c.Normalize())
}

// Decode parses a stored blob. A blob that is not a JSON object is an
// error; inside a valid object, each missing or unusable field keeps its
// default, so a partly corrupt record degrades field by field.
func Decode(data []byte) (ClockSettings, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Defaults(), err
	}
	if raw == nil {
		return Defaults(), errNotObject
	}

	c := Defaults()
	if s, ok := str(raw["clockType"]); ok {
		c.ClockType = ClockType(s)
	}
	if s, ok := str(raw["clockFormat"]); ok {
		c.ClockFormat = Format(s)
	}
	if s, ok := str(raw["theme"]); ok {
		c.Theme = Theme(s)
	}
	if sz, ok := size(raw["size"]); ok {
		c.DigitalSize = sz
	}
	if sz, ok := size(raw["analogSize"]); ok {
		c.AnalogSize = sz
	}
	if n, ok := integer(raw["opacity"]); ok {
		c.Opacity = n
	}
	if n, ok := integer(raw["analogRoundness"]); ok {
		c.AnalogRoundness = n
	}
	if b, ok := boolean(raw["draggingEnabled"]); ok {
		c.DraggingEnabled = b
	}

	return c.Normalize(), nil
}

// str accepts a JSON string or a bare number (clockFormat may be 12).
func str(msg json.RawMessage) (string, bool) {
	if msg == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return strings.ToLower(strings.TrimSpace(s)), true
	}
	var n json.Number
	if err := json.Unmarshal(msg, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func size(msg json.RawMessage) (Size, bool) {
	s, ok := str(msg)
	if !ok {
		return "", false
	}
	if legacy, ok := legacySizes[s]; ok {
		return legacy, true
	}
	return Size(s), true
}

// integer accepts 40, 40.0 and "40". Values beyond the int32 range
// saturate so that clamping later keeps their sign.
func integer(msg json.RawMessage) (int, bool) {
	s, ok := str(msg)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return int(math.Max(math.MinInt32, math.Min(math.MaxInt32, f))), true
}

func boolean(msg json.RawMessage) (bool, bool) {
	if msg == nil {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(msg, &b); err == nil {
		return b, true
	}
	if s, ok := str(msg); ok {
		if v, err := strconv.ParseBool(s); err == nil {
			return v, true
		}
	}
	return false, false
}
