package botocore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Timestamp struct {
	time.Time
}

const RFC3339Milli = "%d-%02d-%02dT%02d:%02d:%02d.%03dZ"

func (ts Timestamp) String() string {
	if ts.IsZero() {
		return ""
	}
	return fmt.Sprintf(RFC3339Milli, ts.Year(), ts.Month(), ts.Day(), ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond()/1000000)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte("\"" + ts.String() + "\""), nil
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var j string
	err := json.Unmarshal(b, &j)
	if err == nil {
		var tsp Timestamp
		tsp, err = ParseTimestamp(string(j))
		if err == nil {
			*ts = tsp
		}
	}
	return err
}

// ParseTimestamp parses the string timestamp forms that appear on the wire:
// ISO8601 (with tolerance for +00:00/+0000 style zero offsets), RFC822 and
// RFC1123, and all-digit epoch seconds.
func ParseTimestamp(s string) (Timestamp, error) {
	if s != "" && isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return Timestamp{time.Unix(n, 0).UTC()}, nil
		}
	}
	layout := "2006-01-02T15:04:05.999Z"
	t, e := time.Parse(layout, s)
	if e != nil {
		if strings.HasSuffix(s, "+00:00") || strings.HasSuffix(s, "-00:00") {
			t, e = time.Parse(layout, s[:len(s)-6]+"Z")
		} else if strings.HasSuffix(s, "+0000") || strings.HasSuffix(s, "-0000") {
			t, e = time.Parse(layout, s[:len(s)-5]+"Z")
		}
		if e != nil {
			t, e = time.Parse("2006-01-02T15:04:05Z07:00", s)
		}
		if e != nil {
			t, e = time.Parse(time.RFC1123, s)
		}
		if e != nil {
			t, e = time.Parse(time.RFC822, s)
		}
		if e != nil {
			var ts Timestamp
			return ts, fmt.Errorf("Bad Timestamp: %q", s)
		}
	}
	return Timestamp{t.UTC()}, nil
}

// ParseTimestampValue is the default timestamp converter injected into the
// parsers. The raw value is a string for XML bodies and headers, and either
// a string or a JSON number for JSON bodies (epoch seconds, possibly
// fractional).
func ParseTimestampValue(value interface{}) (Timestamp, error) {
	switch v := value.(type) {
	case string:
		return ParseTimestamp(v)
	case float64:
		sec := int64(v)
		nsec := int64((v - float64(sec)) * 1e9)
		return Timestamp{time.Unix(sec, nsec).UTC()}, nil
	case int:
		return Timestamp{time.Unix(int64(v), 0).UTC()}, nil
	case int64:
		return Timestamp{time.Unix(v, 0).UTC()}, nil
	default:
		var ts Timestamp
		return ts, fmt.Errorf("Bad Timestamp: %v", value)
	}
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
