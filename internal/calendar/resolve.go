package calendar

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ErrInvalidInput is returned when a value cannot be turned into a timestamp
var ErrInvalidInput = errors.New("invalid input")

// Unix seconds for 0001-01-01T00:00:00Z and 9999-12-31T23:59:59Z
const (
	minEpoch = -62135596800
	maxEpoch = 253402300799
)

const (
	minYear = 1
	maxYear = 9999
)

// minuteLayouts are accepted in addition to the layouts known to cast
var minuteLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02T1504",
}

// Resolve converts a supported date value into a local timestamp.
//
// Accepted values are time.Time, *time.Time, integer and float Unix epoch
// seconds, and strings holding either an epoch number or a date/time in one
// of the layouts understood by spf13/cast. A nil value resolves to now.
func Resolve(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Now(), nil
	case time.Time:
		if d.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidInput)
		}
		return checkYear(d)
	case *time.Time:
		if d == nil {
			return time.Now(), nil
		}
		return Resolve(*d)
	case int:
		return FromEpoch(int64(d))
	case int8:
		return FromEpoch(int64(d))
	case int16:
		return FromEpoch(int64(d))
	case int32:
		return FromEpoch(int64(d))
	case int64:
		return FromEpoch(d)
	case uint:
		return fromUnsigned(uint64(d))
	case uint8:
		return fromUnsigned(uint64(d))
	case uint16:
		return fromUnsigned(uint64(d))
	case uint32:
		return fromUnsigned(uint64(d))
	case uint64:
		return fromUnsigned(d)
	case float32:
		return FromEpochFloat(float64(d))
	case float64:
		return FromEpochFloat(d)
	case string:
		return fromString(d)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported date type %T", ErrInvalidInput, v)
	}
}

// FromEpoch converts whole Unix seconds to local time
func FromEpoch(sec int64) (time.Time, error) {
	if sec < minEpoch || sec > maxEpoch {
		return time.Time{}, fmt.Errorf("%w: epoch %d out of range", ErrInvalidInput, sec)
	}
	return time.Unix(sec, 0), nil
}

// FromEpochFloat converts fractional Unix seconds to local time, keeping
// the sub-second part
func FromEpochFloat(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, fmt.Errorf("%w: epoch %v is not a finite number", ErrInvalidInput, f)
	}
	if f < minEpoch || f >= maxEpoch+1 {
		return time.Time{}, fmt.Errorf("%w: epoch %v out of range", ErrInvalidInput, f)
	}

	sec := math.Floor(f)
	nsec := int64(math.Round((f - sec) * 1e9))
	if nsec >= 1e9 {
		sec++
		nsec -= 1e9
	}
	return time.Unix(int64(sec), nsec), nil
}

func fromUnsigned(u uint64) (time.Time, error) {
	if u > maxEpoch {
		return time.Time{}, fmt.Errorf("%w: epoch %d out of range", ErrInvalidInput, u)
	}
	return FromEpoch(int64(u))
}

func fromString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidInput)
	}

	if isNumeric(s) {
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !strings.ContainsAny(s, ".eE") {
			return FromEpoch(int64(f))
		}
		return FromEpochFloat(f)
	}

	for _, layout := range minuteLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return checkYear(t)
		}
	}

	t, err := cast.ToTimeInDefaultLocationE(s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unable to parse date %q", ErrInvalidInput, s)
	}
	return checkYear(t)
}

// checkYear keeps dates within the years 1 to 9999 that the epoch paths allow
func checkYear(t time.Time) (time.Time, error) {
	if y := t.Year(); y < minYear || y > maxYear {
		return time.Time{}, fmt.Errorf("%w: year %d out of range", ErrInvalidInput, y)
	}
	return t, nil
}

// isNumeric reports whether s looks like a plain decimal number
func isNumeric(s string) bool {
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return digits > 0
}
