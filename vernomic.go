// Package vernomic builds memorable version identifiers from timestamps.
//
// A year is split into 13 cycles of 28 days. Each cycle and each day of a
// cycle carries a fixed name, so a moment in time maps to an identifier such
// as model_25_Indigo_Duck_1428: root name, two-digit year, cycle name, day
// name and, optionally, the time of day and a suffix.
package vernomic

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pders01/vernomic/internal/calendar"
	"golang.org/x/text/unicode/norm"
)

// Partition is the position of a day within the 13-cycle year
type Partition = calendar.Partition

// Vernomic is an immutable identifier computed from a timestamp and naming
// options. It is safe for concurrent use.
type Vernomic struct {
	root        string
	suffix      string
	extension   string
	displayTime bool
	divider     string
	description string

	t    time.Time
	part Partition
}

// New validates root and the options and computes the identifier
func New(root string, opts ...Option) (*Vernomic, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	root, err := cleanName("root name", root, true)
	if err != nil {
		return nil, err
	}

	suffix, err := cleanName("suffix name", s.suffix, false)
	if err != nil {
		return nil, err
	}

	ext, err := cleanExtension(s.extension)
	if err != nil {
		return nil, err
	}

	if err := checkDivider(s.divider); err != nil {
		return nil, err
	}

	t := s.now()
	if s.hasDate && !isNilDate(s.date) {
		t, err = calendar.Resolve(s.date)
		if err != nil {
			return nil, &ValidationError{
				Field:  "date",
				Value:  fmt.Sprint(s.date),
				Reason: "not a usable timestamp",
				Err:    err,
			}
		}
	}

	return &Vernomic{
		root:        root,
		suffix:      suffix,
		extension:   ext,
		displayTime: s.displayTime,
		divider:     s.divider,
		description: s.description,
		t:           t,
		part:        calendar.Of(t),
	}, nil
}

// isNilDate reports whether date carries no value, including a nil *time.Time
func isNilDate(date any) bool {
	if date == nil {
		return true
	}
	tp, ok := date.(*time.Time)
	return ok && tp == nil
}

func cleanName(field, name string, required bool) (string, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		if required {
			return "", invalid(field, name, "must not be empty")
		}
		return "", nil
	}
	if strings.ContainsAny(name, `/\`) {
		return "", invalid(field, name, "must not contain path separators")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return "", invalid(field, name, "must not contain control characters")
		}
	}
	return name, nil
}

func cleanExtension(ext string) (string, error) {
	if ext == "" {
		return "", nil
	}
	trimmed := strings.TrimLeft(strings.TrimSpace(ext), ".")
	if trimmed == "" {
		return "", invalid("file extension", ext, "must contain more than dots")
	}
	for _, r := range trimmed {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == '/' || r == '\\' {
			return "", invalid("file extension", ext, "must not contain whitespace or path separators")
		}
	}
	return norm.NFC.String(trimmed), nil
}

func checkDivider(divider string) error {
	if utf8.RuneCountInString(divider) != 1 {
		return invalid("divider", divider, "must be exactly one character")
	}
	r, _ := utf8.DecodeRuneInString(divider)
	if r == utf8.RuneError || unicode.IsSpace(r) || unicode.IsControl(r) {
		return invalid("divider", divider, "must be a printable character")
	}
	switch r {
	case '/', '\\', '.':
		return invalid("divider", divider, "must not be a path separator or dot")
	}
	return nil
}

// segment is one optional piece of a joined name
type segment struct {
	value   string
	present bool
}

func seg(value string) segment { return segment{value: value, present: true} }

func optional(value string, present bool) segment {
	return segment{value: value, present: present}
}

// join concatenates the present segments with sep
func join(sep string, segments ...segment) string {
	var b strings.Builder
	first := true
	for _, s := range segments {
		if !s.present {
			continue
		}
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(s.value)
		first = false
	}
	return b.String()
}

// Identifier returns <root>_<yy>_<cycle>_<day>[_<HHMM>][_<suffix>] joined by
// the configured divider
func (v *Vernomic) Identifier() string {
	return join(v.divider,
		seg(v.root),
		seg(v.YearShort()),
		seg(v.part.CycleName),
		seg(v.part.DayName),
		optional(v.VersionTime(), v.displayTime),
		optional(v.suffix, v.suffix != ""),
	)
}

func (v *Vernomic) String() string {
	return v.Identifier()
}

// FileName returns the identifier followed by "." and the configured
// extension. Without an extension it returns the bare identifier.
func (v *Vernomic) FileName() string {
	return join(".", seg(v.Identifier()), optional(v.extension, v.extension != ""))
}

// RequireFileName is FileName for callers that need an extension; it fails
// with ErrMissingExtension when none was configured.
func (v *Vernomic) RequireFileName() (string, error) {
	if v.extension == "" {
		return "", fmt.Errorf("%w for %s", ErrMissingExtension, v.Identifier())
	}
	return v.FileName(), nil
}

// YearShort returns the zero-padded two-digit year
func (v *Vernomic) YearShort() string {
	return fmt.Sprintf("%02d", v.t.Year()%100)
}

// VersionTime returns the zero-padded HHMM time of day
func (v *Vernomic) VersionTime() string {
	return fmt.Sprintf("%02d%02d", v.t.Hour(), v.t.Minute())
}

// DayLabel returns the cycle and day names joined by the divider
func (v *Vernomic) DayLabel() string {
	return v.part.Label(v.divider)
}

// Partition returns the calendar position of the timestamp
func (v *Vernomic) Partition() Partition { return v.part }

// Time returns the timestamp the identifier was built from
func (v *Vernomic) Time() time.Time { return v.t }

// RootName returns the normalized root name
func (v *Vernomic) RootName() string { return v.root }

// SuffixName returns the suffix, or "" when none was set
func (v *Vernomic) SuffixName() string { return v.suffix }

// Extension returns the file extension without a leading dot
func (v *Vernomic) Extension() string { return v.extension }

// DisplayTime reports whether the HHMM segment is included
func (v *Vernomic) DisplayTime() bool { return v.displayTime }

// Divider returns the segment separator
func (v *Vernomic) Divider() string { return v.divider }

// Description returns the free-text description
func (v *Vernomic) Description() string { return v.description }
