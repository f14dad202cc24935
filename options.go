package vernomic

import "time"

// DefaultDivider separates the identifier segments unless overridden
const DefaultDivider = "_"

type settings struct {
	suffix      string
	extension   string
	displayTime bool
	divider     string
	description string
	date        any
	hasDate     bool
	now         func() time.Time
}

func defaultSettings() settings {
	return settings{
		displayTime: true,
		divider:     DefaultDivider,
		now:         time.Now,
	}
}

// Option configures a Vernomic at construction time
type Option func(*settings)

// WithSuffix appends a final segment to the identifier
func WithSuffix(suffix string) Option {
	return func(s *settings) { s.suffix = suffix }
}

// WithExtension sets the file extension used by FileName. Leading dots are
// stripped, so "h5" and ".h5" are equivalent.
func WithExtension(ext string) Option {
	return func(s *settings) { s.extension = ext }
}

// WithDisplayTime controls whether the HHMM segment is part of the identifier
func WithDisplayTime(display bool) Option {
	return func(s *settings) { s.displayTime = display }
}

// WithDivider sets the single-character segment separator
func WithDivider(divider string) Option {
	return func(s *settings) { s.divider = divider }
}

// WithDescription attaches free text to the exported metadata
func WithDescription(description string) Option {
	return func(s *settings) { s.description = description }
}

// WithTime fixes the timestamp the identifier is built from
func WithTime(t time.Time) Option {
	return WithDate(t)
}

// WithEpoch sets the timestamp from whole Unix seconds
func WithEpoch(sec int64) Option {
	return WithDate(sec)
}

// WithEpochFloat sets the timestamp from fractional Unix seconds
func WithEpochFloat(sec float64) Option {
	return WithDate(sec)
}

// WithDate sets the timestamp from any value the calendar resolver accepts:
// time.Time, integer or float epoch seconds, or a date string
func WithDate(date any) Option {
	return func(s *settings) {
		s.date = date
		s.hasDate = true
	}
}

// WithClock replaces the source of the current time used when no date is given
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// Options is the plain-struct form of the construction options, convenient
// for populating from configuration
type Options struct {
	Suffix      string
	Extension   string
	HideTime    bool
	Divider     string
	Description string
	Date        any
}

// Apply converts o into functional options. Zero fields keep the defaults.
func (o Options) Apply() []Option {
	opts := []Option{
		WithSuffix(o.Suffix),
		WithExtension(o.Extension),
		WithDisplayTime(!o.HideTime),
		WithDescription(o.Description),
	}
	if o.Divider != "" {
		opts = append(opts, WithDivider(o.Divider))
	}
	if o.Date != nil {
		opts = append(opts, WithDate(o.Date))
	}
	return opts
}

// NewFromOptions builds a Vernomic from an Options struct
func NewFromOptions(root string, o Options) (*Vernomic, error) {
	return New(root, o.Apply()...)
}
