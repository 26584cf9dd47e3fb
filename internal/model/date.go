// Package model defines the data structures used throughout the application.
// Records mirror table rows one-to-one (the `db` tags are the column names);
// the *View types add the display fields derived at response time.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of a calendar day.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day and no time zone.
//
// WHY NOT time.Time?
// "Water every 7 days" is calendar arithmetic. Adding 7*24h to a timestamp
// lands on the wrong day across a DST change, and comparing a midnight in one
// zone with a midnight in another gives surprising answers. Date keeps the
// value normalised to midnight UTC so AddDays, Equal and Before only ever see
// whole days.
type Date struct {
	t time.Time
}

// NewDate returns the given calendar day. Out-of-range values normalise the
// way time.Date does (January 32 is February 1).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day t falls on in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses "2006-01-02". A full RFC 3339 timestamp is accepted too and
// truncated to its date part, since some clients send ISO strings from a date
// picker.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, &DateError{Value: s}
}

// DateError reports a string that is not a calendar day.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("Invalid date %q, want YYYY-MM-DD", e.Value)
}

// AddDays moves the date by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is later than o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time { return d.t }

// Format formats d with a time.Format layout.
func (d Date) Format(layout string) string { return d.t.Format(layout) }

func (d Date) String() string { return d.t.Format(DateLayout) }

// MarshalJSON encodes d as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD". Nullable dates are *Date fields, so
// encoding/json handles null before we get here. An empty string decodes to
// the zero Date, which callers treat like an absent value.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("model: date must be a string: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner. pgx hands DATE columns over as time.Time;
// SQLite returns either time.Time or the stored text depending on the
// declared column type, so all three shapes are accepted.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case Date:
		*d = v
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("model: cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	// SQLite may hand back "2024-03-01 00:00:00" for a DATE column.
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
