// Package date provides a calendar month type used to label projection years.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const readMonthFormat = "2006-1" // Permissive read format (allows single-digit month).

// MonthFormat is the format used to represent months as strings (ISO-8601 year and month).
const MonthFormat = "2006-01"

// Month represents a calendar month. The zero value means no calendar is attached.
type Month struct {
	y int
	m time.Month
}

// time returns the first instant of the month, UTC.
func (d Month) time() time.Time { return time.Date(d.y, d.m, 1, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Month for the given year and month.
func New(year int, month time.Month) Month {
	d := Month{year, month}
	t := d.time()
	return Month{t.Year(), t.Month()}
}

// IsZero reports whether d is the zero Month.
func (d Month) IsZero() bool { return d == Month{} }

// AddYears returns the month n years after d.
func (d Month) AddYears(n int) Month { return New(d.y+n, d.m) }

// String formats the month in its standard format, or "" for the zero Month.
func (d Month) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(MonthFormat)
}

// Parse parses a Month from a string. It is lenient and accepts formats like "2025-7".
func Parse(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return New(on.Year(), on.Month()), nil
}

// UnmarshalJSON reads a month from a json string, the empty string being the zero Month.
func (j *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Month{}
		return nil
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Month) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Month pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
