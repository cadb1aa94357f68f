package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the storage and display layout of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// DateFromOrdinal assembles a date from a year and a 1-based day of the year.
// It returns *ValidationError when the year is outside 1..9999 or the day does
// not exist in that year.
func DateFromOrdinal(year, ordinal int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, Invalidf("year %d is out of range", year)
	}
	if ordinal < 1 || ordinal > daysIn(year) {
		return Date{}, Invalidf("day %d is out of range for year %d", ordinal, year)
	}
	return DateOf(time.Date(year, time.January, ordinal, 0, 0, 0, 0, time.UTC)), nil
}

func daysIn(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// Ordinal returns the 1-based day of the year.
func (d Date) Ordinal() int {
	return d.Time().YearDay()
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Check reports an error unless d names an existing day in years 1..9999.
// Only such dates survive a store round trip.
func (d Date) Check() error {
	if d.IsZero() {
		return errors.New("date is not set")
	}
	if d.Year < 1 || d.Year > 9999 {
		return fmt.Errorf("date %s: year is out of range", d)
	}
	if DateOf(d.Time()) != d {
		return fmt.Errorf("date %s does not exist", d)
	}
	return nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. Dates are stored as YYYY-MM-DD text; a date
// that fails Check is refused.
func (d Date) Value() (driver.Value, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
