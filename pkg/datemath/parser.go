package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyValue is returned when a timestamp field is blank.
var ErrEmptyValue = errors.New("empty time value")

// Human-readable layouts used in labels and descriptions.
const (
	DateLayout     = "Mon 2 Jan 2006"
	DateTimeLayout = "Mon 2 Jan 2006 15:04"
	shortDate      = "Mon 2 Jan"
)

// localLayouts are the stored timestamp forms without an explicit offset,
// tried in order after RFC 3339.
var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parser interprets wall-clock values in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Paris"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn wraps an already resolved location. A nil location means UTC.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseLocal parses a stored timestamp. Values carrying an offset keep it;
// wall-clock values are read in the parser's timezone.
func (p *Parser) ParseLocal(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyValue
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time value %q", value)
}

// ParseDate parses a calendar date (YYYY-MM-DD). A trailing time part is ignored.
func (p *Parser) ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyValue
	}
	if len(value) > 10 {
		value = value[:10]
	}
	t, err := time.ParseInLocation("2006-01-02", value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// NextDay returns midnight of the day after t. Used as an exclusive all-day end.
func (p *Parser) NextDay(t time.Time) time.Time {
	return p.StartOfDay(t).AddDate(0, 0, 1)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// IsMidnight reports whether t falls exactly on a day boundary in the parser's timezone.
func (p *Parser) IsMidnight(t time.Time) bool {
	return p.StartOfDay(t).Equal(t)
}

// IsDayEnd reports whether t is the last minute of its day (23:59 or later).
func (p *Parser) IsDayEnd(t time.Time) bool {
	t = t.In(p.location)
	return t.Hour() == 23 && t.Minute() == 59
}

// FormatDate renders t as a date label in the parser's timezone.
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}

// FormatDateTime renders t with its wall-clock time.
func (p *Parser) FormatDateTime(t time.Time) string {
	return t.In(p.location).Format(DateTimeLayout)
}

// FormatDateRange renders an inclusive date range. Single days collapse to
// one date; ranges within one year print the year once.
func (p *Parser) FormatDateRange(start, end time.Time) string {
	s := start.In(p.location)
	e := end.In(p.location)
	if p.StartOfDay(s).Equal(p.StartOfDay(e)) || e.Before(s) {
		return p.FormatDate(s)
	}
	if s.Year() == e.Year() {
		return fmt.Sprintf("From %s to %s", s.Format(shortDate), e.Format(DateLayout))
	}
	return fmt.Sprintf("From %s to %s", s.Format(DateLayout), e.Format(DateLayout))
}
