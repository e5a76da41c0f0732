package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the canonical calendar-date layout used across the service.
const DateFormat = "2006-01-02"

// Parser performs timezone-aware date arithmetic.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate converts a "2006-01-02" string to midnight of that day in the
// parser's timezone.
func (p *Parser) ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(date), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// FormatDate renders t as a calendar date in the parser's timezone.
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format(DateFormat)
}

// StartOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the same day.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// DayBounds returns the [start, end] pair for the day containing t.
func (p *Parser) DayBounds(t time.Time) (time.Time, time.Time) {
	start := p.StartOfDay(t)
	return start, p.EndOfDay(start)
}

// ClockOn places a "15:04" wall-clock string onto the given date, producing
// an absolute instant in the parser's timezone.
func (p *Parser) ClockOn(date time.Time, clock string) (time.Time, error) {
	hour, minute, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	d := date.In(p.location)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, p.location), nil
}

func parseClock(clock string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock %q: want HH:MM", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid clock %q: bad hour", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock %q: bad minute", clock)
	}
	return hour, minute, nil
}
