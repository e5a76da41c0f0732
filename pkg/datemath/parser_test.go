package datemath

import (
	"testing"
	"time"
)

func TestNewParser(t *testing.T) {
	t.Run("Valid Timezone", func(t *testing.T) {
		if _, err := NewParser("Asia/Ho_Chi_Minh"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Invalid Timezone", func(t *testing.T) {
		if _, err := NewParser("Not/AZone"); err == nil {
			t.Fatal("expected error for bogus timezone")
		}
	})
}

func TestParseDate(t *testing.T) {
	p, _ := NewParser("UTC")

	t.Run("Valid Date", func(t *testing.T) {
		d, err := p.ParseDate("2026-03-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Hour() != 0 || d.Day() != 2 || d.Month() != time.March {
			t.Errorf("expected midnight 2026-03-02, got %v", d)
		}
	})

	t.Run("Invalid Date", func(t *testing.T) {
		if _, err := p.ParseDate("02/03/2026"); err == nil {
			t.Fatal("expected error for non-ISO date")
		}
	})
}

func TestDayBounds(t *testing.T) {
	p, _ := NewParser("UTC")
	at := time.Date(2026, 3, 2, 13, 45, 0, 0, time.UTC)

	start, end := p.DayBounds(at)
	if start.Hour() != 0 || start.Day() != 2 {
		t.Errorf("unexpected start of day: %v", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("unexpected end of day: %v", end)
	}
}

func TestClockOn(t *testing.T) {
	p, _ := NewParser("UTC")
	date, _ := p.ParseDate("2026-03-02")

	t.Run("Valid Clock", func(t *testing.T) {
		at, err := p.ClockOn(date, "14:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if at.Hour() != 14 || at.Minute() != 30 || at.Day() != 2 {
			t.Errorf("unexpected instant: %v", at)
		}
	})

	t.Run("Malformed Clock", func(t *testing.T) {
		for _, clock := range []string{"1430", "25:00", "14:75", ""} {
			if _, err := p.ClockOn(date, clock); err == nil {
				t.Errorf("expected error for clock %q", clock)
			}
		}
	})
}
