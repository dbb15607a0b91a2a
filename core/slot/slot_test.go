package slot

import (
	"errors"
	"testing"
)

func TestFromTime(t *testing.T) {
	cases := []struct {
		hour, minute, want int
	}{
		{0, 0, 0},
		{0, 29, 0},
		{0, 30, 1},
		{8, 0, 16},
		{12, 0, 24},
		{16, 0, 32},
		{23, 0, 46},
		{23, 59, 47},
	}
	for _, c := range cases {
		got, err := FromTime(c.hour, c.minute)
		if err != nil {
			t.Fatalf("FromTime(%d,%d): %v", c.hour, c.minute, err)
		}
		if got != c.want {
			t.Fatalf("FromTime(%d,%d) = %d, want %d", c.hour, c.minute, got, c.want)
		}
	}
}

func TestFromTimeInvalid(t *testing.T) {
	for _, c := range [][2]int{{24, 0}, {-1, 0}, {0, 60}, {0, -1}} {
		if _, err := FromTime(c[0], c[1]); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("FromTime(%d,%d): expected ErrInvalidInput, got %v", c[0], c[1], err)
		}
	}
}

func TestToTimeRoundTrip(t *testing.T) {
	for ds := 0; ds < PerDay; ds++ {
		hour, minute, err := ToTime(ds)
		if err != nil {
			t.Fatalf("ToTime(%d): %v", ds, err)
		}
		back, err := FromTime(hour, minute)
		if err != nil {
			t.Fatalf("FromTime(%d,%d): %v", hour, minute, err)
		}
		if back != ds {
			t.Fatalf("round trip %d -> %02d:%02d -> %d", ds, hour, minute, back)
		}
	}
	if _, _, err := ToTime(PerDay); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ToTime(%d): expected ErrInvalidInput, got %v", PerDay, err)
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("23:00")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	if got != 46 {
		t.Fatalf("ParseClock(23:00) = %d, want 46", got)
	}
	if _, err := ParseClock("nope"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := ParseClock("25:00"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClock(t *testing.T) {
	if got := Clock(16); got != "08:00" {
		t.Fatalf("Clock(16) = %q", got)
	}
	if got := Clock(17); got != "08:30" {
		t.Fatalf("Clock(17) = %q", got)
	}
	if got := Clock(PerDay); got != "24:00" {
		t.Fatalf("Clock(PerDay) = %q", got)
	}
}

func TestAbsolute(t *testing.T) {
	s, err := Absolute(2, 16)
	if err != nil {
		t.Fatalf("Absolute: %v", err)
	}
	if s != 112 {
		t.Fatalf("Absolute(2,16) = %d, want 112", s)
	}
	if Day(s) != 2 || DaySlot(s) != 16 {
		t.Fatalf("Day/DaySlot(%d) = %d/%d", s, Day(s), DaySlot(s))
	}
	if _, err := Absolute(7, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInRangeWraps(t *testing.T) {
	// 23:00-06:00 sleep window.
	if !InRange(47, 46, 12) {
		t.Fatal("slot 47 should be in the overnight window")
	}
	if !InRange(PerDay+5, 46, 12) {
		t.Fatal("early next-day slot should be in the overnight window")
	}
	if InRange(20, 46, 12) {
		t.Fatal("midday slot should be outside the overnight window")
	}
	// Plain daytime window.
	if !InRange(18, 16, 24) || InRange(24, 16, 24) {
		t.Fatal("daytime window membership wrong")
	}
}
