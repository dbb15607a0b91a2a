package slot

import (
	"errors"
	"fmt"
)

// The week is discretized into 30-minute slots. All engine components address
// time through absolute slot indices in [0, Week).
const (
	Minutes = 30
	PerDay  = 48
	Days    = 7
	Week    = PerDay * Days
)

// ErrInvalidInput reports an out-of-range slot, hour or minute.
var ErrInvalidInput = errors.New("slot: invalid input")

// Valid reports whether s is a valid absolute slot index.
func Valid(s int) bool {
	return s >= 0 && s < Week
}

// Day returns the day index (0-6) of an absolute slot.
func Day(s int) int {
	return s / PerDay
}

// DaySlot returns the day-local slot (0-47) of an absolute slot.
func DaySlot(s int) int {
	return s % PerDay
}

// Absolute combines a day index and a day-local slot into an absolute slot.
func Absolute(day, daySlot int) (int, error) {
	if day < 0 || day >= Days || daySlot < 0 || daySlot >= PerDay {
		return 0, fmt.Errorf("%w: day %d slot %d", ErrInvalidInput, day, daySlot)
	}
	return day*PerDay + daySlot, nil
}

// FromTime converts a wall-clock time to a day-local slot. Minutes past the
// half hour round down to the slot they fall in.
func FromTime(hour, minute int) (int, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidInput, hour, minute)
	}
	s := hour * 2
	if minute >= Minutes {
		s++
	}
	return s, nil
}

// ToTime converts a day-local slot back to its wall-clock start time.
func ToTime(daySlot int) (hour, minute int, err error) {
	if daySlot < 0 || daySlot >= PerDay {
		return 0, 0, fmt.Errorf("%w: day slot %d", ErrInvalidInput, daySlot)
	}
	hour = daySlot / 2
	if daySlot%2 == 1 {
		minute = Minutes
	}
	return hour, minute, nil
}

// ParseClock converts an "HH:MM" string to a day-local slot.
func ParseClock(clock string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, clock)
	}
	return FromTime(hour, minute)
}

// Clock formats a day-local slot as "HH:MM". The week boundary formats as
// "24:00" so gap reports can stamp a run that touches the end of a day.
func Clock(daySlot int) string {
	if daySlot == PerDay {
		return "24:00"
	}
	hour, minute, err := ToTime(daySlot)
	if err != nil {
		return "??:??"
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// InRange reports whether the absolute slot falls inside the day-local range
// [start, end). A start greater than end denotes an overnight range that
// wraps past midnight, e.g. a 23:00-06:00 sleep window.
func InRange(s, start, end int) bool {
	ds := DaySlot(s)
	if start <= end {
		return ds >= start && ds < end
	}
	return ds >= start || ds < end
}
