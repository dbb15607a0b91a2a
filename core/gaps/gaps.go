// Package gaps derives free-time analysis from a completed week grid. Gaps
// are maximal runs of empty slots; blocked slots (sleep, fixed routine) end a
// run without ever being part of one.
package gaps

import (
	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

// Display classification thresholds, in slots. These stamp gaps for callers;
// scheduling decisions use Config.DeepWorkMinSlots instead.
const (
	microMaxSlots    = 1
	standardMaxSlots = 4
)

func classify(duration int) model.GapKind {
	switch {
	case duration <= microMaxSlots:
		return model.GapMicro
	case duration <= standardMaxSlots:
		return model.GapStandard
	default:
		return model.GapDeepWork
	}
}

func makeGap(start, end int) model.Gap {
	kind := classify(end - start)
	endClock := "24:00"
	if ds := end % slot.PerDay; ds != 0 {
		endClock = slot.Clock(ds)
	}
	return model.Gap{
		StartSlot:     start,
		EndSlot:       end,
		DurationSlots: end - start,
		Day:           slot.Day(start),
		Kind:          kind,
		KindName:      kind.String(),
		StartClock:    slot.Clock(slot.DaySlot(start)),
		EndClock:      endClock,
	}
}

// Analyze scans the whole grid left to right and returns every maximal empty
// run of at least minDuration slots. The reported gaps are exactly the
// complement of placed-unit ranges and blocked slots.
func Analyze(grid *model.Grid, minDuration int) []model.Gap {
	if minDuration < 1 {
		minDuration = 1
	}
	var out []model.Gap
	start := -1
	for i := 0; i < slot.Week; i++ {
		if grid.Owners[i] == model.Empty {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if i-start >= minDuration {
				out = append(out, makeGap(start, i))
			}
			start = -1
		}
	}
	if start >= 0 && slot.Week-start >= minDuration {
		out = append(out, makeGap(start, slot.Week))
	}
	return out
}

// DaySummary aggregates the free time of one day.
type DaySummary struct {
	Day             int
	Gaps            []model.Gap
	FreeMinutes     int
	DeepWorkMinutes int
	DeepWorkGaps    int
}

// AnalyzeDay restricts the scan to a single day and counts deep-work
// availability against the configured minimum, which is authoritative for
// scheduling (the per-gap Kind stamp is display-only).
func AnalyzeDay(grid *model.Grid, day int, cfg model.Config) DaySummary {
	sum := DaySummary{Day: day}
	if day < 0 || day >= slot.Days {
		return sum
	}
	base := day * slot.PerDay
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		g := makeGap(start, end)
		sum.Gaps = append(sum.Gaps, g)
		sum.FreeMinutes += g.Minutes()
		if g.DurationSlots >= cfg.DeepWorkMinSlots {
			sum.DeepWorkMinutes += g.Minutes()
			sum.DeepWorkGaps++
		}
		start = -1
	}
	for i := base; i < base+slot.PerDay; i++ {
		if grid.Owners[i] == model.Empty {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(base + slot.PerDay)
	return sum
}
