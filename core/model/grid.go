package model

import "github.com/Absolute-Martial/CSOS/core/slot"

// Slot owner sentinels. Any non-negative owner is a unit id.
const (
	Empty   int32 = -1
	Blocked int32 = -2
)

// Grid is the per-call weekly timeline: one owner per 30-minute slot.
// It is rebuilt for every optimization call and discarded afterwards.
type Grid struct {
	Owners [slot.Week]int32
}

// NewGrid returns a grid with every slot empty.
func NewGrid() *Grid {
	g := &Grid{}
	for i := range g.Owners {
		g.Owners[i] = Empty
	}
	return g
}

// Free reports whether every slot in [start, start+duration) is empty.
// Out-of-bounds ranges are never free.
func (g *Grid) Free(start, duration int) bool {
	if start < 0 || start+duration > slot.Week {
		return false
	}
	for i := start; i < start+duration; i++ {
		if g.Owners[i] != Empty {
			return false
		}
	}
	return true
}

// Place marks [start, start+duration) as owned by id. The range must be in
// bounds; occupancy is the caller's concern (locked units overwrite).
func (g *Grid) Place(id int32, start, duration int) {
	for i := start; i < start+duration; i++ {
		g.Owners[i] = id
	}
}

// BlockSleep marks the sleep window as blocked on every day of the week.
// An overnight window (start > end) blocks from start to the day boundary and
// from the start of the following day to end, clamped at the week's end.
func (g *Grid) BlockSleep(cfg Config) {
	for day := 0; day < slot.Days; day++ {
		offset := day * slot.PerDay
		if cfg.SleepStartSlot > cfg.SleepEndSlot {
			for s := cfg.SleepStartSlot; s < slot.PerDay; s++ {
				g.Owners[offset+s] = Blocked
			}
			next := ((day + 1) % slot.Days) * slot.PerDay
			for s := 0; s < cfg.SleepEndSlot; s++ {
				if next+s < slot.Week {
					g.Owners[next+s] = Blocked
				}
			}
		} else {
			for s := cfg.SleepStartSlot; s < cfg.SleepEndSlot; s++ {
				g.Owners[offset+s] = Blocked
			}
		}
	}
}

// DayOwners returns the owners of a single day as a slice view.
func (g *Grid) DayOwners(day int) []int32 {
	start := day * slot.PerDay
	return g.Owners[start : start+slot.PerDay]
}
