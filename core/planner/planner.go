// Package planner answers deadline-driven planning queries over an existing
// week grid: it scans the free gaps left by committed work and allocates
// preparation blocks for upcoming events, either evenly (Redistribute) or
// weighted toward the deadline (PlanBackward). The planner only proposes blocks; it
// never writes into the grid.
package planner

import (
	"sort"

	"github.com/google/uuid"

	"github.com/Absolute-Martial/CSOS/core/gaps"
	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

// EventKind classifies a deadline event and selects its default prep budget.
type EventKind string

const (
	EventTest       EventKind = "test"
	EventQuiz       EventKind = "quiz"
	EventAssignment EventKind = "assignment"
	EventLabReport  EventKind = "lab_report"
	EventProject    EventKind = "project"
	EventExam       EventKind = "exam"
)

// Default preparation hours per event kind. Unknown kinds get 3 hours.
var prepHours = map[EventKind]int{
	EventTest:       4,
	EventQuiz:       2,
	EventAssignment: 3,
	EventLabReport:  2,
	EventProject:    6,
	EventExam:       8,
}

// PrepMinutes returns the default preparation budget for an event kind.
func PrepMinutes(kind EventKind) int {
	if h, ok := prepHours[kind]; ok {
		return h * 60
	}
	return 3 * 60
}

// Block size limits, in minutes.
const (
	minBlockMins    = 30
	maxBlockMins    = 120
	deepWorkMins    = 90
	breakMins       = 15
	freeTimeCapMins = 60
)

// Event is a dated commitment that needs preparation time before it.
type Event struct {
	Kind    EventKind
	Subject string
	Title   string
	// Day the event falls on; preparation lands on days [FromDay, Day).
	Day int
	// Hours overrides the kind's default budget when positive.
	Hours float64
}

func (e Event) budgetMins() int {
	if e.Hours > 0 {
		return int(e.Hours * 60)
	}
	return PrepMinutes(e.Kind)
}

// Block is one proposed study block inside a gap.
type Block struct {
	Day          int    `json:"day"`
	StartSlot    int    `json:"start_slot"`
	StartClock   string `json:"start"`
	DurationMins int    `json:"duration_mins"`
	Subject      string `json:"subject"`
	Title        string `json:"title"`
	DeepWork     bool   `json:"is_deep_work"`
	Break        bool   `json:"is_break,omitempty"`
}

// Plan is the result of one planning query.
type Plan struct {
	ID             string  `json:"id"`
	Kind           EventKind `json:"event_kind"`
	Subject        string  `json:"subject"`
	Title          string  `json:"title"`
	EventDay       int     `json:"event_day"`
	RequestedMins  int     `json:"requested_mins"`
	AllocatedMins  int     `json:"allocated_mins"`
	FullyScheduled bool    `json:"fully_scheduled"`
	Blocks         []Block `json:"blocks"`
}

// candidate is a free gap annotated for ordering.
type candidate struct {
	day      int
	gap      model.Gap
	deepWork bool
}

// collect gathers every gap of at least minBlockMins on days [fromDay, toDay).
func collect(grid *model.Grid, cfg model.Config, fromDay, toDay int) []candidate {
	if fromDay < 0 {
		fromDay = 0
	}
	if toDay > slot.Days {
		toDay = slot.Days
	}
	var out []candidate
	for day := fromDay; day < toDay; day++ {
		sum := gaps.AnalyzeDay(grid, day, cfg)
		for _, g := range sum.Gaps {
			if g.Minutes() < minBlockMins {
				continue
			}
			out = append(out, candidate{
				day:      day,
				gap:      g,
				deepWork: g.DurationSlots >= cfg.DeepWorkMinSlots,
			})
		}
	}
	return out
}

// Redistribute spreads the event's preparation budget over the free gaps
// before the event. Deep-work capable gaps are filled first, later days
// before earlier ones, each block capped at two hours.
func Redistribute(grid *model.Grid, cfg model.Config, fromDay int, ev Event) Plan {
	plan := Plan{
		ID:            uuid.NewString(),
		Kind:          ev.Kind,
		Subject:       ev.Subject,
		Title:         ev.Title,
		EventDay:      ev.Day,
		RequestedMins: ev.budgetMins(),
	}
	cands := collect(grid, cfg, fromDay, ev.Day)
	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].deepWork != cands[b].deepWork {
			return cands[a].deepWork
		}
		return cands[a].day > cands[b].day
	})

	remaining := plan.RequestedMins
	for _, c := range cands {
		if remaining <= 0 {
			break
		}
		blockMins := c.gap.Minutes()
		if blockMins > remaining {
			blockMins = remaining
		}
		if blockMins > maxBlockMins {
			blockMins = maxBlockMins
		}
		plan.Blocks = append(plan.Blocks, Block{
			Day:          c.day,
			StartSlot:    c.gap.StartSlot,
			StartClock:   c.gap.StartClock,
			DurationMins: blockMins,
			Subject:      ev.Subject,
			Title:        "Prepare for " + string(ev.Kind) + ": " + ev.Subject,
			DeepWork:     blockMins >= deepWorkMins,
		})
		remaining -= blockMins
	}
	plan.AllocatedMins = plan.RequestedMins - remaining
	plan.FullyScheduled = remaining <= 0
	return plan
}

// PlanBackward distributes the budget from the deadline backward, in day
// order, sizing blocks by proximity: gaps closer to the deadline carry more
// weight and so get bigger blocks.
func PlanBackward(grid *model.Grid, cfg model.Config, fromDay int, ev Event) Plan {
	plan := Plan{
		ID:            uuid.NewString(),
		Kind:          ev.Kind,
		Subject:       ev.Subject,
		Title:         ev.Title,
		EventDay:      ev.Day,
		RequestedMins: ev.budgetMins(),
	}
	daysAvailable := ev.Day - fromDay
	if daysAvailable < 1 {
		return plan
	}
	cands := collect(grid, cfg, fromDay, ev.Day)

	remaining := plan.RequestedMins
	for _, c := range cands {
		if remaining <= 0 {
			break
		}
		daysToDeadline := ev.Day - c.day
		weight := 1.0 - float64(daysToDeadline)/float64(daysAvailable)
		if weight < 0.5 {
			weight = 0.5
		}
		half := daysAvailable / 2
		if half < 1 {
			half = 1
		}
		blockMins := int(float64(plan.RequestedMins) * weight / float64(half))
		if blockMins > c.gap.Minutes() {
			blockMins = c.gap.Minutes()
		}
		if blockMins > maxBlockMins {
			blockMins = maxBlockMins
		}
		if blockMins < minBlockMins {
			continue
		}
		if blockMins > remaining {
			blockMins = remaining
			if blockMins < minBlockMins {
				blockMins = minBlockMins
			}
		}
		plan.Blocks = append(plan.Blocks, Block{
			Day:          c.day,
			StartSlot:    c.gap.StartSlot,
			StartClock:   c.gap.StartClock,
			DurationMins: blockMins,
			Subject:      ev.Subject,
			Title:        ev.Title,
			DeepWork:     blockMins >= deepWorkMins,
		})
		remaining -= blockMins
	}
	plan.AllocatedMins = plan.RequestedMins - remaining
	plan.FullyScheduled = remaining <= 0
	return plan
}

// WithBreaks inserts a 15-minute rest after every block of 90 minutes or
// more, except after the last block of the day.
func WithBreaks(blocks []Block) []Block {
	out := make([]Block, 0, len(blocks))
	for i, b := range blocks {
		out = append(out, b)
		if b.DurationMins < deepWorkMins || i == len(blocks)-1 {
			continue
		}
		if blocks[i+1].Day != b.Day {
			continue
		}
		end := b.StartSlot + (b.DurationMins+slot.Minutes-1)/slot.Minutes
		out = append(out, Block{
			Day:          b.Day,
			StartSlot:    end,
			StartClock:   slot.Clock(slot.DaySlot(end % slot.Week)),
			DurationMins: breakMins,
			Title:        "Break",
			Break:        true,
		})
	}
	return out
}
