// Package normalize maps heterogeneous collaborator records (tasks, spaced
// revisions, lab reports, goals, timetable entries) onto the uniform unit
// representation consumed by the optimizer. Each record type carries its own
// base priority; urgency from the deadline and the subject's credit weight
// are folded in on top.
package normalize

import (
	"sort"
	"time"

	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

// Base priority weights per work source.
const (
	PriorityOverdue          = 100
	PriorityDueToday         = 90
	PriorityExamPrep         = 85
	PriorityDueTomorrow      = 80
	PriorityUrgentLab        = 75
	PriorityTestPrep         = 70
	PriorityRevisionDue      = 65
	PriorityAssignment       = 60
	PriorityLabWork          = 55
	PriorityRegularStudy     = 50
	PriorityPractice         = 45
	PriorityRevisionUpcoming = 40
	PriorityFreeTime         = 10
)

// MaxUnits caps one optimization call. Excess units are dropped lowest
// priority first and the dropped count is reported, never swallowed.
const MaxUnits = 100

// Default estimated durations when the collaborator supplies none.
const (
	defaultRevisionMins = 30
	defaultLabMins      = 120
	defaultGoalMins     = 60
	defaultTaskMins     = 60
)

// creditWeight is the priority bump per subject credit on revisions.
const creditWeight = 5

// Record is a collaborator-side work item that can be normalized.
type Record interface {
	unit(n *Normalizer) model.Unit
}

// Normalizer converts records relative to a planning week. WeekStart is the
// midnight that slot 0 maps to; Now drives overdue/due-today classification.
type Normalizer struct {
	WeekStart time.Time
	Now       time.Time

	nextID int32
}

// New returns a Normalizer for the week starting at weekStart.
func New(weekStart, now time.Time) *Normalizer {
	return &Normalizer{WeekStart: weekStart, Now: now}
}

// Normalize converts the records to units, sorts them by computed priority
// (highest first) and applies the MaxUnits cap. The second return value is
// the number of units dropped by the cap.
func (n *Normalizer) Normalize(records []Record) ([]model.Unit, int) {
	units := make([]model.Unit, 0, len(records))
	for _, r := range records {
		n.nextID++
		u := r.unit(n)
		u.ID = n.nextID
		if u.AssignedSlot == 0 {
			u.AssignedSlot = model.Unassigned
		}
		units = append(units, u)
	}
	sort.SliceStable(units, func(i, j int) bool {
		if units[i].Priority != units[j].Priority {
			return units[i].Priority > units[j].Priority
		}
		return units[i].DeadlineSlot < units[j].DeadlineSlot
	})
	truncated := 0
	if len(units) > MaxUnits {
		truncated = len(units) - MaxUnits
		units = units[:MaxUnits]
	}
	return units, truncated
}

// daysUntil returns whole calendar days between Now and due.
func (n *Normalizer) daysUntil(due time.Time) int {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	return int(day(due).Sub(day(n.Now)).Hours() / 24)
}

// deadlineSlot maps a due time to an absolute slot, clamped to [0, Week].
// Work already overdue keeps a full-week deadline: it is late either way and
// must still land somewhere, carried by its priority instead.
func (n *Normalizer) deadlineSlot(due time.Time) int {
	s := int(due.Sub(n.WeekStart).Minutes()) / slot.Minutes
	if s <= 0 || s > slot.Week {
		return slot.Week
	}
	return s
}

// durationSlots converts minutes to slots, rounding up, at least one slot.
func durationSlots(mins, fallback int) int {
	if mins <= 0 {
		mins = fallback
	}
	d := (mins + slot.Minutes - 1) / slot.Minutes
	if d < 1 {
		d = 1
	}
	return d
}

// urgency escalates a base priority from the days left until the deadline.
func urgency(base, days int) int {
	switch {
	case days < 0:
		return PriorityOverdue
	case days == 0:
		return PriorityDueToday
	case days == 1 && base < PriorityDueTomorrow:
		return PriorityDueTomorrow
	default:
		return base
	}
}
