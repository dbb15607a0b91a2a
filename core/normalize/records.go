package normalize

import (
	"time"

	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

// TaskKind selects the base priority and category for a TaskRecord.
type TaskKind string

const (
	TaskStudy    TaskKind = "study"
	TaskPractice TaskKind = "practice"
	TaskExamPrep TaskKind = "exam_prep"
	TaskTestPrep TaskKind = "test_prep"
	TaskFreeTime TaskKind = "free_time"
)

// TaskRecord is a generic scheduled task from the task store.
type TaskRecord struct {
	Title        string
	Subject      string
	Kind         TaskKind
	Priority     int // caller's 1-10 weighting, added to the base
	Due          time.Time
	DurationMins int
}

func (r TaskRecord) unit(n *Normalizer) model.Unit {
	base := PriorityRegularStudy
	category := model.CategoryConceptStudy
	switch r.Kind {
	case TaskPractice:
		base = PriorityPractice
		category = model.CategoryPracticeStudy
	case TaskExamPrep:
		base = PriorityExamPrep
	case TaskTestPrep:
		base = PriorityTestPrep
	case TaskFreeTime:
		base = PriorityFreeTime
		category = model.CategoryBreak
	}
	return model.Unit{
		DurationSlots: durationSlots(r.DurationMins, defaultTaskMins),
		Priority:      urgency(base, n.daysUntil(r.Due)) + r.Priority,
		Category:      category,
		DeadlineSlot:  n.deadlineSlot(r.Due),
		PreferredSlot: model.Unassigned,
		Title:         r.Title,
		Subject:       r.Subject,
	}
}

// RevisionRecord is a spaced-repetition review of a chapter. The subject's
// credit count weights the priority.
type RevisionRecord struct {
	Chapter      string
	Subject      string
	Credits      int
	Due          time.Time
	DurationMins int
}

func (r RevisionRecord) unit(n *Normalizer) model.Unit {
	base := PriorityRevisionUpcoming
	if n.daysUntil(r.Due) <= 1 {
		base = PriorityRevisionDue
	}
	return model.Unit{
		DurationSlots: durationSlots(r.DurationMins, defaultRevisionMins),
		Priority:      base + r.Credits*creditWeight,
		Category:      model.CategoryRevision,
		DeadlineSlot:  n.deadlineSlot(r.Due),
		PreferredSlot: model.Unassigned,
		Title:         r.Chapter,
		Subject:       r.Subject,
	}
}

// LabReportRecord is a pending lab write-up.
type LabReportRecord struct {
	Experiment   string
	Subject      string
	Due          time.Time
	DurationMins int
}

func (r LabReportRecord) unit(n *Normalizer) model.Unit {
	days := n.daysUntil(r.Due)
	base := PriorityLabWork
	switch {
	case days < 0:
		base = PriorityOverdue
	case days == 0:
		base = PriorityDueToday
	case days <= 2:
		base = PriorityUrgentLab
	}
	return model.Unit{
		DurationSlots: durationSlots(r.DurationMins, defaultLabMins),
		Priority:      base,
		Category:      model.CategoryLabWork,
		DeadlineSlot:  n.deadlineSlot(r.Due),
		PreferredSlot: model.Unassigned,
		Title:         r.Experiment,
		Subject:       r.Subject,
	}
}

// GoalRecord is a study goal with a deadline.
type GoalRecord struct {
	Title        string
	Subject      string
	Due          time.Time
	DurationMins int
}

func (r GoalRecord) unit(n *Normalizer) model.Unit {
	base := PriorityAssignment
	if n.daysUntil(r.Due) <= 1 {
		base = PriorityDueToday
	}
	return model.Unit{
		DurationSlots: durationSlots(r.DurationMins, defaultGoalMins),
		Priority:      base,
		Category:      model.CategoryAssignment,
		DeadlineSlot:  n.deadlineSlot(r.Due),
		PreferredSlot: model.Unassigned,
		Title:         r.Title,
		Subject:       r.Subject,
	}
}

// FixedClassRecord is a timetable entry. It becomes a locked unit pinned to
// its slot; the optimizer never moves it.
type FixedClassRecord struct {
	Subject    string
	Room       string
	Day        int
	StartClock string
	EndClock   string
}

func (r FixedClassRecord) unit(n *Normalizer) model.Unit {
	start, serr := slot.ParseClock(r.StartClock)
	end, eerr := slot.ParseClock(r.EndClock)
	preferred := model.Unassigned
	duration := 1
	if serr == nil && eerr == nil && end > start {
		if abs, err := slot.Absolute(r.Day, start); err == nil {
			preferred = abs
			duration = end - start
		}
	}
	return model.Unit{
		DurationSlots: duration,
		Priority:      PriorityOverdue, // fixed events always outrank flexible work
		Category:      model.CategoryFixedClass,
		DeadlineSlot:  slot.Week,
		Locked:        true,
		PreferredSlot: preferred,
		Title:         r.Subject + " (" + r.Room + ")",
		Subject:       r.Subject,
	}
}
