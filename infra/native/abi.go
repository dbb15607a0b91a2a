// Package native binds the C scheduling engine shared library. The binding
// mirrors the engine's structs field for field; layout parity is asserted by
// offset tests so a drift in either side fails fast instead of corrupting
// memory across the boundary.
package native

import (
	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

const (
	maxTitleLen   = 200
	maxSubjectLen = 20
	maxTasks      = 100
)

// cTask mirrors the engine's TimelineTask. C int is 32 bits on every
// supported target; the explicit padding keeps preferred_slot 4-aligned after
// the byte arrays, matching the C compiler's layout.
type cTask struct {
	ID            int32
	DurationSlots int32
	Priority      int32
	Category      int32
	DeadlineSlot  int32
	IsLocked      bool
	Title         [maxTitleLen]byte
	Subject       [maxSubjectLen]byte
	_             [3]byte
	PreferredSlot int32
	AssignedSlot  int32
}

// cConfig mirrors OptimizationConfig.
type cConfig struct {
	SleepStartSlot    int32
	SleepEndSlot      int32
	ConceptPeakStart  int32
	ConceptPeakEnd    int32
	PracticePeakStart int32
	PracticePeakEnd   int32
	DeepWorkMinSlots  int32
	MicroGapMaxSlots  int32
	EnableHeuristics  bool
	_                 [3]byte
}

// cTimeline mirrors WeeklyTimeline. Tasks points into engine-owned memory and
// is only valid until free_timeline_memory.
type cTimeline struct {
	Slots      [slot.Week]int32
	SlotCount  int32
	_          [4]byte
	Tasks      *cTask
	TaskCount  int32
	Status     int32
	ErrorCode  int32
	GapsFilled int32
	Conflicts  int32
}

// cGap mirrors ScheduleGap.
type cGap struct {
	StartSlot     int32
	EndSlot       int32
	DurationSlots int32
	DayIndex      int32
	GapType       int32
}

func copyCString(dst []byte, s string) {
	n := copy(dst[:len(dst)-1], s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func taskFromUnit(u model.Unit) cTask {
	t := cTask{
		ID:            u.ID,
		DurationSlots: int32(u.DurationSlots),
		Priority:      int32(u.Priority),
		Category:      int32(u.Category),
		DeadlineSlot:  int32(u.DeadlineSlot),
		IsLocked:      u.Locked,
		PreferredSlot: int32(u.PreferredSlot),
		AssignedSlot:  int32(u.AssignedSlot),
	}
	copyCString(t.Title[:], u.Title)
	copyCString(t.Subject[:], u.Subject)
	return t
}

func unitFromTask(t cTask) model.Unit {
	return model.Unit{
		ID:            t.ID,
		DurationSlots: int(t.DurationSlots),
		Priority:      int(t.Priority),
		Category:      model.Category(t.Category),
		DeadlineSlot:  int(t.DeadlineSlot),
		Locked:        t.IsLocked,
		PreferredSlot: int(t.PreferredSlot),
		AssignedSlot:  int(t.AssignedSlot),
		Title:         cString(t.Title[:]),
		Subject:       cString(t.Subject[:]),
	}
}

func configToC(cfg model.Config) cConfig {
	return cConfig{
		SleepStartSlot:    int32(cfg.SleepStartSlot),
		SleepEndSlot:      int32(cfg.SleepEndSlot),
		ConceptPeakStart:  int32(cfg.ConceptPeakStart),
		ConceptPeakEnd:    int32(cfg.ConceptPeakEnd),
		PracticePeakStart: int32(cfg.PracticePeakStart),
		PracticePeakEnd:   int32(cfg.PracticePeakEnd),
		DeepWorkMinSlots:  int32(cfg.DeepWorkMinSlots),
		MicroGapMaxSlots:  int32(cfg.MicroGapMaxSlots),
		EnableHeuristics:  cfg.EnableHeuristics,
	}
}
