package model

// GapKind classifies a free run by its length.
type GapKind int32

const (
	GapMicro GapKind = iota
	GapStandard
	GapDeepWork
)

func (k GapKind) String() string {
	switch k {
	case GapMicro:
		return "micro"
	case GapStandard:
		return "standard"
	case GapDeepWork:
		return "deep_work"
	}
	return "unknown"
}

// Gap is a maximal run of empty slots, derived from a grid and never stored.
// StartClock/EndClock are day-local "HH:MM" stamps for display.
type Gap struct {
	StartSlot     int     `json:"start_slot"`
	EndSlot       int     `json:"end_slot"`
	DurationSlots int     `json:"duration_slots"`
	Day           int     `json:"day_index"`
	Kind          GapKind `json:"-"`
	KindName      string  `json:"kind"`
	StartClock    string  `json:"start_time"`
	EndClock      string  `json:"end_time"`
}

// Minutes returns the gap length in minutes.
func (g Gap) Minutes() int {
	return g.DurationSlots * 30
}
