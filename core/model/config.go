package model

import (
	"fmt"

	"github.com/Absolute-Martial/CSOS/core/slot"
)

// Config holds the routine constraints and heuristic parameters for one
// optimization call. It is read-only for the duration of the call, so
// concurrent optimizations may share a single value.
type Config struct {
	SleepStartSlot    int  `json:"sleep_start_slot"`
	SleepEndSlot      int  `json:"sleep_end_slot"`
	ConceptPeakStart  int  `json:"concept_peak_start"`
	ConceptPeakEnd    int  `json:"concept_peak_end"`
	PracticePeakStart int  `json:"practice_peak_start"`
	PracticePeakEnd   int  `json:"practice_peak_end"`
	DeepWorkMinSlots  int  `json:"deep_work_min_slots"`
	MicroGapMaxSlots  int  `json:"micro_gap_max_slots"`
	EnableHeuristics  bool `json:"enable_heuristics"`
}

// DefaultConfig returns the stock routine: sleep 23:00-06:00, concept peak
// 08:00-12:00, practice peak 16:00-20:00, 90-minute deep-work minimum.
func DefaultConfig() Config {
	return Config{
		SleepStartSlot:    46,
		SleepEndSlot:      12,
		ConceptPeakStart:  16,
		ConceptPeakEnd:    24,
		PracticePeakStart: 32,
		PracticePeakEnd:   40,
		DeepWorkMinSlots:  3,
		MicroGapMaxSlots:  1,
		EnableHeuristics:  true,
	}
}

// Validate checks that every window endpoint is a day-local slot. Wrapped
// windows (start > end) are legal; they denote overnight ranges.
func (c Config) Validate() error {
	for _, v := range []struct {
		name string
		val  int
	}{
		{"sleep_start_slot", c.SleepStartSlot},
		{"sleep_end_slot", c.SleepEndSlot},
		{"concept_peak_start", c.ConceptPeakStart},
		{"concept_peak_end", c.ConceptPeakEnd},
		{"practice_peak_start", c.PracticePeakStart},
		{"practice_peak_end", c.PracticePeakEnd},
	} {
		if v.val < 0 || v.val > slot.PerDay {
			return fmt.Errorf("%w: %s = %d", slot.ErrInvalidInput, v.name, v.val)
		}
	}
	if c.DeepWorkMinSlots <= 0 {
		return fmt.Errorf("%w: deep_work_min_slots = %d", slot.ErrInvalidInput, c.DeepWorkMinSlots)
	}
	if c.MicroGapMaxSlots <= 0 {
		return fmt.Errorf("%w: micro_gap_max_slots = %d", slot.ErrInvalidInput, c.MicroGapMaxSlots)
	}
	return nil
}
