package config

import (
	"fmt"

	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

// ScheduleConfig is the human-facing routine description in wall-clock
// times. Optimization converts it to the slot-based engine config.
type ScheduleConfig struct {
	// SleepStart/SleepEnd may wrap past midnight.
	SleepStart string `json:"sleep_start"`
	SleepEnd   string `json:"sleep_end"`
	// Peak windows for conceptual and practice work.
	ConceptPeakStart  string `json:"concept_peak_start"`
	ConceptPeakEnd    string `json:"concept_peak_end"`
	PracticePeakStart string `json:"practice_peak_start"`
	PracticePeakEnd   string `json:"practice_peak_end"`
	// DeepWorkMinMins is the minimum length of a deep-work session.
	DeepWorkMinMins int `json:"deep_work_min_mins"`
	// MicroGapMaxMins is the largest gap still considered micro.
	MicroGapMaxMins int `json:"micro_gap_max_mins"`
	// EnableHeuristics toggles energy-peak aware placement. Nil means on.
	EnableHeuristics *bool `json:"enable_heuristics"`
}

// SetDefaults applies the stock routine.
func (c *ScheduleConfig) SetDefaults() {
	if c.SleepStart == "" {
		c.SleepStart = "23:00"
	}
	if c.SleepEnd == "" {
		c.SleepEnd = "06:00"
	}
	if c.ConceptPeakStart == "" {
		c.ConceptPeakStart = "08:00"
	}
	if c.ConceptPeakEnd == "" {
		c.ConceptPeakEnd = "12:00"
	}
	if c.PracticePeakStart == "" {
		c.PracticePeakStart = "16:00"
	}
	if c.PracticePeakEnd == "" {
		c.PracticePeakEnd = "20:00"
	}
	if c.DeepWorkMinMins == 0 {
		c.DeepWorkMinMins = 90
	}
	if c.MicroGapMaxMins == 0 {
		c.MicroGapMaxMins = 30
	}
}

// Validate checks every clock field parses.
func (c ScheduleConfig) Validate() error {
	for _, f := range []struct {
		name, val string
	}{
		{"sleep_start", c.SleepStart},
		{"sleep_end", c.SleepEnd},
		{"concept_peak_start", c.ConceptPeakStart},
		{"concept_peak_end", c.ConceptPeakEnd},
		{"practice_peak_start", c.PracticePeakStart},
		{"practice_peak_end", c.PracticePeakEnd},
	} {
		if _, err := slot.ParseClock(f.val); err != nil {
			return fmt.Errorf("schedule.%s: %w", f.name, err)
		}
	}
	return nil
}

// Optimization converts the clock-string routine to engine slots.
func (c ScheduleConfig) Optimization() (model.Config, error) {
	if err := c.Validate(); err != nil {
		return model.Config{}, err
	}
	parse := func(s string) int {
		v, _ := slot.ParseClock(s)
		return v
	}
	heuristics := true
	if c.EnableHeuristics != nil {
		heuristics = *c.EnableHeuristics
	}
	cfg := model.Config{
		SleepStartSlot:    parse(c.SleepStart),
		SleepEndSlot:      parse(c.SleepEnd),
		ConceptPeakStart:  parse(c.ConceptPeakStart),
		ConceptPeakEnd:    parse(c.ConceptPeakEnd),
		PracticePeakStart: parse(c.PracticePeakStart),
		PracticePeakEnd:   parse(c.PracticePeakEnd),
		DeepWorkMinSlots:  (c.DeepWorkMinMins + slot.Minutes - 1) / slot.Minutes,
		MicroGapMaxSlots:  (c.MicroGapMaxMins + slot.Minutes - 1) / slot.Minutes,
		EnableHeuristics:  heuristics,
	}
	return cfg, cfg.Validate()
}
