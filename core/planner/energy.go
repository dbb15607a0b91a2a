package planner

import (
	"gonum.org/v1/gonum/interp"

	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

// Anchor points of the daily energy curve (hour of day, level 1-10). Values
// between anchors are interpolated; outside them the boundary level holds.
var (
	energyHours  = []float64{6, 8, 10, 12, 14, 16, 18, 20, 22}
	energyLevels = []float64{5, 8, 9, 7, 5, 7, 6, 5, 3}
)

// lowEnergyMax is the highest energy level still considered restful.
const lowEnergyMax = 5

// EnergyCurve interpolates the user's energy level over the day.
type EnergyCurve struct {
	pl interp.PiecewiseLinear
}

// NewEnergyCurve fits the default curve.
func NewEnergyCurve() (*EnergyCurve, error) {
	var c EnergyCurve
	if err := c.pl.Fit(energyHours, energyLevels); err != nil {
		return nil, err
	}
	return &c, nil
}

// At returns the energy level at the given hour, clamped to the fitted range.
func (c *EnergyCurve) At(hour int) float64 {
	h := float64(hour)
	if h < energyHours[0] {
		h = energyHours[0]
	}
	if h > energyHours[len(energyHours)-1] {
		h = energyHours[len(energyHours)-1]
	}
	return c.pl.Predict(h)
}

// AllocateFreeTime places rest blocks into a day's gaps, preferring low-energy
// periods so high-energy time stays open for study. Blocks are capped at one
// hour each.
func AllocateFreeTime(grid *model.Grid, cfg model.Config, day, minsDesired int) []Block {
	curve, err := NewEnergyCurve()
	if err != nil {
		return nil
	}
	cands := collect(grid, cfg, day, day+1)
	var out []Block
	remaining := minsDesired
	for _, c := range cands {
		if remaining <= 0 {
			break
		}
		hour, _, err := slot.ToTime(slot.DaySlot(c.gap.StartSlot))
		if err != nil {
			continue
		}
		if curve.At(hour) > lowEnergyMax {
			continue
		}
		blockMins := c.gap.Minutes()
		if blockMins > remaining {
			blockMins = remaining
		}
		if blockMins > freeTimeCapMins {
			blockMins = freeTimeCapMins
		}
		out = append(out, Block{
			Day:          c.day,
			StartSlot:    c.gap.StartSlot,
			StartClock:   c.gap.StartClock,
			DurationMins: blockMins,
			Title:        "Free Time / Relaxation",
		})
		remaining -= blockMins
	}
	return out
}
