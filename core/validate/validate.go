// Package validate checks a completed timeline against the engine's hard
// invariants. The checks are advisory: they report violations and never
// mutate the grid.
package validate

import (
	"fmt"

	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

// Kind names an invariant violation.
type Kind string

const (
	KindOverlap     Kind = "overlap"
	KindDeadline    Kind = "deadline_violation"
	KindOutOfBounds Kind = "out_of_bounds"
)

// Violation is one broken invariant on one unit.
type Violation struct {
	Kind   Kind  `json:"type"`
	UnitID int32 `json:"unit_id"`
	Slot   int   `json:"slot,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Check verifies every placed unit against the grid: each slot of its range
// must carry its id and stay in bounds, and the range must end before the
// unit's deadline. An empty result means the timeline is valid.
func Check(grid *model.Grid, units []model.Unit) []Violation {
	var out []Violation
	for _, u := range units {
		if !u.Assigned() {
			continue
		}
		for i := 0; i < u.DurationSlots; i++ {
			s := u.AssignedSlot + i
			if s < 0 || s >= slot.Week {
				out = append(out, Violation{Kind: KindOutOfBounds, UnitID: u.ID, Slot: s})
				continue
			}
			if grid.Owners[s] != u.ID {
				out = append(out, Violation{
					Kind:   KindOverlap,
					UnitID: u.ID,
					Slot:   s,
					Detail: fmt.Sprintf("slot owned by %d", grid.Owners[s]),
				})
			}
		}
		deadline := u.DeadlineSlot
		if deadline > slot.Week {
			deadline = slot.Week
		}
		if u.AssignedSlot+u.DurationSlots > deadline {
			out = append(out, Violation{
				Kind:   KindDeadline,
				UnitID: u.ID,
				Detail: fmt.Sprintf("ends at %d, deadline %d", u.AssignedSlot+u.DurationSlots, deadline),
			})
		}
	}
	return out
}
