package model

import (
	"fmt"

	"github.com/Absolute-Martial/CSOS/core/slot"
)

// Unassigned marks a unit that has no slot, either because optimization has
// not run yet or because no feasible placement existed.
const Unassigned = -1

// Unit is one schedulable piece of work. Units are built fresh for every
// optimization call and never persisted by the engine.
type Unit struct {
	ID            int32    `json:"id"`
	DurationSlots int      `json:"duration_slots"`
	Priority      int      `json:"priority"`
	Category      Category `json:"category"`
	DeadlineSlot  int      `json:"deadline_slot"`
	Locked        bool     `json:"is_locked"`
	PreferredSlot int      `json:"preferred_slot"`
	AssignedSlot  int      `json:"assigned_slot"`
	Title         string   `json:"title"`
	Subject       string   `json:"subject"`
}

// Validate checks the structural invariants of a unit before optimization.
func (u Unit) Validate() error {
	if u.DurationSlots <= 0 {
		return fmt.Errorf("%w: unit %d duration %d", slot.ErrInvalidInput, u.ID, u.DurationSlots)
	}
	if u.DeadlineSlot < 0 || u.DeadlineSlot > slot.Week {
		return fmt.Errorf("%w: unit %d deadline %d", slot.ErrInvalidInput, u.ID, u.DeadlineSlot)
	}
	if u.PreferredSlot != Unassigned && !slot.Valid(u.PreferredSlot) {
		return fmt.Errorf("%w: unit %d preferred slot %d", slot.ErrInvalidInput, u.ID, u.PreferredSlot)
	}
	if !u.Category.Valid() {
		return fmt.Errorf("%w: unit %d category %d", slot.ErrInvalidInput, u.ID, u.Category)
	}
	return nil
}

// Assigned reports whether the unit was placed.
func (u Unit) Assigned() bool {
	return u.AssignedSlot != Unassigned
}
