package model

import (
	"errors"
	"testing"

	"github.com/Absolute-Martial/CSOS/core/slot"
)

func TestUnitValidate(t *testing.T) {
	good := Unit{ID: 1, DurationSlots: 2, DeadlineSlot: slot.Week, PreferredSlot: Unassigned, Category: CategoryConceptStudy}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid unit rejected: %v", err)
	}
	cases := []Unit{
		{ID: 2, DurationSlots: 0, DeadlineSlot: 48, PreferredSlot: Unassigned},
		{ID: 3, DurationSlots: 2, DeadlineSlot: -1, PreferredSlot: Unassigned},
		{ID: 4, DurationSlots: 2, DeadlineSlot: slot.Week + 1, PreferredSlot: Unassigned},
		{ID: 5, DurationSlots: 2, DeadlineSlot: 48, PreferredSlot: slot.Week},
		{ID: 6, DurationSlots: 2, DeadlineSlot: 48, PreferredSlot: Unassigned, Category: Category(10)},
	}
	for _, u := range cases {
		if err := u.Validate(); !errors.Is(err, slot.ErrInvalidInput) {
			t.Fatalf("unit %d: expected ErrInvalidInput, got %v", u.ID, err)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	bad := DefaultConfig()
	bad.SleepStartSlot = 49
	if err := bad.Validate(); !errors.Is(err, slot.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	bad = DefaultConfig()
	bad.DeepWorkMinSlots = 0
	if err := bad.Validate(); !errors.Is(err, slot.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCategoryWindow(t *testing.T) {
	cfg := DefaultConfig()
	start, end, ok := CategoryConceptStudy.Window(cfg)
	if !ok || start != 16 || end != 24 {
		t.Fatalf("concept window = %d..%d ok=%v", start, end, ok)
	}
	start, end, ok = CategoryPracticeStudy.Window(cfg)
	if !ok || start != 32 || end != 40 {
		t.Fatalf("practice window = %d..%d ok=%v", start, end, ok)
	}
	for _, c := range []Category{CategoryFixedClass, CategoryRevision, CategoryMeal, CategorySleep} {
		if _, _, ok := c.Window(cfg); ok {
			t.Fatalf("category %s should carry no window", c)
		}
	}
}

func TestBlockSleepWraps(t *testing.T) {
	g := NewGrid()
	g.BlockSleep(DefaultConfig())

	// Day 0: the wrapped window blocks 23:00-24:00 and, spilling from the
	// previous night, 00:00-06:00 on every day including day 0 (from day 6).
	for s := 46; s < 48; s++ {
		if g.Owners[s] != Blocked {
			t.Fatalf("slot %d should be blocked", s)
		}
	}
	for s := 0; s < 12; s++ {
		if g.Owners[s] != Blocked {
			t.Fatalf("slot %d should be blocked (spill from day 6)", s)
		}
	}
	// Midday slots stay free.
	for s := 12; s < 46; s++ {
		if g.Owners[s] != Empty {
			t.Fatalf("slot %d should be empty", s)
		}
	}
}

func TestGridFreeBounds(t *testing.T) {
	g := NewGrid()
	if g.Free(slot.Week-1, 2) {
		t.Fatal("range overflowing the week must not be free")
	}
	if g.Free(-1, 1) {
		t.Fatal("negative start must not be free")
	}
	if !g.Free(0, slot.Week) {
		t.Fatal("whole empty week should be free")
	}
	g.Place(7, 10, 2)
	if g.Free(9, 2) {
		t.Fatal("occupied range reported free")
	}
	if got := g.DayOwners(0)[10]; got != 7 {
		t.Fatalf("DayOwners(0)[10] = %d, want 7", got)
	}
}

func TestStatusString(t *testing.T) {
	if StatusOK.String() != "ok" || StatusUnsolvable.String() != "unsolvable" || StatusTimeout.String() != "timeout" {
		t.Fatal("status strings wrong")
	}
}
