package gaps

import (
	"context"
	"testing"

	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/optimize"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

func TestClassification(t *testing.T) {
	cases := []struct {
		duration int
		want     model.GapKind
	}{
		{1, model.GapMicro},
		{2, model.GapStandard},
		{4, model.GapStandard},
		{5, model.GapDeepWork},
		{12, model.GapDeepWork},
	}
	for _, c := range cases {
		if got := classify(c.duration); got != c.want {
			t.Fatalf("classify(%d) = %s, want %s", c.duration, got, c.want)
		}
	}
}

func TestAnalyzeFindsMaximalRuns(t *testing.T) {
	g := model.NewGrid()
	g.BlockSleep(model.DefaultConfig())
	g.Place(1, 16, 4) // 08:00-10:00 on day 0

	found := Analyze(g, 1)
	if len(found) == 0 {
		t.Fatal("no gaps found")
	}
	// Day 0 splits into [12,16) and [20,46).
	first := found[0]
	if first.StartSlot != 12 || first.EndSlot != 16 {
		t.Fatalf("first gap = [%d,%d)", first.StartSlot, first.EndSlot)
	}
	if first.Kind != model.GapStandard || first.StartClock != "06:00" || first.EndClock != "08:00" {
		t.Fatalf("first gap stamps: %+v", first)
	}
	second := found[1]
	if second.StartSlot != 20 || second.EndSlot != 46 {
		t.Fatalf("second gap = [%d,%d)", second.StartSlot, second.EndSlot)
	}
	if second.Kind != model.GapDeepWork {
		t.Fatalf("second gap kind = %s", second.Kind)
	}
}

func TestMinDurationFilter(t *testing.T) {
	g := model.NewGrid()
	g.BlockSleep(model.DefaultConfig())
	g.Place(1, 16, 4)

	for _, gp := range Analyze(g, 5) {
		if gp.DurationSlots < 5 {
			t.Fatalf("gap of %d slots passed the filter", gp.DurationSlots)
		}
	}
}

// Empty slots reported by the analyzer are exactly the complement of placed
// ranges and blocked slots.
func TestComplementarity(t *testing.T) {
	units := []model.Unit{
		{ID: 1, DurationSlots: 4, Priority: 9, Category: model.CategoryConceptStudy,
			DeadlineSlot: 48, PreferredSlot: model.Unassigned, AssignedSlot: model.Unassigned},
		{ID: 2, DurationSlots: 6, Priority: 7, Category: model.CategoryPracticeStudy,
			DeadlineSlot: slot.Week, PreferredSlot: model.Unassigned, AssignedSlot: model.Unassigned},
	}
	res, err := optimize.NewGreedy().Optimize(context.Background(), units, model.DefaultConfig())
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}

	inGap := make([]bool, slot.Week)
	for _, gp := range Analyze(res.Grid, 1) {
		for s := gp.StartSlot; s < gp.EndSlot; s++ {
			inGap[s] = true
		}
	}
	for s := 0; s < slot.Week; s++ {
		empty := res.Grid.Owners[s] == model.Empty
		if empty != inGap[s] {
			t.Fatalf("slot %d: empty=%v inGap=%v", s, empty, inGap[s])
		}
	}
}

// A fully blocked day yields no deep-work gaps.
func TestBlockedDayHasNoDeepWork(t *testing.T) {
	g := model.NewGrid()
	for s := 0; s < slot.PerDay; s++ {
		g.Owners[s] = model.Blocked
	}
	sum := AnalyzeDay(g, 0, model.DefaultConfig())
	if sum.DeepWorkGaps != 0 || sum.DeepWorkMinutes != 0 {
		t.Fatalf("blocked day reports deep work: %+v", sum)
	}
	if sum.FreeMinutes != 0 || len(sum.Gaps) != 0 {
		t.Fatalf("blocked day reports free time: %+v", sum)
	}
}

func TestAnalyzeDaySummary(t *testing.T) {
	cfg := model.DefaultConfig()
	g := model.NewGrid()
	g.BlockSleep(cfg)
	g.Place(1, 16, 4)

	sum := AnalyzeDay(g, 0, cfg)
	// Free runs on day 0: [12,16) and [20,46).
	if len(sum.Gaps) != 2 {
		t.Fatalf("gaps = %d, want 2", len(sum.Gaps))
	}
	if sum.FreeMinutes != (4+26)*30 {
		t.Fatalf("free minutes = %d", sum.FreeMinutes)
	}
	// Both runs meet the 3-slot deep-work minimum.
	if sum.DeepWorkGaps != 2 || sum.DeepWorkMinutes != sum.FreeMinutes {
		t.Fatalf("deep work summary wrong: %+v", sum)
	}
	if out := AnalyzeDay(g, 9, cfg); len(out.Gaps) != 0 {
		t.Fatal("invalid day index must yield an empty summary")
	}
}

// A run ending at the day boundary is stamped 24:00.
func TestEndOfDayClock(t *testing.T) {
	g := model.NewGrid()
	for s := 0; s < slot.Week; s++ {
		if s >= slot.PerDay {
			g.Owners[s] = model.Blocked
		}
	}
	g.Place(1, 0, 40)
	found := Analyze(g, 1)
	if len(found) != 1 {
		t.Fatalf("gaps = %d, want 1", len(found))
	}
	if found[0].EndClock != "24:00" {
		t.Fatalf("end clock = %q", found[0].EndClock)
	}
}
