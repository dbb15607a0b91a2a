package optimize

import (
	"context"
	"sort"
	"time"

	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

// Greedy is the interpreted packing strategy: deterministic priority-ordered
// placement with category-window preference. It terminates in at most
// units x slots steps and needs no timeout.
type Greedy struct{}

// NewGreedy returns the pure Go optimizer.
func NewGreedy() *Greedy {
	return &Greedy{}
}

func (*Greedy) Name() string { return "greedy" }

// Optimize implements the shared packing semantics: block sleep, force-place
// locked units, then place flexible units by priority desc / deadline asc /
// input order.
func (g *Greedy) Optimize(_ context.Context, units []model.Unit, cfg model.Config) (model.Result, error) {
	started := time.Now()
	if err := cfg.Validate(); err != nil {
		return model.Result{}, err
	}
	out := make([]model.Unit, len(units))
	copy(out, units)
	for i := range out {
		if err := out[i].Validate(); err != nil {
			return model.Result{}, err
		}
		out[i].AssignedSlot = model.Unassigned
	}

	grid := model.NewGrid()
	grid.BlockSleep(cfg)

	conflicts := g.placeLocked(grid, out)

	// Flexible units in deterministic order. Stable sort preserves input
	// order as the final tie-break.
	order := make([]int, 0, len(out))
	for i, u := range out {
		if !u.Locked {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		ua, ub := out[order[a]], out[order[b]]
		if ua.Priority != ub.Priority {
			return ua.Priority > ub.Priority
		}
		return ua.DeadlineSlot < ub.DeadlineSlot
	})

	placed := 0
	for _, idx := range order {
		u := &out[idx]
		s := findSlot(grid, *u, cfg)
		if s < 0 {
			conflicts++
			continue
		}
		grid.Place(u.ID, s, u.DurationSlots)
		u.AssignedSlot = s
		placed++
	}

	status := model.StatusOK
	for _, u := range out {
		if !u.Assigned() {
			status = model.StatusUnsolvable
			break
		}
	}
	return model.Result{
		Grid:       grid,
		Units:      out,
		Status:     status,
		GapsFilled: placed,
		Conflicts:  conflicts,
		Elapsed:    time.Since(started),
	}, nil
}

// placeLocked pins locked units at their preferred slots before any flexible
// placement. Fixed events win: a locked unit overwrites prior occupants, and
// every distinct displaced unit counts one conflict and loses its assignment.
func (g *Greedy) placeLocked(grid *model.Grid, units []model.Unit) int {
	conflicts := 0
	displaced := make(map[int32]bool)
	for i := range units {
		u := &units[i]
		if !u.Locked {
			continue
		}
		if u.PreferredSlot < 0 || u.PreferredSlot+u.DurationSlots > slot.Week {
			conflicts++
			continue
		}
		for s := u.PreferredSlot; s < u.PreferredSlot+u.DurationSlots; s++ {
			owner := grid.Owners[s]
			if owner >= 0 && owner != u.ID && !displaced[owner] {
				displaced[owner] = true
				conflicts++
				clearAssignment(units, owner)
			}
		}
		grid.Place(u.ID, u.PreferredSlot, u.DurationSlots)
		u.AssignedSlot = u.PreferredSlot
	}
	return conflicts
}

func clearAssignment(units []model.Unit, id int32) {
	for i := range units {
		if units[i].ID == id {
			units[i].AssignedSlot = model.Unassigned
			return
		}
	}
}

// findSlot searches for a start slot for a flexible unit. The unit's own
// preferred slot wins when it fits. With heuristics enabled all feasible
// slots are scored and the best one wins (lowest slot on ties); otherwise
// the category window is scanned day by day, then the whole grid first-fit.
func findSlot(grid *model.Grid, u model.Unit, cfg model.Config) int {
	deadline := u.DeadlineSlot
	if deadline > slot.Week {
		deadline = slot.Week
	}
	limit := deadline - u.DurationSlots
	if limit < 0 {
		return -1
	}

	if u.PreferredSlot >= 0 && u.PreferredSlot <= limit && grid.Free(u.PreferredSlot, u.DurationSlots) {
		return u.PreferredSlot
	}

	if cfg.EnableHeuristics {
		best, bestScore := -1, 0
		for s := 0; s <= limit; s++ {
			if !grid.Free(s, u.DurationSlots) {
				continue
			}
			score := placementScore(s, u, cfg, deadline)
			if best < 0 || score > bestScore {
				best, bestScore = s, score
			}
		}
		return best
	}

	if wStart, wEnd, ok := u.Category.Window(cfg); ok {
		for day := 0; day < slot.Days; day++ {
			for ds := wStart; ds < wEnd && ds < slot.PerDay; ds++ {
				s := day*slot.PerDay + ds
				if s <= limit && grid.Free(s, u.DurationSlots) {
					return s
				}
			}
		}
	}
	for s := 0; s <= limit; s++ {
		if grid.Free(s, u.DurationSlots) {
			return s
		}
	}
	return -1
}

// placementScore rates a candidate start slot: a bonus inside the category's
// own energy peak, a penalty in the opposite peak, and a growing bonus for
// deadline buffer so work lands early.
func placementScore(s int, u model.Unit, cfg model.Config, deadline int) int {
	score := 0
	inConcept := slot.InRange(s, cfg.ConceptPeakStart, cfg.ConceptPeakEnd)
	inPractice := slot.InRange(s, cfg.PracticePeakStart, cfg.PracticePeakEnd)
	switch u.Category {
	case model.CategoryConceptStudy:
		if inConcept {
			score += 20
		}
		if inPractice {
			score -= 10
		}
	case model.CategoryPracticeStudy:
		if inPractice {
			score += 20
		}
		if inConcept {
			score -= 10
		}
	}
	score += (deadline - s) / slot.PerDay * 2
	return score
}
