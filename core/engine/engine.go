// Package engine is the facade over the scheduling pipeline: it owns the
// optimizer backends, applies the input cap, records metrics and exposes the
// gap, validation and planning queries. Construction is explicit; there is no
// package-level engine instance.
package engine

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Absolute-Martial/CSOS/core/factory"
	"github.com/Absolute-Martial/CSOS/core/gaps"
	"github.com/Absolute-Martial/CSOS/core/logger"
	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/normalize"
	"github.com/Absolute-Martial/CSOS/core/optimize"
	"github.com/Absolute-Martial/CSOS/core/planner"
	"github.com/Absolute-Martial/CSOS/core/slot"
	"github.com/Absolute-Martial/CSOS/core/validate"
)

// Engine runs optimizations on a primary backend and falls back to the pure
// Go optimizer when the primary fails at call time.
type Engine struct {
	cfg      model.Config
	primary  optimize.Optimizer
	fallback optimize.Optimizer
	log      logger.Logger
}

// Options configures engine construction.
type Options struct {
	// Config is the routine configuration shared by all calls. The zero
	// value selects model.DefaultConfig.
	Config model.Config
	// Backends are tried in order; the first one that constructs becomes
	// the primary. Empty means greedy only.
	Backends []factory.ModuleConfig
	Logger   logger.Logger
}

// New builds an engine. An unavailable backend is never fatal: construction
// logs the failure and continues down the list, ending at the greedy
// optimizer.
func New(opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg == (model.Config{}) {
		cfg = model.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}

	e := &Engine{cfg: cfg, fallback: optimize.NewGreedy(), log: log}
	for _, bc := range opts.Backends {
		opt, err := NewBackend(bc)
		if err != nil {
			log.Warnf("optimizer backend %q unavailable: %v", bc.Type, err)
			continue
		}
		e.primary = opt
		break
	}
	if e.primary == nil {
		e.primary = e.fallback
	}
	log.Infof("engine ready, backend %s", e.primary.Name())
	return e, nil
}

// Config returns the engine's routine configuration.
func (e *Engine) Config() model.Config {
	return e.cfg
}

// Backend returns the name of the active primary optimizer.
func (e *Engine) Backend() string {
	return e.primary.Name()
}

// Optimize packs the units into a week. Input beyond the per-call cap is
// dropped lowest priority first and reported via Result.Truncated. A primary
// backend fault falls back to the greedy optimizer transparently; invalid
// input does not, since both backends would reject it the same way.
func (e *Engine) Optimize(ctx context.Context, units []model.Unit) (model.Result, error) {
	units, truncated := capUnits(units)
	res, err := e.run(ctx, e.primary, units)
	if err != nil && e.primary != e.fallback && !errors.Is(err, slot.ErrInvalidInput) {
		e.log.Warnf("%s optimizer failed: %v, falling back to %s",
			e.primary.Name(), err, e.fallback.Name())
		fallbackTotal.Inc()
		res, err = e.run(ctx, e.fallback, units)
	}
	if err != nil {
		return model.Result{}, err
	}
	res.Truncated += truncated
	return res, nil
}

func (e *Engine) run(ctx context.Context, opt optimize.Optimizer, units []model.Unit) (model.Result, error) {
	started := time.Now()
	res, err := opt.Optimize(ctx, units, e.cfg)
	if err != nil {
		return res, err
	}
	optimizeLatency.WithLabelValues(opt.Name()).Observe(time.Since(started).Seconds())
	optimizeOutcomes.WithLabelValues(opt.Name(), res.Status.String()).Inc()
	conflictsTotal.Add(float64(res.Conflicts))
	return res, nil
}

// capUnits enforces the per-call input cap, keeping the highest priorities.
func capUnits(units []model.Unit) ([]model.Unit, int) {
	if len(units) <= normalize.MaxUnits {
		return units, 0
	}
	sorted := make([]model.Unit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted[:normalize.MaxUnits], len(units) - normalize.MaxUnits
}

// FindGaps optimizes the units and returns the free runs of at least
// minDuration slots alongside the timeline they were derived from.
func (e *Engine) FindGaps(ctx context.Context, units []model.Unit, minDuration int) ([]model.Gap, model.Result, error) {
	res, err := e.Optimize(ctx, units)
	if err != nil {
		return nil, model.Result{}, err
	}
	return gaps.Analyze(res.Grid, minDuration), res, nil
}

// Validate checks a result against the hard scheduling invariants.
func (e *Engine) Validate(res model.Result) []validate.Violation {
	return validate.Check(res.Grid, res.Units)
}

// Plan optimizes the committed units, then distributes preparation for the
// event over the remaining gaps, deep-work slots first.
func (e *Engine) Plan(ctx context.Context, units []model.Unit, fromDay int, ev planner.Event) (planner.Plan, error) {
	res, err := e.Optimize(ctx, units)
	if err != nil {
		return planner.Plan{}, err
	}
	return planner.Redistribute(res.Grid, e.cfg, fromDay, ev), nil
}

// PlanBackward optimizes the committed units, then builds a deadline-weighted
// backward plan over the remaining gaps.
func (e *Engine) PlanBackward(ctx context.Context, units []model.Unit, fromDay int, ev planner.Event) (planner.Plan, error) {
	res, err := e.Optimize(ctx, units)
	if err != nil {
		return planner.Plan{}, err
	}
	return planner.PlanBackward(res.Grid, e.cfg, fromDay, ev), nil
}

// NormalizeAndOptimize converts collaborator records for the week starting at
// weekStart and optimizes them in one step.
func (e *Engine) NormalizeAndOptimize(ctx context.Context, records []normalize.Record, weekStart, now time.Time) (model.Result, error) {
	units, dropped := normalize.New(weekStart, now).Normalize(records)
	res, err := e.Optimize(ctx, units)
	if err != nil {
		return model.Result{}, err
	}
	res.Truncated += dropped
	return res, nil
}
