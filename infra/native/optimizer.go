package native

import (
	"context"
	"time"
	"unsafe"

	"github.com/Absolute-Martial/CSOS/core/logger"
	"github.com/Absolute-Martial/CSOS/core/model"
	"github.com/Absolute-Martial/CSOS/core/optimize"
	"github.com/Absolute-Martial/CSOS/core/slot"
)

// DefaultTimeout bounds a native call when neither the context nor the
// constructor supplies a deadline.
const DefaultTimeout = 5 * time.Second

// Optimizer runs the packing inside the native shared library. It satisfies
// optimize.Optimizer; a load failure is surfaced at construction so the
// engine can pick the pure Go fallback instead.
type Optimizer struct {
	lib     *Library
	log     logger.Logger
	timeout time.Duration
}

// NewOptimizer wraps a loaded library. A non-positive timeout selects
// DefaultTimeout.
func NewOptimizer(lib *Library, log logger.Logger, timeout time.Duration) *Optimizer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Optimizer{lib: lib, log: log, timeout: timeout}
}

func (*Optimizer) Name() string { return "native" }

// Optimize marshals the units across the boundary, runs the engine and copies
// the result out. The engine call cannot be cancelled midway; on timeout the
// call keeps running detached and releases its own result when it completes,
// while the caller gets StatusTimeout immediately.
func (o *Optimizer) Optimize(ctx context.Context, units []model.Unit, cfg model.Config) (model.Result, error) {
	started := time.Now()
	if err := cfg.Validate(); err != nil {
		return model.Result{}, err
	}
	if len(units) > maxTasks {
		units = units[:maxTasks]
	}
	tasks := make([]cTask, len(units))
	for i, u := range units {
		if err := u.Validate(); err != nil {
			return model.Result{}, err
		}
		tasks[i] = taskFromUnit(u)
	}
	ccfg := configToC(cfg)

	var taskPtr *cTask
	if len(tasks) > 0 {
		taskPtr = &tasks[0]
	}

	done := make(chan *cTimeline, 1)
	go func() {
		done <- o.lib.runOptimize(taskPtr, int32(len(tasks)), &ccfg)
	}()

	timer := time.NewTimer(o.timeout)
	defer timer.Stop()

	var timeline *cTimeline
	select {
	case timeline = <-done:
	case <-ctx.Done():
		o.abandon(done)
		return model.Result{}, ctx.Err()
	case <-timer.C:
		o.abandon(done)
		o.log.Warnf("native optimize exceeded %s, reporting timeout", o.timeout)
		return model.Result{
			Grid:    model.NewGrid(),
			Units:   units,
			Status:  model.StatusTimeout,
			Elapsed: time.Since(started),
		}, nil
	}

	if timeline == nil {
		return model.Result{}, optimize.ErrNativeCall
	}
	defer o.lib.release(timeline)
	if n := o.lib.runValidate(timeline); n > 0 {
		o.log.Warnf("native engine reported %d constraint violations", n)
	}
	return resultFromTimeline(timeline, time.Since(started)), nil
}

// abandon lets a still-running engine call clean up after itself.
func (o *Optimizer) abandon(done chan *cTimeline) {
	go func() {
		o.lib.release(<-done)
	}()
}

// resultFromTimeline deep-copies the engine's result into Go-owned memory.
// Nothing may retain a pointer into the timeline past release.
func resultFromTimeline(t *cTimeline, elapsed time.Duration) model.Result {
	grid := model.NewGrid()
	copy(grid.Owners[:], t.Slots[:])

	var units []model.Unit
	if t.Tasks != nil && t.TaskCount > 0 {
		tasks := unsafe.Slice(t.Tasks, int(t.TaskCount))
		units = make([]model.Unit, len(tasks))
		for i, ct := range tasks {
			units[i] = unitFromTask(ct)
		}
	}
	return model.Result{
		Grid:       grid,
		Units:      units,
		Status:     model.Status(t.Status),
		GapsFilled: int(t.GapsFilled),
		Conflicts:  int(t.Conflicts),
		Elapsed:    elapsed,
	}
}

// FindGaps asks the engine for the free runs of an optimized timeline. It
// re-runs the optimization to obtain an engine-side timeline to scan.
func (o *Optimizer) FindGaps(ctx context.Context, units []model.Unit, cfg model.Config) ([]model.Gap, error) {
	if len(units) > maxTasks {
		units = units[:maxTasks]
	}
	tasks := make([]cTask, len(units))
	for i, u := range units {
		tasks[i] = taskFromUnit(u)
	}
	ccfg := configToC(cfg)
	var taskPtr *cTask
	if len(tasks) > 0 {
		taskPtr = &tasks[0]
	}
	timeline := o.lib.runOptimize(taskPtr, int32(len(tasks)), &ccfg)
	if timeline == nil {
		return nil, optimize.ErrNativeCall
	}
	defer o.lib.release(timeline)

	buf := make([]cGap, slot.Week/2+1)
	n := o.lib.runFindGaps(timeline, buf)
	if n < 0 {
		return nil, optimize.ErrNativeCall
	}
	gaps := make([]model.Gap, 0, n)
	for _, g := range buf[:n] {
		kind := model.GapKind(g.GapType)
		end := int(g.EndSlot)
		endClock := "24:00"
		if ds := end % slot.PerDay; ds != 0 {
			endClock = slot.Clock(ds)
		}
		gaps = append(gaps, model.Gap{
			StartSlot:     int(g.StartSlot),
			EndSlot:       end,
			DurationSlots: int(g.DurationSlots),
			Day:           int(g.DayIndex),
			Kind:          kind,
			KindName:      kind.String(),
			StartClock:    slot.Clock(slot.DaySlot(int(g.StartSlot))),
			EndClock:      endClock,
		})
	}
	return gaps, nil
}
