// Package optimize contains the timeline packing strategies. Both the pure Go
// greedy engine and the native library binding implement Optimizer; callers
// select one at construction time and are otherwise agnostic to the backend.
package optimize

import (
	"context"
	"errors"

	"github.com/Absolute-Martial/CSOS/core/model"
)

// ErrUnavailable reports that a backend cannot serve calls, typically because
// the native library was not found or failed to load.
var ErrUnavailable = errors.New("optimize: backend unavailable")

// ErrNativeCall reports an unexpected failure inside the native library,
// distinct from an unsolvable or timed-out schedule.
var ErrNativeCall = errors.New("optimize: native call failed")

// Optimizer packs units into a weekly grid.
//
// Implementations must be side-effect free with respect to shared state:
// every call builds its own grid, copies the unit slice and never mutates the
// input, so concurrent calls need no coordination.
type Optimizer interface {
	// Optimize places the units under the given config. Scheduling failures
	// (unsolvable, timeout) are reported through Result.Status, not the
	// error; the error is reserved for invalid input and backend faults.
	Optimize(ctx context.Context, units []model.Unit, cfg model.Config) (model.Result, error)
	// Name identifies the backend in logs and metrics.
	Name() string
}
