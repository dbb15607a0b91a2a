package model

import "time"

// Status is the outcome of an optimization call. Values match the native
// engine's status codes.
type Status int32

const (
	StatusOK         Status = 0
	StatusUnsolvable Status = -1
	StatusTimeout    Status = -2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnsolvable:
		return "unsolvable"
	case StatusTimeout:
		return "timeout"
	}
	return "unknown"
}

// Result is the outcome of one optimization call. The grid and units are
// owned by the caller; the optimizer keeps no reference after returning.
type Result struct {
	Grid       *Grid
	Units      []Unit
	Status     Status
	GapsFilled int
	Conflicts  int
	Truncated  int
	Elapsed    time.Duration
}

// FullyScheduled reports whether every unit found a slot. Both optimizer
// implementations must agree on this predicate for identical input.
func (r Result) FullyScheduled() bool {
	return r.Status == StatusOK && r.Conflicts == 0
}
