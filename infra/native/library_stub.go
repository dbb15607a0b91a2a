//go:build !linux && !darwin

package native

import (
	"fmt"
	"runtime"

	"github.com/Absolute-Martial/CSOS/core/optimize"
)

// Library is unsupported on this platform; Load always reports unavailable
// and the engine runs on the pure Go optimizer.
type Library struct{}

func Load(path string) (*Library, error) {
	return nil, fmt.Errorf("%w: no native binding on %s", optimize.ErrUnavailable, runtime.GOOS)
}

func (l *Library) Version() string { return "" }

func (l *Library) Close() error { return nil }

func (l *Library) runOptimize(tasks *cTask, count int32, cfg *cConfig) *cTimeline { return nil }

func (l *Library) release(t *cTimeline) {}

func (l *Library) runValidate(t *cTimeline) int32 { return 0 }

func (l *Library) runFindGaps(t *cTimeline, out []cGap) int32 { return 0 }
