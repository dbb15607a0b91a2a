//go:build linux || darwin

package native

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/Absolute-Martial/CSOS/core/optimize"
)

// Library is a loaded scheduling engine shared object.
type Library struct {
	path   string
	handle uintptr

	optimizeTimeline func(tasks uintptr, count int32, cfg uintptr) uintptr
	freeTimeline     func(timeline uintptr)
	validate         func(timeline uintptr) int32
	findGaps         func(timeline, gaps uintptr, max int32) int32
	version          func() string
}

// candidatePaths lists where the library is looked for when no explicit path
// is given: next to the binary, then the build tree, then the loader's own
// search path.
func candidatePaths(name string) []string {
	paths := []string{name}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), name))
	}
	paths = append(paths, filepath.Join("native", name))
	return paths
}

// Load opens the engine library. An empty path probes the default locations
// for libcsos_engine.so. A missing or unloadable library is reported as
// optimize.ErrUnavailable so callers can fall back.
func Load(path string) (*Library, error) {
	paths := []string{path}
	if path == "" {
		paths = candidatePaths("libcsos_engine.so")
	}
	var lastErr error
	for _, p := range paths {
		handle, err := purego.Dlopen(p, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		lib := &Library{path: p, handle: handle}
		purego.RegisterLibFunc(&lib.optimizeTimeline, handle, "optimize_timeline")
		purego.RegisterLibFunc(&lib.freeTimeline, handle, "free_timeline_memory")
		purego.RegisterLibFunc(&lib.validate, handle, "validate_constraints")
		purego.RegisterLibFunc(&lib.findGaps, handle, "find_gaps")
		purego.RegisterLibFunc(&lib.version, handle, "get_engine_version")
		return lib, nil
	}
	return nil, fmt.Errorf("%w: %v", optimize.ErrUnavailable, lastErr)
}

// Version reports the engine's version string.
func (l *Library) Version() string {
	return l.version()
}

// runOptimize invokes optimize_timeline. The returned pointer is owned by the
// engine and must be passed to release exactly once; nil reports a call fault.
func (l *Library) runOptimize(tasks *cTask, count int32, cfg *cConfig) *cTimeline {
	r := l.optimizeTimeline(uintptr(unsafe.Pointer(tasks)), count, uintptr(unsafe.Pointer(cfg)))
	runtime.KeepAlive(tasks)
	runtime.KeepAlive(cfg)
	return (*cTimeline)(unsafe.Pointer(r)) //nolint:govet // C-owned memory
}

func (l *Library) release(t *cTimeline) {
	if t != nil {
		l.freeTimeline(uintptr(unsafe.Pointer(t)))
	}
}

func (l *Library) runValidate(t *cTimeline) int32 {
	r := l.validate(uintptr(unsafe.Pointer(t)))
	runtime.KeepAlive(t)
	return r
}

func (l *Library) runFindGaps(t *cTimeline, out []cGap) int32 {
	if len(out) == 0 {
		return 0
	}
	r := l.findGaps(uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(&out[0])), int32(len(out)))
	runtime.KeepAlive(t)
	runtime.KeepAlive(out)
	return r
}

// Close unloads the shared object. The library must not be used afterwards.
func (l *Library) Close() error {
	return purego.Dlclose(l.handle)
}
