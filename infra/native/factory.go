package native

import (
	"time"

	"github.com/Absolute-Martial/CSOS/core/engine"
	"github.com/Absolute-Martial/CSOS/core/factory"
	"github.com/Absolute-Martial/CSOS/core/logger"
	"github.com/Absolute-Martial/CSOS/core/optimize"
)

// init registers the native backend. Creation fails with ErrUnavailable when
// the shared library cannot be loaded, which the engine treats as a signal to
// fall back.
func init() {
	_ = engine.RegisterOptimizer("native", func(conf map[string]any) (optimize.Optimizer, error) {
		var c struct {
			LibraryPath string `json:"library_path"`
			TimeoutMs   int    `json:"timeout_ms"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		lib, err := Load(c.LibraryPath)
		if err != nil {
			return nil, err
		}
		return NewOptimizer(lib, logger.Nop{}, time.Duration(c.TimeoutMs)*time.Millisecond), nil
	})
}
