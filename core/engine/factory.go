package engine

import (
	"github.com/Absolute-Martial/CSOS/core/factory"
	"github.com/Absolute-Martial/CSOS/core/optimize"
)

var optimizerRegistry = factory.NewRegistry[optimize.Optimizer]()

// RegisterOptimizer adds an optimizer backend factory identified by name.
func RegisterOptimizer(name string, f factory.Factory[optimize.Optimizer]) error {
	return optimizerRegistry.Register(name, f)
}

// NewBackend creates an optimizer backend from its configuration.
func NewBackend(cfg factory.ModuleConfig) (optimize.Optimizer, error) {
	return optimizerRegistry.Create(cfg)
}

// init registers the built-in pure Go backend. The native backend registers
// itself from infra/native.
func init() {
	_ = RegisterOptimizer("greedy", func(map[string]any) (optimize.Optimizer, error) {
		return optimize.NewGreedy(), nil
	})
}
