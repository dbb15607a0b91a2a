package config

import (
	"github.com/Absolute-Martial/CSOS/core/factory"
)

// EngineConfig selects and tunes the optimizer backends.
type EngineConfig struct {
	// PreferNative tries the shared library before the pure Go optimizer.
	PreferNative bool `json:"prefer_native"`
	// LibraryPath overrides the default library search locations.
	LibraryPath string `json:"library_path"`
	// TimeoutMs bounds one native call; 0 selects the built-in default.
	TimeoutMs int `json:"timeout_ms"`
}

// SetDefaults applies sane defaults.
func (c *EngineConfig) SetDefaults() {
	if !c.PreferNative && c.LibraryPath != "" {
		// An explicit library path implies the native backend is wanted.
		c.PreferNative = true
	}
}

// Backends returns the backend list in trial order for engine construction.
func (c EngineConfig) Backends() []factory.ModuleConfig {
	var out []factory.ModuleConfig
	if c.PreferNative {
		out = append(out, factory.ModuleConfig{
			Type: "native",
			Conf: map[string]any{
				"library_path": c.LibraryPath,
				"timeout_ms":   c.TimeoutMs,
			},
		})
	}
	out = append(out, factory.ModuleConfig{Type: "greedy"})
	return out
}
