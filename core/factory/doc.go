// Package factory provides a small generic registry used to instantiate
// pluggable modules from configuration. Modules are defined by a type string
// and a map of raw settings. Factories decode the settings into typed structs
// and return the concrete implementation.
//
// The engine uses it to select its optimizer backend:
//
//	reg := factory.NewRegistry[optimize.Optimizer]()
//	reg.Register("native", func(conf map[string]any) (optimize.Optimizer, error) {
//	    var c struct{ Path string `json:"library_path"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return loadNative(c.Path)
//	})
//	opt, err := reg.Create(factory.ModuleConfig{Type: "native"})
package factory
