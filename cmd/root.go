// Package cmd implements the csos command line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Absolute-Martial/CSOS/config"
	"github.com/Absolute-Martial/CSOS/core/engine"
	"github.com/Absolute-Martial/CSOS/core/logger"
	"github.com/Absolute-Martial/CSOS/core/model"
	infralogger "github.com/Absolute-Martial/CSOS/infra/logger"
	_ "github.com/Absolute-Martial/CSOS/infra/native"
)

var (
	cfgPath   string
	inputPath string
)

var rootCmd = &cobra.Command{
	Use:   "csos",
	Short: "Weekly study timeline optimizer",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-", "work units JSON file, - for stdin")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// buildEngine loads the configuration and constructs the engine with the
// configured backend order.
func buildEngine(component string) (*engine.Engine, logger.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	optCfg, err := cfg.Schedule.Optimization()
	if err != nil {
		return nil, nil, err
	}
	infralogger.Configure(cfg.Logging.Level, cfg.Logging.Console)
	logg := infralogger.New(component)
	eng, err := engine.New(engine.Options{
		Config:   optCfg,
		Backends: cfg.Engine.Backends(),
		Logger:   logg,
	})
	if err != nil {
		return nil, nil, err
	}
	return eng, logg, nil
}

// readUnits decodes the work units from the input flag.
func readUnits() ([]model.Unit, error) {
	var r io.Reader = os.Stdin
	if inputPath != "" && inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var units []model.Unit
	if err := json.NewDecoder(r).Decode(&units); err != nil {
		return nil, fmt.Errorf("decode units: %w", err)
	}
	return units, nil
}

// writeJSON prints v as indented JSON on stdout.
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
