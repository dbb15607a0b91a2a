package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Absolute-Martial/CSOS/core/model"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Pack work units into an optimized weekly timeline",
	RunE:  runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

// timelineOut is the CLI's JSON view of an optimization result.
type timelineOut struct {
	Status      string       `json:"status"`
	StatusCode  int32        `json:"status_code"`
	Backend     string       `json:"backend"`
	Slots       []int32      `json:"slots"`
	Units       []model.Unit `json:"units"`
	GapsFilled  int          `json:"gaps_filled"`
	Conflicts   int          `json:"conflicts"`
	Truncated   int          `json:"truncated"`
	ExecutionMs float64      `json:"execution_time_ms"`
}

func timelineView(res model.Result, backend string) timelineOut {
	return timelineOut{
		Status:      res.Status.String(),
		StatusCode:  int32(res.Status),
		Backend:     backend,
		Slots:       res.Grid.Owners[:],
		Units:       res.Units,
		GapsFilled:  res.GapsFilled,
		Conflicts:   res.Conflicts,
		Truncated:   res.Truncated,
		ExecutionMs: float64(res.Elapsed.Microseconds()) / 1000,
	}
}

func runOptimize(cmd *cobra.Command, args []string) error {
	eng, logg, err := buildEngine("optimize-command")
	if err != nil {
		return err
	}
	units, err := readUnits()
	if err != nil {
		return err
	}
	res, err := eng.Optimize(cmd.Context(), units)
	if err != nil {
		return err
	}
	logg.Infof("optimized %d units on %s: %s, %d conflicts",
		len(res.Units), eng.Backend(), res.Status, res.Conflicts)
	return writeJSON(timelineView(res, eng.Backend()))
}
