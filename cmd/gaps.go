package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Absolute-Martial/CSOS/core/model"
)

var gapsMinSlots int

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Optimize and report the free gaps of the week",
	RunE:  runGaps,
}

func init() {
	gapsCmd.Flags().IntVar(&gapsMinSlots, "min-slots", 1, "minimum gap length in slots")
	rootCmd.AddCommand(gapsCmd)
}

type gapsOut struct {
	Status string      `json:"status"`
	Gaps   []model.Gap `json:"gaps"`
	Count  int         `json:"count"`
}

func runGaps(cmd *cobra.Command, args []string) error {
	eng, logg, err := buildEngine("gaps-command")
	if err != nil {
		return err
	}
	units, err := readUnits()
	if err != nil {
		return err
	}
	found, res, err := eng.FindGaps(cmd.Context(), units, gapsMinSlots)
	if err != nil {
		return err
	}
	logg.Infof("found %d gaps of at least %d slots", len(found), gapsMinSlots)
	return writeJSON(gapsOut{Status: res.Status.String(), Gaps: found, Count: len(found)})
}
