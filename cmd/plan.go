package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Absolute-Martial/CSOS/core/planner"
)

var (
	planKind     string
	planSubject  string
	planTitle    string
	planDay      int
	planHours    float64
	planBackward bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Allocate preparation blocks for an upcoming deadline",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planKind, "kind", "test", "event kind: test, quiz, assignment, lab_report, project, exam")
	planCmd.Flags().StringVar(&planSubject, "subject", "", "subject code")
	planCmd.Flags().StringVar(&planTitle, "title", "", "event title")
	planCmd.Flags().IntVar(&planDay, "day", 6, "day index of the event (0-6)")
	planCmd.Flags().Float64Var(&planHours, "hours", 0, "preparation hours, 0 for the kind's default")
	planCmd.Flags().BoolVar(&planBackward, "backward", false, "weight blocks toward the deadline")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	eng, logg, err := buildEngine("plan-command")
	if err != nil {
		return err
	}
	units, err := readUnits()
	if err != nil {
		return err
	}
	ev := planner.Event{
		Kind:    planner.EventKind(planKind),
		Subject: planSubject,
		Title:   planTitle,
		Day:     planDay,
		Hours:   planHours,
	}
	var plan planner.Plan
	if planBackward {
		plan, err = eng.PlanBackward(cmd.Context(), units, 0, ev)
	} else {
		plan, err = eng.Plan(cmd.Context(), units, 0, ev)
	}
	if err != nil {
		return err
	}
	logg.Infof("planned %d blocks, %d of %d minutes allocated",
		len(plan.Blocks), plan.AllocatedMins, plan.RequestedMins)
	return writeJSON(plan)
}
