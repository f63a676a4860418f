package main

import (
	"fmt"

	"github.com/dundun/dundun/internal/cli"
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo <streak>...",
	Short: "Take back today's completion",
	Long: `Undo today's completion of one or more streaks.

Only a completion made today can be undone. If today's completion set
(or tied) the longest streak, the longest streak goes back down with it.

Examples:
  dundun undo Read
  dundun undo 4b0c 9e1f`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runUndo,
	ValidArgsFunction: completeStreakIDs,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var errors []string
	succeeded := 0

	for _, arg := range args {
		s, err := sess.resolve(arg)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", arg, err))
			continue
		}

		if !sess.store.IsCompletedToday(s.ID) {
			errors = append(errors, fmt.Sprintf("%s: not completed today", arg))
			continue
		}
		succeeded++

		sess.store.Undo(s.ID)
		updated, _ := sess.store.Get(s.ID)
		fmt.Printf("%s undone. Current streak: %s, longest: %s\n",
			updated.Title, cli.Days(updated.Count), cli.Days(updated.LongestStreak))
	}

	sess.warnUnsaved()
	return reportBatchErrors(errors, succeeded, "undo")
}
