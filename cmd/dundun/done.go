package main

import (
	"fmt"

	"github.com/dundun/dundun/internal/cli"
	"github.com/dundun/dundun/internal/model"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <streak>...",
	Short: "Mark streak(s) done for today",
	Long: `Mark one or more streaks as completed today.

Completing a streak the day after its last completion extends it by one.
After a missed day, it starts over at 1. Completing twice in one day
has no effect.

Streaks can be given by ID, unique ID prefix, or title.

Examples:
  dundun done Read
  dundun done 4b0c 9e1f
  dundun done Read Run Stretch`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runDone,
	ValidArgsFunction: completeStreakIDs,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
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
		succeeded++

		if sess.store.IsCompletedToday(s.ID) {
			fmt.Printf("%s already done today (%s).\n", s.Title, cli.Days(s.Count))
			continue
		}

		previousLongest := s.LongestStreak
		sess.store.Complete(s.ID)
		updated, _ := sess.store.Get(s.ID)

		msg := fmt.Sprintf("%s done. Current streak: %s", updated.Title, cli.Days(updated.Count))
		if updated.LongestStreak > previousLongest && updated.LongestStreak > 1 {
			msg += " " + cli.Green("(new record!)")
		}
		fmt.Println(msg)
	}

	sess.warnUnsaved()
	return reportBatchErrors(errors, succeeded, "complete")
}

// reportBatchErrors prints per-argument errors and fails only when no
// argument succeeded.
func reportBatchErrors(errors []string, succeeded int, verb string) error {
	if len(errors) == 0 {
		return nil
	}
	if succeeded > 0 {
		fmt.Println()
	}
	for _, e := range errors {
		fmt.Printf("error: %s\n", e)
	}
	if succeeded == 0 {
		return fmt.Errorf("failed to %s any streaks", verb)
	}
	return nil
}

// displayStreak is the short form used in confirmation prompts.
func displayStreak(s model.Streak) string {
	return cli.DisplayName(s)
}
