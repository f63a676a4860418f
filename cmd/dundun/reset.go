package main

import (
	"fmt"

	"github.com/dundun/dundun/internal/cli"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <streak>",
	Short: "Reset a streak to zero",
	Long: `Reset a streak's current run to 0 days without deleting it.

If the current run is also the longest streak, the longest streak is
reset too. A longer run from the past is kept.

Asks for confirmation unless --yes is given or confirm is false in
.dundunconfig.yaml.

Examples:
  dundun reset Read
  dundun reset 4b0c --yes`,
	Args:              cobra.ExactArgs(1),
	RunE:              runReset,
	ValidArgsFunction: completeStreakIDs,
}

var resetYes bool

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}

// prompter asks for confirmation. Tests replace it.
var prompter = cli.StdPrompter

func runReset(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	s, err := sess.resolve(args[0])
	if err != nil {
		return err
	}

	if sess.config.Confirm && !resetYes {
		ok, err := prompter().Confirm(fmt.Sprintf("Reset %s to zero?", displayStreak(s)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	sess.store.Reset(s.ID)
	updated, _ := sess.store.Get(s.ID)
	fmt.Printf("%s reset. Longest streak: %s\n", updated.Title, cli.Days(updated.LongestStreak))
	sess.warnUnsaved()
	return nil
}
