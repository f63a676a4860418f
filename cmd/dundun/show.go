package main

import (
	"fmt"

	"github.com/dundun/dundun/internal/cli"
	"github.com/dundun/dundun/internal/model"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <streak>",
	Short: "Show streak details",
	Long: `Show the details of a single streak.

The streak can be given by ID, unique ID prefix, or title.

Examples:
  dundun show Read
  dundun show 4b0c`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completeStreakIDs,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	s, err := sess.resolve(args[0])
	if err != nil {
		return err
	}

	at := now()
	status := model.ComputeStatus(&s, at)

	fmt.Printf("%s\n", s.Title)
	fmt.Printf("  ID:             %s\n", s.ID)
	fmt.Printf("  Status:         %s\n", cli.StatusLabel(status))
	fmt.Printf("  Current streak: %s\n", cli.Days(s.Count))
	fmt.Printf("  Longest streak: %s\n", cli.Days(s.LongestStreak))
	if s.LastCompletedDate != nil {
		fmt.Printf("  Last completed: %s\n", s.LastCompletedDate.In(at.Location()).Format(model.DateFormat))
	} else {
		fmt.Printf("  Last completed: %s\n", cli.Gray("never"))
	}
	if status == model.StatusLapsed && s.Count > 0 {
		fmt.Printf("\n%s\n", cli.Yellow("Missed a day: the next completion starts a new run."))
	}
	return nil
}
