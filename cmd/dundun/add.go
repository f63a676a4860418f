package main

import (
	"fmt"
	"strings"

	"github.com/dundun/dundun/internal/cli"
	"github.com/dundun/dundun/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Start tracking a new streak",
	Long: `Add a new streak with the given title.

Multiple words are joined with spaces, so quoting is optional.
New streaks start at 0 days.

Examples:
  dundun add Read
  dundun add "Stretch before bed"
  dundun add Practice guitar`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// validateTitle checks that a streak title is not empty or whitespace-only.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &cli.ValidationError{Field: "title", Message: "must not be empty"}
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if err := validateTitle(title); err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	streak := sess.store.Add(title)
	fmt.Printf("Added %s: %s\n", model.ShortID(streak.ID), streak.Title)
	sess.warnUnsaved()
	return nil
}
