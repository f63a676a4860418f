package main

import (
	"fmt"
	"strings"

	"github.com/dundun/dundun/internal/cli"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <streak> [new title...]",
	Short: "Change a streak's title",
	Long: `Change the title of a streak. Counts and history are kept.

Use -i to edit the title in $EDITOR (or $VISUAL) instead of passing it
on the command line.

Examples:
  dundun rename Read "Read 20 pages"
  dundun rename 4b0c Morning run
  dundun rename -i Read`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runRename,
	ValidArgsFunction: completeStreakIDs,
}

var renameInteractive bool

func init() {
	renameCmd.Flags().BoolVarP(&renameInteractive, "interactive", "i", false, "edit the title in $EDITOR")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	if renameInteractive && len(args) > 1 {
		return &cli.ValidationError{Message: "give either a new title or -i, not both"}
	}
	if !renameInteractive && len(args) < 2 {
		return &cli.ValidationError{Message: "new title required (or use -i to edit in $EDITOR)"}
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	s, err := sess.resolve(args[0])
	if err != nil {
		return err
	}

	var title string
	if renameInteractive {
		title, err = cli.EditTitle(s.Title)
		if err != nil {
			return err
		}
	} else {
		title = strings.TrimSpace(strings.Join(args[1:], " "))
	}
	if err := validateTitle(title); err != nil {
		return err
	}

	if title == s.Title {
		fmt.Println("Title unchanged.")
		return nil
	}

	sess.store.Rename(s.ID, title)
	fmt.Printf("Renamed %q to %q.\n", s.Title, title)
	sess.warnUnsaved()
	return nil
}
