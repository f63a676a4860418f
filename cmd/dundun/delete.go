package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <streak>",
	Aliases: []string{"rm"},
	Short:   "Delete a streak permanently",
	Long: `Delete a streak and its history. This cannot be undone.

Asks for confirmation unless --yes is given or confirm is false in
.dundunconfig.yaml.

Examples:
  dundun delete Read
  dundun rm 4b0c -y`,
	Args:              cobra.ExactArgs(1),
	RunE:              runDelete,
	ValidArgsFunction: completeStreakIDs,
}

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	s, err := sess.resolve(args[0])
	if err != nil {
		return err
	}

	if sess.config.Confirm && !deleteYes {
		ok, err := prompter().Confirm(fmt.Sprintf("Delete %s? This cannot be undone.", displayStreak(s)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	sess.store.Delete(s.ID)
	fmt.Printf("%s deleted.\n", s.Title)
	sess.warnUnsaved()
	return nil
}
