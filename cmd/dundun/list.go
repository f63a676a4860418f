package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dundun/dundun/internal/cli"
	"github.com/dundun/dundun/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List streaks",
	Long: `List streaks in the order they were added.

Each row shows the streak's status, title, current streak and longest streak.

Statuses:
  done     completed today
  due      completed yesterday; complete today to keep it going
  lapsed   missed a day; the next completion starts over at 1
  new      never completed, or reset

Filter flags:
  --todo   Show only streaks not yet completed today
  --done   Show only streaks completed today`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listTodo bool
	listDone bool
	listIDs  bool
)

func init() {
	listCmd.Flags().BoolVar(&listTodo, "todo", false, "show only streaks not completed today")
	listCmd.Flags().BoolVar(&listDone, "done", false, "show only streaks completed today")
	listCmd.Flags().BoolVar(&listIDs, "ids", false, "always show short IDs")
	listCmd.MarkFlagsMutuallyExclusive("todo", "done")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	streaks := filterStreaks(sess.store.Streaks(), now(), listTodo, listDone)
	if len(streaks) == 0 {
		if len(sess.store.Streaks()) == 0 {
			fmt.Println("No streaks yet. Add one with 'dundun add <title>'.")
		} else {
			fmt.Println("No matching streaks.")
		}
		return nil
	}

	renderStreaks(os.Stdout, streaks, now(), sess.config.ShowIDs || listIDs)
	return nil
}

// filterStreaks keeps streaks by completed-today state. With neither flag
// set, everything is kept.
func filterStreaks(streaks []model.Streak, at time.Time, todo, done bool) []model.Streak {
	if !todo && !done {
		return streaks
	}
	var out []model.Streak
	for i := range streaks {
		isDone := model.ComputeStatus(&streaks[i], at) == model.StatusDone
		if (done && isDone) || (todo && !isDone) {
			out = append(out, streaks[i])
		}
	}
	return out
}

// renderStreaks writes the streak table used by list and watch.
func renderStreaks(w io.Writer, streaks []model.Streak, at time.Time, showIDs bool) {
	table := cli.NewTable()
	table.SetMaxWidth(titleColumn(showIDs), cli.DefaultMaxTitleWidth)
	table.SetAlignRight(titleColumn(showIDs) + 1)
	table.SetAlignRight(titleColumn(showIDs) + 2)

	header := []string{"STATUS", "TITLE", "CURRENT", "LONGEST"}
	if showIDs {
		header = append([]string{"ID"}, header...)
	}
	table.AddRow(header...)

	for i := range streaks {
		s := &streaks[i]
		row := []string{
			cli.StatusLabel(model.ComputeStatus(s, at)),
			s.Title,
			strconv.Itoa(s.Count),
			strconv.Itoa(s.LongestStreak),
		}
		if showIDs {
			row = append([]string{cli.Gray(model.ShortID(s.ID))}, row...)
		}
		table.AddRow(row...)
	}

	table.Render(w)
}

func titleColumn(showIDs bool) int {
	if showIDs {
		return 2
	}
	return 1
}
