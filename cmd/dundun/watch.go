package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dundun/dundun/internal/cli"
	"github.com/dundun/dundun/internal/model"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show streaks and keep the view up to date",
	Long: `Show the streak list and redraw it whenever it changes.

The view is refreshed when another dundun command changes your streaks,
and at midnight when "done" streaks become "due" again.

How often to check is set by refresh_interval in .dundunconfig.yaml
(default 1s). Press Ctrl-C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchView redraws the streak list only when what it would show changes.
type watchView struct {
	out     io.Writer
	showIDs bool
	clear   bool
	day     func() time.Time // footer date; defaults to today
	last    string
}

// draw renders streaks and writes them if the result differs from the
// last frame, or unconditionally when force is set.
func (v *watchView) draw(streaks []model.Streak, force bool) bool {
	var buf bytes.Buffer
	at := now()
	if len(streaks) == 0 {
		fmt.Fprintln(&buf, "No streaks yet. Add one with 'dundun add <title>'.")
	} else {
		renderStreaks(&buf, streaks, at, v.showIDs)
	}
	day := at
	if v.day != nil {
		day = v.day()
	}
	fmt.Fprintf(&buf, "\n%s\n", cli.Gray(day.Format(model.DateFormat)+"  (Ctrl-C to quit)"))

	frame := buf.String()
	if frame == v.last && !force {
		return false
	}
	v.last = frame

	if v.clear {
		fmt.Fprint(v.out, "\033[H\033[2J")
	}
	fmt.Fprint(v.out, frame)
	return true
}

func runWatch(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := cli.NewDayWatcher(func() time.Time { return now() })
	view := &watchView{
		out:     os.Stdout,
		showIDs: sess.config.ShowIDs,
		clear:   cli.IsTerminal(os.Stdout),
		day:     watcher.Day,
	}

	cancel := sess.store.Subscribe(func(streaks []model.Streak) {
		view.draw(streaks, false)
	})
	defer cancel()

	view.draw(sess.store.Streaks(), true)

	watcher.Poll(ctx, sess.config.RefreshInterval, func(rolled bool) {
		// Pick up changes made by other dundun commands.
		sess.store.Load()
		if rolled {
			view.draw(sess.store.Streaks(), true)
		}
	})

	fmt.Println()
	return nil
}
