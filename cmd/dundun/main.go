// Package main is the entry point for the dundun CLI.
package main

import (
	"fmt"
	"os"

	"github.com/dundun/dundun/internal/cli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dundun",
	Short: "dundun - keep your daily streaks going",
	Long: `dundun tracks habits as streaks: mark a streak done once a day and it
counts how many days in a row you've kept it up, along with your longest run.

Miss a day and the next completion starts a new run at 1. The longest
streak is kept unless you undo or reset the run that set it.

Data lives in .dundun/ under --dir, $DUNDUN_DIR, or your home directory.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env in the working directory may set DUNDUN_DIR. Variables
		// already in the environment win.
		_ = godotenv.Load()
	},
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	flagDir     string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "directory containing .dundun/ (default $DUNDUN_DIR or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log storage problems to stderr")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("dundun version {{.Version}}\n")
}
