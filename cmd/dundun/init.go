package main

import (
	"fmt"

	"github.com/dundun/dundun/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dundun storage",
	Long: `Create a .dundun/ directory to hold your streaks.

By default streaks are kept in a JSON file (.dundun/blobs/streaks.json).
Use --backend=sqlite to keep them in a SQLite database instead.

The directory is created under --dir, $DUNDUN_DIR, or your home directory.
Fails if .dundun/ already exists there.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initBackend string

func init() {
	initCmd.Flags().StringVar(&initBackend, "backend", "file", "where to keep streaks: file or sqlite")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := rootDir()
	if err != nil {
		return err
	}

	backend, err := storage.ParseBackend(initBackend)
	if err != nil {
		return err
	}

	s, err := storage.Init(dir, backend)
	if err != nil {
		return err
	}

	fmt.Printf("Initialized dundun in %s\n", s.DataPath())
	fmt.Printf("Backend: %s\n", s.Backend())
	return nil
}
