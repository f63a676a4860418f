package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dundun/dundun/internal/ops"
	"github.com/dundun/dundun/internal/storage"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the stored streak data",
	Long: `Print the persisted streak collection exactly as stored.

The output is the JSON array dundun reads on startup. Use --pretty to
indent it. Prints [] if nothing has been saved yet.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

var dumpPretty bool

func init() {
	dumpCmd.Flags().BoolVar(&dumpPretty, "pretty", false, "indent the JSON")
	rootCmd.AddCommand(dumpCmd)
}

// readStreaksBlob returns the raw persisted collection, or nil if nothing
// has been saved yet.
func readStreaksBlob() ([]byte, error) {
	s, err := openStorage()
	if err != nil {
		return nil, err
	}
	blobs, err := s.OpenBlobs()
	if err != nil {
		return nil, err
	}
	defer blobs.Close()

	data, err := blobs.ReadBlob(ops.DefaultKey)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := readStreaksBlob()
	if err != nil {
		return err
	}
	if data == nil {
		data = []byte("[]")
	}

	if dumpPretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("stored data is not valid JSON: %w", err)
		}
		data = buf.Bytes()
	}

	os.Stdout.Write(bytes.TrimRight(data, "\n"))
	fmt.Println()
	return nil
}
