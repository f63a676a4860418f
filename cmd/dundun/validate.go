package main

import (
	"errors"
	"fmt"

	"github.com/dundun/dundun/internal/cli"
	"github.com/dundun/dundun/internal/model"
	"github.com/dundun/dundun/internal/ops"
	"github.com/dundun/dundun/internal/storage"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check data integrity",
	Long: `Check the stored streaks for integrity issues.

Checks for:
- Stored data that cannot be read, including records with a missing
  id, title, count or longestStreak (dundun would start with no streaks)
- Duplicate IDs
- Negative counts
- A longest streak shorter than the current one
- Completion dates that are not the start of a day

Use --fix to repair what can be repaired and save the result.
Exits non-zero if any issue remains.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var validateFix bool

func init() {
	validateCmd.Flags().BoolVar(&validateFix, "fix", false, "auto-repair fixable issues")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := openStorage()
	if err != nil {
		return err
	}
	blobs, err := s.OpenBlobs()
	if err != nil {
		return err
	}
	defer blobs.Close()

	data, err := blobs.ReadBlob(ops.DefaultKey)
	if errors.Is(err, storage.ErrBlobNotFound) {
		fmt.Println(cli.Green("No issues found.") + " (nothing saved yet)")
		return nil
	}
	if err != nil {
		return err
	}

	streaks, err := model.DecodeStreaks(data)
	if err != nil {
		fmt.Printf("%s %v\n", cli.Red("[unreadable]"), err)
		fmt.Println("dundun will ignore this data and start with no streaks.")
		return fmt.Errorf("stored streaks cannot be read")
	}

	errs := ops.ValidateStreaks(streaks)
	if len(errs) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	if !validateFix {
		fmt.Printf("Found %d issue(s):\n\n", len(errs))
		printValidationErrors(errs)
		return fmt.Errorf("found %d issue(s)", len(errs))
	}

	fmt.Printf("Found %d issue(s). Attempting to fix...\n\n", len(errs))

	fixed, fixes := ops.FixStreaks(streaks)
	out, err := model.EncodeStreaks(fixed)
	if err != nil {
		return err
	}
	if err := blobs.WriteBlob(ops.DefaultKey, out); err != nil {
		return fmt.Errorf("failed to save repaired streaks: %w", err)
	}

	fmt.Println("Fixes applied:")
	for _, f := range fixes {
		fmt.Printf("  %s: %s\n", model.ShortID(f.ItemID), f.Description)
	}
	fmt.Println()

	if remaining := ops.ValidateStreaks(fixed); len(remaining) > 0 {
		fmt.Printf("Remaining issues (%d) that cannot be auto-fixed:\n\n", len(remaining))
		printValidationErrors(remaining)
		return fmt.Errorf("found %d issue(s)", len(remaining))
	}

	fmt.Println(cli.Green("All issues resolved."))
	return nil
}

func printValidationErrors(errs []ops.ValidationError) {
	for _, e := range errs {
		fmt.Printf("%s %s: %s\n", model.ShortID(e.ItemID), formatValidationErrorType(e.Type), e.Message)
	}
}

func formatValidationErrorType(t ops.ValidationErrorType) string {
	switch t {
	case ops.ValidationErrorMissingID:
		return cli.Red("[missing-id]")
	case ops.ValidationErrorDuplicateID:
		return cli.Red("[duplicate]")
	case ops.ValidationErrorNegativeCount:
		return cli.Red("[negative]")
	case ops.ValidationErrorLongest:
		return cli.Yellow("[longest]")
	case ops.ValidationErrorDateNotDay:
		return cli.Yellow("[date]")
	default:
		return fmt.Sprintf("[%s]", t)
	}
}
