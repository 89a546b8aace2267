package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fishguide/internal/ingest"
)

var importOptions ingest.Options

func journalImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <dir>...",
		Short: "Import markdown trip logs into the journal",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runJournalImport,
	}
	cmd.Flags().BoolVar(&importOptions.Full, "full", false, "Re-save entries even when unchanged")
	cmd.Flags().BoolVar(&importOptions.DryRun, "dry-run", false, "Parse files without saving")
	cmd.Flags().StringSliceVar(&importOptions.Exclude, "exclude", nil, "Paths to skip")
	return cmd
}

func runJournalImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	j, closeFn, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := ingest.Run(ctx, j, args, importOptions)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Import complete.")
	fmt.Fprintf(os.Stdout, "  Entries imported: %d\n", result.Imported)
	fmt.Fprintf(os.Stdout, "  Unchanged:        %d\n", result.Unchanged)
	fmt.Fprintf(os.Stdout, "  Files skipped:    %d\n", result.FilesSkipped)

	if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stdout, "\nErrors (%d):\n", len(result.Errors))
		for _, item := range result.Errors {
			fmt.Fprintf(os.Stdout, "  - %v\n", item)
		}
		return fmt.Errorf("import completed with errors")
	}

	return nil
}
