package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fishguide/internal/journal"
)

func journalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Manage fishing journal entries",
	}
	cmd.AddCommand(journalAddCmd())
	cmd.AddCommand(journalListCmd())
	cmd.AddCommand(journalShowCmd())
	cmd.AddCommand(journalDeleteCmd())
	cmd.AddCommand(journalImportCmd())
	return cmd
}

func journalAddCmd() *cobra.Command {
	var entry journal.Entry
	var fish string
	var images []string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a fishing trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(entry.Title) == "" {
				return fmt.Errorf("--title is required")
			}
			entry.FishCaught = splitList(fish)
			return runJournalAdd(entry, images)
		},
	}
	cmd.Flags().StringVar(&entry.Title, "title", "", "Trip title")
	cmd.Flags().StringVar(&entry.Date, "date", "", "Trip date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&entry.Location, "location", "", "Where you fished")
	cmd.Flags().StringVar(&entry.Content, "content", "", "Trip story")
	cmd.Flags().StringVar(&entry.Weather, "weather", "", "Weather during the trip")
	cmd.Flags().StringVar(&entry.Conditions, "conditions", "", "Water conditions")
	cmd.Flags().StringVar(&entry.Notes, "notes", "", "Extra notes")
	cmd.Flags().StringVar(&fish, "fish", "", "Comma separated species caught")
	cmd.Flags().StringSliceVar(&images, "image", nil, "Photo to attach (repeatable)")
	return cmd
}

func runJournalAdd(entry journal.Entry, images []string) error {
	ctx := context.Background()

	if len(images) > 0 {
		urls, err := journal.EncodeImages(ctx, images)
		if err != nil {
			return err
		}
		entry.FishImages = urls
	}

	j, closeFn, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	saved, err := j.SaveEntry(ctx, entry)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Saved entry %s\n", saved.ID)
	return nil
}

func journalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		Args:  cobra.NoArgs,
		RunE:  runJournalList,
	}
}

func runJournalList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	j, closeFn, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	entries := j.Entries(ctx)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No journal entries.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%s  %s  %s", e.ID, e.Date, e.Title)
		if e.Location != "" {
			fmt.Fprintf(os.Stdout, " [%s]", e.Location)
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

func journalShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a journal entry and its catches",
		Args:  cobra.ExactArgs(1),
		RunE:  runJournalShow,
	}
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	j, closeFn, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	e, err := j.Entry(ctx, args[0])
	if errors.Is(err, journal.ErrEntryNotFound) {
		return fmt.Errorf("no journal entry %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s\n", e.Title)
	fmt.Fprintf(os.Stdout, "Date: %s\n", e.Date)
	printField("Location", e.Location)
	printField("Weather", e.Weather)
	printField("Conditions", e.Conditions)
	if len(e.FishCaught) > 0 {
		fmt.Fprintf(os.Stdout, "Fish caught: %s\n", strings.Join(e.FishCaught, ", "))
	}
	if len(e.FishImages) > 0 {
		fmt.Fprintf(os.Stdout, "Photos: %d\n", len(e.FishImages))
	}
	if e.Content != "" {
		fmt.Fprintf(os.Stdout, "\n%s\n", e.Content)
	}
	if e.Notes != "" {
		fmt.Fprintf(os.Stdout, "\nNotes: %s\n", e.Notes)
	}

	catches := j.CatchesForEntry(ctx, e.ID)
	if len(catches) > 0 {
		fmt.Fprintf(os.Stdout, "\nCatches (%d):\n", len(catches))
		for _, c := range catches {
			fmt.Fprintf(os.Stdout, "  - %s\n", describeCatch(c))
		}
	}
	return nil
}

func journalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runJournalDelete,
	}
}

func runJournalDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	j, closeFn, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := j.DeleteEntry(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Deleted entry %s\n", args[0])
	return nil
}

func printField(label, value string) {
	if value != "" {
		fmt.Fprintf(os.Stdout, "%s: %s\n", label, value)
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
