package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fishguide/internal/journal"
)

func catchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catch",
		Short: "Manage the caught-fish gallery",
	}
	cmd.AddCommand(catchAddCmd())
	cmd.AddCommand(catchListCmd())
	cmd.AddCommand(catchDeleteCmd())
	return cmd
}

func catchAddCmd() *cobra.Command {
	var c journal.Catch
	var image string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a fish to the gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(c.Species) == "" {
				return fmt.Errorf("--species is required")
			}
			return runCatchAdd(c, image)
		},
	}
	cmd.Flags().StringVar(&c.Species, "species", "", "Species caught")
	cmd.Flags().StringVar(&c.Size, "size", "", "Length, e.g. 28 in")
	cmd.Flags().StringVar(&c.Weight, "weight", "", "Weight, e.g. 9 lb")
	cmd.Flags().StringVar(&c.Location, "location", "", "Where it was caught")
	cmd.Flags().StringVar(&c.Date, "date", "", "Catch date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&c.JournalEntryID, "entry", "", "Journal entry to link")
	cmd.Flags().StringVar(&image, "image", "", "Photo of the fish")
	return cmd
}

func runCatchAdd(c journal.Catch, image string) error {
	ctx := context.Background()

	if image != "" {
		urls, err := journal.EncodeImages(ctx, []string{image})
		if err != nil {
			return err
		}
		c.Image = urls[0]
	}

	j, closeFn, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	added, err := j.AddCatch(ctx, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added catch %s\n", added.ID)
	return nil
}

func catchListCmd() *cobra.Command {
	var entryID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the gallery, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatchList(entryID)
		},
	}
	cmd.Flags().StringVar(&entryID, "entry", "", "Only catches linked to this journal entry")
	return cmd
}

func runCatchList(entryID string) error {
	ctx := context.Background()

	j, closeFn, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	catches := j.Catches(ctx)
	if entryID != "" {
		catches = j.CatchesForEntry(ctx, entryID)
	}
	if len(catches) == 0 {
		fmt.Fprintln(os.Stdout, "No catches found.")
		return nil
	}
	for _, c := range catches {
		fmt.Fprintf(os.Stdout, "%s  %s\n", c.ID, describeCatch(c))
	}
	return nil
}

func catchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a fish from the gallery",
		Args:  cobra.ExactArgs(1),
		RunE:  runCatchDelete,
	}
}

func runCatchDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	j, closeFn, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := j.DeleteCatch(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Deleted catch %s\n", args[0])
	return nil
}

func describeCatch(c journal.Catch) string {
	parts := []string{c.Species}
	if c.Size != "" {
		parts = append(parts, c.Size)
	}
	if c.Weight != "" {
		parts = append(parts, c.Weight)
	}
	desc := strings.Join(parts, ", ")
	if c.Location != "" {
		desc += " at " + c.Location
	}
	if c.Date != "" {
		desc += " on " + c.Date
	}
	return desc
}
