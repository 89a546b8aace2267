package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fishguide/internal/report"
)

func reportCmd() *cobra.Command {
	var date string
	var save bool
	cmd := &cobra.Command{
		Use:   "report <location>",
		Short: "Generate the seasonal fishing report for a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], date, save)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Report date (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&save, "save", false, "Write the report to its download filename")
	return cmd
}

func runReport(location, date string, save bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kb, err := loadKnowledge(cfg)
	if err != nil {
		return err
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	text := report.New(kb).Generate(location, date)
	if !save {
		fmt.Fprint(os.Stdout, text)
		return nil
	}

	name := report.Filename(location, date)
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	fmt.Fprintf(os.Stdout, "Saved report to %s\n", name)
	return nil
}
