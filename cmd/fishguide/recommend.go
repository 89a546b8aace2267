package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fishguide/internal/advisor"
)

func recommendCmd() *cobra.Command {
	var scenario advisor.Scenario
	var experience string
	var asJSON bool
	var save bool
	cmd := &cobra.Command{
		Use:   "recommend <question>",
		Short: "Get a fishing recommendation for a scenario",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario.Question = strings.Join(args, " ")
			scenario.Experience = advisor.Experience(strings.ToLower(experience))
			return runRecommend(scenario, asJSON, save)
		},
	}
	cmd.Flags().StringVar(&scenario.Location, "location", "", "Where you plan to fish")
	cmd.Flags().StringVar(&scenario.Species, "species", "", "Target species")
	cmd.Flags().StringVar(&scenario.TimeOfDay, "time", "", "Planned time of day")
	cmd.Flags().StringVar(&scenario.Weather, "weather", "", "Weather description")
	cmd.Flags().StringVar(&experience, "experience", "", "beginner, intermediate or advanced")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full recommendation as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Write the detailed advice to a text file")
	return cmd
}

func runRecommend(scenario advisor.Scenario, asJSON, save bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kb, err := loadKnowledge(cfg)
	if err != nil {
		return err
	}

	adv := advisor.New(kb)
	rec := adv.Recommend(scenario)

	if save {
		name := advisor.AdviceFilename(scenario.Location, time.Now())
		if err := os.WriteFile(name, []byte(rec.DetailedReport), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		fmt.Fprintf(os.Stderr, "Saved advice to %s\n", name)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Fprintf(os.Stdout, "%s / %s (%s), confidence %.0f%%\n\n", rec.Location, rec.Species, rec.Season.Title(), rec.Confidence*100)
	printList("Best times", rec.Recommendations.BestTimes)
	printList("Lures", rec.Recommendations.Lures)
	printList("Bait", rec.Recommendations.Bait)
	printList("Techniques", rec.Recommendations.Techniques)
	printList("Conditions", rec.Recommendations.WeatherConditions)
	printList("Tips", rec.Recommendations.Tips)
	fmt.Fprintf(os.Stdout, "Why: %s\n\n", rec.Reasoning)
	fmt.Fprintln(os.Stdout, rec.DetailedReport)
	return nil
}

func printList(heading string, items []string) {
	fmt.Fprintf(os.Stdout, "%s:\n", heading)
	for _, item := range items {
		fmt.Fprintf(os.Stdout, "  - %s\n", item)
	}
	fmt.Fprintln(os.Stdout)
}
