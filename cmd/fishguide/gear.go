package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fishguide/internal/catalog"
)

func gearCmd() *cobra.Command {
	var species, category string
	cmd := &cobra.Command{
		Use:   "gear",
		Short: "Show recommended tackle for Rhode Island waters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGear(species, category)
		},
	}
	cmd.Flags().StringVar(&species, "species", "", "Only gear recommended for this species")
	cmd.Flags().StringVar(&category, "category", "", "Only one category (rods, reels, lures, tackle, clothing)")
	cmd.AddCommand(gearKitsCmd())
	return cmd
}

func runGear(species, category string) error {
	g := catalog.DefaultGear()

	if species != "" {
		items := g.ForSpecies(species)
		if len(items) == 0 {
			fmt.Fprintf(os.Stdout, "No gear listed for %s.\n", species)
			return nil
		}
		for _, item := range items {
			printGearItem(item)
		}
		return nil
	}

	cats := g.Categories()
	if category != "" {
		c, ok := g.Category(category)
		if !ok {
			return fmt.Errorf("unknown gear category %q", category)
		}
		cats = []catalog.GearCategory{c}
	}
	for _, c := range cats {
		fmt.Fprintf(os.Stdout, "%s: %s\n\n", c.Name, c.Description)
		for _, item := range c.Items {
			printGearItem(item)
		}
	}
	return nil
}

func printGearItem(item catalog.GearItem) {
	fmt.Fprintf(os.Stdout, "  %s (%s) %s, rated %.1f\n", item.Name, item.Brand, item.Price, item.Rating)
	fmt.Fprintf(os.Stdout, "    %s\n", item.RISpecific)
}

func gearKitsCmd() *cobra.Command {
	var level, waterType string
	cmd := &cobra.Command{
		Use:   "kits",
		Short: "List budget starter kits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGearKits(level, waterType)
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "beginner, intermediate or advanced")
	cmd.Flags().StringVar(&waterType, "type", "", "freshwater, saltwater or all")
	return cmd
}

func runGearKits(level, waterType string) error {
	lvl, err := catalog.ParseLevel(level)
	if err != nil {
		return err
	}
	wt, err := catalog.ParseWaterType(waterType)
	if err != nil {
		return err
	}

	kits := catalog.DefaultGear().StarterKits(catalog.KitFilter{Level: lvl, Type: wt})
	if len(kits) == 0 {
		fmt.Fprintln(os.Stdout, "No starter kits found.")
		return nil
	}
	for _, k := range kits {
		fmt.Fprintf(os.Stdout, "%s (%s, %s)\n", k.Name, k.TotalPrice, k.PriceRange)
		fmt.Fprintf(os.Stdout, "  %s\n", k.BestFor)
		for _, item := range k.Items {
			fmt.Fprintf(os.Stdout, "  - %s %s\n", item.Name, item.Price)
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
