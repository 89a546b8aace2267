package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fishguide/internal/catalog"
)

func speciesCmd() *cobra.Command {
	var waterType, search string
	var inSeason bool
	cmd := &cobra.Command{
		Use:   "species [name]",
		Short: "List Rhode Island species or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runSpeciesShow(args[0])
			}
			return runSpeciesList(waterType, search, inSeason)
		},
	}
	cmd.Flags().StringVar(&waterType, "type", "", "freshwater, saltwater or all")
	cmd.Flags().StringVar(&search, "search", "", "Filter by common or scientific name")
	cmd.Flags().BoolVar(&inSeason, "in-season", false, "Only species in season this month")
	return cmd
}

func runSpeciesList(waterType, search string, inSeason bool) error {
	wt, err := catalog.ParseWaterType(waterType)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	species := cat.FindSpecies(catalog.Filter{Search: search, Type: wt})
	if inSeason {
		open := make(map[string]bool)
		for _, sp := range cat.InSeason(time.Now().Month()) {
			open[sp.ID] = true
		}
		filtered := species[:0]
		for _, sp := range species {
			if open[sp.ID] {
				filtered = append(filtered, sp)
			}
		}
		species = filtered
	}

	if len(species) == 0 {
		fmt.Fprintln(os.Stdout, "No species found.")
		return nil
	}
	for _, sp := range species {
		fmt.Fprintf(os.Stdout, "%s (%s) [%s] %s-%s\n", sp.Name, sp.ScientificName, sp.Type, sp.Season.Start, sp.Season.End)
	}
	return nil
}

func runSpeciesShow(name string) error {
	sp, ok := catalog.Default().SpeciesByName(name)
	if !ok {
		return fmt.Errorf("unknown species %q", name)
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n", sp.Name, sp.ScientificName)
	fmt.Fprintf(os.Stdout, "Type: %s\n", sp.Type)
	fmt.Fprintf(os.Stdout, "Season: %s to %s\n", sp.Season.Start, sp.Season.End)
	fmt.Fprintf(os.Stdout, "Size: %d-%d in (avg %d)\n", sp.Size.Min, sp.Size.Max, sp.Size.Average)
	fmt.Fprintf(os.Stdout, "Regulations: min %d in, limit %d, %s\n",
		sp.Regulations.SizeLimit, sp.Regulations.PossessionLimit, sp.Regulations.SeasonDates)
	fmt.Fprintf(os.Stdout, "\n%s\n\nHabitat: %s\n\n", sp.Description, sp.Habitat)
	printList("Lures", sp.BestLures)
	printList("Bait", sp.BestBait)
	printList("Best times", sp.BestTimes)
	printList("Techniques", sp.Techniques)
	printList("Where", sp.Locations)
	return nil
}

func locationsCmd() *cobra.Command {
	var waterType, search string
	cmd := &cobra.Command{
		Use:   "locations [name]",
		Short: "List fishing locations or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runLocationShow(args[0])
			}
			return runLocationList(waterType, search)
		},
	}
	cmd.Flags().StringVar(&waterType, "type", "", "freshwater, saltwater or all")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name or description")
	return cmd
}

func runLocationList(waterType, search string) error {
	wt, err := catalog.ParseWaterType(waterType)
	if err != nil {
		return err
	}

	locations := catalog.Default().FindLocations(catalog.Filter{Search: search, Type: wt})
	if len(locations) == 0 {
		fmt.Fprintln(os.Stdout, "No locations found.")
		return nil
	}
	for _, loc := range locations {
		fmt.Fprintf(os.Stdout, "%s [%s] (%.4f, %.4f)\n", loc.Name, loc.Type, loc.Coordinates.Lat, loc.Coordinates.Lng)
	}
	return nil
}

func runLocationShow(name string) error {
	loc, ok := catalog.Default().LocationByName(name)
	if !ok {
		return fmt.Errorf("unknown location %q", name)
	}

	fmt.Fprintf(os.Stdout, "%s [%s]\n", loc.Name, loc.Type)
	fmt.Fprintf(os.Stdout, "Coordinates: %.4f, %.4f\n", loc.Coordinates.Lat, loc.Coordinates.Lng)
	fmt.Fprintf(os.Stdout, "\n%s\n\nAccess: %s\n\n", loc.Description, loc.AccessInfo)
	printList("Species", loc.FishSpecies)
	printList("Best times", loc.BestTimes)
	printList("Amenities", loc.Amenities)
	printList("Regulations", loc.Regulations)
	return nil
}
