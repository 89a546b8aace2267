package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "fishguide",
		Short: "Rhode Island fishing guide: recommendations, reports and a trip journal",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.SilenceUsage = true
	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())
	root.AddCommand(recommendCmd())
	root.AddCommand(reportCmd())
	root.AddCommand(journalCmd())
	root.AddCommand(catchCmd())
	root.AddCommand(speciesCmd())
	root.AddCommand(locationsCmd())
	root.AddCommand(gearCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(serveHTTPCmd())
	root.AddCommand(dbCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
