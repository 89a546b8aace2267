package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func dbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Inspect the journal database",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show stored keys and their sizes",
		Args:  cobra.NoArgs,
		RunE:  runDBStats,
	})
	return cmd
}

func runDBStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kv, err := openStore(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	sizes, err := kv.Sizes(ctx)
	if err != nil {
		return err
	}
	if len(sizes) == 0 {
		fmt.Fprintln(os.Stdout, "Database is empty.")
		return nil
	}

	keys := make([]string, 0, len(sizes))
	for key := range sizes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(os.Stdout, "%-28s %d bytes\n", key, sizes[key])
	}
	return nil
}
