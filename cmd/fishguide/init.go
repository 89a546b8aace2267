package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fishguide/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	var dsn string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a fishguide.yaml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName, dsn)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	cmd.Flags().StringVar(&dsn, "dsn", "sqlite://./fishguide.db", "Journal database DSN")
	return cmd
}

func runInit(projectName, dsn string) error {
	configPath := config.DefaultPath
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	contents := fmt.Sprintf("project: %s\nversion: 1\n\ndatabase:\n  dsn: %s\n\nknowledge:\n  path: \"\"\n\nlog:\n  level: info\n  format: console\n\nserver:\n  addr: \":8080\"\n  allowed_origins:\n    - http://localhost:5173\n", projectName, dsn)
	if err := os.WriteFile(configPath, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s\n", configPath)
	return nil
}
