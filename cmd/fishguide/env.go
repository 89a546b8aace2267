package main

import (
	"context"
	"fmt"
	"strings"

	"fishguide/internal/config"
	"fishguide/internal/journal"
	"fishguide/internal/knowledge"
	"fishguide/internal/store"
	"fishguide/internal/store/memory"
	"fishguide/internal/store/postgres"
	"fishguide/internal/store/sqlite"
)

func loadConfig() (*config.ProjectConfig, error) {
	cfg, err := config.LoadOrDefault(config.DefaultPath)
	if err != nil {
		return nil, err
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadKnowledge(cfg *config.ProjectConfig) (*knowledge.Base, error) {
	return knowledge.LoadOrDefault(cfg.Knowledge.Path)
}

func openStore(ctx context.Context, dsn string) (store.KV, error) {
	scheme, _, _ := strings.Cut(dsn, "://")

	var kv store.KV
	var err error
	switch scheme {
	case "sqlite":
		kv, err = sqlite.New(ctx, dsn)
	case "postgres", "postgresql":
		kv, err = postgres.New(ctx, dsn)
	case "memory":
		kv = memory.New()
	default:
		return nil, fmt.Errorf("unsupported database scheme: %s", scheme)
	}
	if err != nil {
		return nil, err
	}

	if err := kv.EnsureSchema(ctx); err != nil {
		kv.Close(ctx)
		return nil, fmt.Errorf("preparing schema: %w", err)
	}
	return kv, nil
}

// openJournal loads config and returns the journal with a close func.
func openJournal(ctx context.Context) (*journal.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	kv, err := openStore(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	return journal.New(kv), func() { kv.Close(ctx) }, nil
}
