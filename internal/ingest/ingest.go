// Package ingest imports markdown trip logs into the journal.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"fishguide/internal/journal"
	"fishguide/internal/parser"
)

const idPrefix = "md"

type Journal interface {
	Entry(ctx context.Context, id string) (journal.Entry, error)
	SaveEntry(ctx context.Context, e journal.Entry) (journal.Entry, error)
}

type Result struct {
	Imported     int
	Unchanged    int
	FilesSkipped int
	Errors       []error
}

type Options struct {
	Exclude []string
	// Full re-saves entries even when the file has not changed.
	Full   bool
	DryRun bool
}

// Run walks roots for *.md files and saves each parsed trip log as a journal
// entry. Entry ids are derived from the file path, so importing the same
// directory twice updates entries instead of duplicating them.
func Run(ctx context.Context, j Journal, roots []string, options Options) (*Result, error) {
	files, err := walkMarkdownFiles(roots, options.Exclude)
	if err != nil {
		return nil, fmt.Errorf("walking markdown files: %w", err)
	}

	result := &Result{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		log, err := parser.ParseFile(path)
		if err != nil {
			if errors.Is(err, parser.ErrNoFrontmatter) {
				result.FilesSkipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Errorf("parsing %s: %w", path, err))
			continue
		}

		entry := toEntry(entryID(path), log)

		existing, err := j.Entry(ctx, entry.ID)
		switch {
		case err == nil:
			if !options.Full && reflect.DeepEqual(existing, entry) {
				result.Unchanged++
				continue
			}
		case !errors.Is(err, journal.ErrEntryNotFound):
			result.Errors = append(result.Errors, fmt.Errorf("looking up %s: %w", path, err))
			continue
		}

		if options.DryRun {
			result.Imported++
			continue
		}
		if _, err := j.SaveEntry(ctx, entry); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("saving %s: %w", path, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func toEntry(id string, log *parser.TripLog) journal.Entry {
	fish := log.FishCaught
	if fish == nil {
		fish = []string{}
	}
	return journal.Entry{
		ID:         id,
		Date:       log.Date,
		Location:   log.Location,
		Title:      log.Title,
		Content:    log.Body,
		FishImages: []string{},
		Weather:    log.Weather,
		Conditions: log.Conditions,
		FishCaught: fish,
		Notes:      log.Notes,
	}
}

func entryID(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	sum := sha256.Sum256([]byte(filepath.ToSlash(abs)))
	return idPrefix + hex.EncodeToString(sum[:])[:20]
}

func walkMarkdownFiles(roots []string, excludes []string) ([]string, error) {
	excluded := make([]string, 0, len(excludes))
	for _, path := range excludes {
		if path == "" {
			continue
		}
		excluded = append(excluded, filepath.Clean(path))
	}

	var files []string
	for _, root := range roots {
		if root == "" {
			continue
		}
		root = filepath.Clean(root)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && isExcluded(path, excluded) {
				return filepath.SkipDir
			}
			if d.IsDir() {
				return nil
			}
			if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
				return nil
			}
			if isExcluded(path, excluded) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isExcluded(path string, excludes []string) bool {
	clean := filepath.Clean(path)
	for _, exclude := range excludes {
		if exclude == clean || strings.HasPrefix(clean, exclude+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
