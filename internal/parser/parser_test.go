package parser

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("full frontmatter", func(t *testing.T) {
		content := []byte("---\ntitle: Fluke drift\ndate: \"2024-08-02\"\nlocation: Block Island\nweather: Sunny\nconditions: Incoming tide\nfish_caught: [Fluke, Scup]\nnotes: Gulp on a bucktail.\ntags: [drift]\n---\n\nSlow drift over sand.\n")
		log, err := Parse(content)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if log.Title != "Fluke drift" {
			t.Fatalf("expected title, got %q", log.Title)
		}
		if log.Date != "2024-08-02" {
			t.Fatalf("expected date 2024-08-02, got %q", log.Date)
		}
		if log.Location != "Block Island" || log.Weather != "Sunny" || log.Conditions != "Incoming tide" {
			t.Fatalf("unexpected fields: %+v", log)
		}
		if !reflect.DeepEqual(log.FishCaught, []string{"Fluke", "Scup"}) {
			t.Fatalf("unexpected fish caught: %#v", log.FishCaught)
		}
		if log.Notes != "Gulp on a bucktail." {
			t.Fatalf("unexpected notes: %q", log.Notes)
		}
		if log.Body != "Slow drift over sand." {
			t.Fatalf("unexpected body: %q", log.Body)
		}
	})

	t.Run("unquoted yaml date", func(t *testing.T) {
		log, err := Parse([]byte("---\ntitle: Trout\ndate: 2024-04-06\n---\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if log.Date != "2024-04-06" {
			t.Fatalf("expected normalized date, got %q", log.Date)
		}
	})

	t.Run("minimal frontmatter", func(t *testing.T) {
		log, err := Parse([]byte("---\ntitle: Minimal\ndate: \"2024-01-01\"\n---\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if log.Tags != nil || log.FishCaught != nil {
			t.Fatalf("expected nil lists, got %#v %#v", log.Tags, log.FishCaught)
		}
		if log.Body != "" {
			t.Fatalf("expected empty body, got %q", log.Body)
		}
	})

	t.Run("crlf line endings", func(t *testing.T) {
		log, err := Parse([]byte("---\r\ntitle: Windows\r\ndate: \"2024-01-01\"\r\n---\r\nbody\r\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if log.Body != "body" {
			t.Fatalf("unexpected body: %q", log.Body)
		}
	})

	t.Run("no frontmatter", func(t *testing.T) {
		_, err := Parse([]byte("Just text"))
		if !errors.Is(err, ErrNoFrontmatter) {
			t.Fatalf("expected ErrNoFrontmatter, got %v", err)
		}
	})

	t.Run("missing closing marker", func(t *testing.T) {
		_, err := Parse([]byte("---\ntitle: Missing\n"))
		if !errors.Is(err, ErrNoFrontmatter) {
			t.Fatalf("expected ErrNoFrontmatter, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("---\ntitle: [\n---\n"))
		if !errors.Is(err, ErrInvalidYAML) {
			t.Fatalf("expected ErrInvalidYAML, got %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := Parse([]byte("---\ndate: \"2024-01-01\"\n---\n"))
		if !errors.Is(err, ErrMissingTitle) {
			t.Fatalf("expected ErrMissingTitle, got %v", err)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := Parse([]byte("---\ntitle: Something\n---\n"))
		if !errors.Is(err, ErrMissingDate) {
			t.Fatalf("expected ErrMissingDate, got %v", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := Parse([]byte("---\ntitle: Something\ndate: July 4th\n---\n"))
		if err == nil {
			t.Fatalf("expected error for malformed date")
		}
	})

	t.Run("fish caught single string", func(t *testing.T) {
		log, err := Parse([]byte("---\ntitle: Solo\ndate: \"2024-01-01\"\nfish_caught: Tautog\n---\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !reflect.DeepEqual(log.FishCaught, []string{"Tautog"}) {
			t.Fatalf("unexpected fish caught: %#v", log.FishCaught)
		}
	})

	t.Run("fish caught wrong type", func(t *testing.T) {
		_, err := Parse([]byte("---\ntitle: Bad\ndate: \"2024-01-01\"\nfish_caught: [1, 2]\n---\n"))
		if err == nil {
			t.Fatalf("expected error for non-string fish")
		}
	})
}

func TestParseFile(t *testing.T) {
	log, err := ParseFile(filepath.Join("testdata", "evening_stripers.md"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if log.Title != "Evening stripers off Conimicut" {
		t.Fatalf("expected title, got %q", log.Title)
	}
	if log.Date != "2024-07-14" {
		t.Fatalf("expected date, got %q", log.Date)
	}
	if log.SourceFile == "" {
		t.Fatalf("expected source file set")
	}
}

func TestParseFile_NoFrontmatter(t *testing.T) {
	_, err := ParseFile(filepath.Join("testdata", "no_frontmatter.md"))
	if !errors.Is(err, ErrNoFrontmatter) {
		t.Fatalf("expected ErrNoFrontmatter, got %v", err)
	}
}

func TestParseFile_MissingDate(t *testing.T) {
	_, err := ParseFile(filepath.Join("testdata", "missing_date.md"))
	if !errors.Is(err, ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
}

func TestParse_BOMTrim(t *testing.T) {
	content := []byte("\ufeff---\ntitle: BOM\ndate: \"2024-01-01\"\n---\n")
	log, err := Parse(content)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if log.Title != "BOM" {
		t.Fatalf("expected title, got %q", log.Title)
	}
}

func TestParseFile_ReadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected missing file")
	}
	if _, err := ParseFile(path); err == nil {
		t.Fatalf("expected error")
	}
}
