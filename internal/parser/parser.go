package parser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// TripLog is a markdown journal page: YAML frontmatter describing the trip
// followed by the free-form write-up.
type TripLog struct {
	Frontmatter map[string]any
	Title       string
	Date        string
	Location    string
	Weather     string
	Conditions  string
	FishCaught  []string
	Notes       string
	Tags        []string
	Body        string
	SourceFile  string
}

var (
	ErrNoFrontmatter = errors.New("no frontmatter found")
	ErrInvalidYAML   = errors.New("invalid YAML in frontmatter")
	ErrMissingTitle  = errors.New("frontmatter missing required 'title' field")
	ErrMissingDate   = errors.New("frontmatter missing required 'date' field")
)

func ParseFile(path string) (*TripLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	log, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.SourceFile = path
	return log, nil
}

func Parse(content []byte) (*TripLog, error) {
	trimmed := bytes.TrimLeft(content, "\ufeff\n\r\t ")
	trimmed = bytes.ReplaceAll(trimmed, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(trimmed, []byte("---\n")) {
		return nil, ErrNoFrontmatter
	}

	rest := trimmed[len("---\n"):]
	end := bytes.Index(rest, []byte("---\n"))
	if end == -1 {
		return nil, ErrNoFrontmatter
	}

	yamlBytes := rest[:end]
	body := strings.TrimSpace(string(rest[end+len("---\n"):]))

	var frontmatter map[string]any
	if err := yaml.Unmarshal(yamlBytes, &frontmatter); err != nil {
		return nil, ErrInvalidYAML
	}

	title, ok := frontmatter["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	date, err := parseDate(frontmatter["date"])
	if err != nil {
		return nil, err
	}

	fish, err := parseStringList("fish_caught", frontmatter["fish_caught"])
	if err != nil {
		return nil, err
	}
	tags, err := parseStringList("tags", frontmatter["tags"])
	if err != nil {
		return nil, err
	}

	return &TripLog{
		Frontmatter: frontmatter,
		Title:       strings.TrimSpace(title),
		Date:        date,
		Location:    stringField(frontmatter, "location"),
		Weather:     stringField(frontmatter, "weather"),
		Conditions:  stringField(frontmatter, "conditions"),
		FishCaught:  fish,
		Notes:       stringField(frontmatter, "notes"),
		Tags:        tags,
		Body:        body,
	}, nil
}

// parseDate accepts a YYYY-MM-DD string or a YAML timestamp and normalizes
// both to YYYY-MM-DD.
func parseDate(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", ErrMissingDate
	case time.Time:
		return v.Format(dateLayout), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "", ErrMissingDate
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return "", fmt.Errorf("date %q must be YYYY-MM-DD", s)
		}
		return t.Format(dateLayout), nil
	default:
		return "", fmt.Errorf("date must be a string, got %T", value)
	}
}

func stringField(fm map[string]any, key string) string {
	switch v := fm[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func parseStringList(field string, value any) ([]string, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be strings", field)
			}
			if strings.TrimSpace(s) == "" {
				continue
			}
			items = append(items, s)
		}
		if len(items) == 0 {
			return nil, nil
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%s must be string or list of strings", field)
	}
}
