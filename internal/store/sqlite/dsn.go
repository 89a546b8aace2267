package sqlite

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const scheme = "sqlite://"

var errEmptyPath = errors.New("sqlite DSN has no database path")

// parseDSN turns a sqlite:// URL into the path form the modernc driver
// expects. Relative paths are anchored to the working directory.
func parseDSN(dsn string) (string, error) {
	rest, ok := strings.CutPrefix(dsn, scheme)
	if !ok {
		return "", fmt.Errorf("invalid sqlite DSN scheme, expected %s", scheme)
	}

	switch {
	case rest == "":
		return "", errEmptyPath
	case rest == ":memory:":
		return rest, nil
	case strings.HasPrefix(rest, "/"), strings.HasPrefix(rest, "./"):
		return rest, nil
	}

	path, query, hasQuery := strings.Cut(rest, "?")
	path, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("unescaping path: %w", err)
	}
	if path == "" {
		return "", errEmptyPath
	}
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}
	if hasQuery {
		return path + "?" + query, nil
	}
	return path, nil
}
