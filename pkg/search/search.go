package search

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/inkwell-md/inkwell/pkg/files"
)

// DefaultMaxResults caps a search so a huge tree cannot stall the caller.
const DefaultMaxResults = 500

// Options controls how a query is matched.
type Options struct {
	CaseSensitive bool
	Regex         bool
	MaxResults    int
}

// Result is a single match within a markdown file.
type Result struct {
	Path        string
	LineNumber  int
	LineContent string
	MatchStart  int
	MatchEnd    int
}

var errLimitReached = errors.New("result limit reached")

// Search walks root for markdown files matching query. Hidden files and
// directories are skipped. An empty query matches nothing.
func Search(root string, query string, opts Options) ([]Result, error) {
	if query == "" {
		return nil, nil
	}

	pattern := query
	if !opts.Regex {
		pattern = regexp.QuoteMeta(query)
	}
	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern: %w", err)
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	var results []Result
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || !files.IsMarkdown(path) {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}

		for i, line := range strings.Split(string(data), "\n") {
			for _, loc := range re.FindAllStringIndex(line, -1) {
				results = append(results, Result{
					Path:        path,
					LineNumber:  i + 1,
					LineContent: line,
					MatchStart:  loc[0],
					MatchEnd:    loc[1],
				})
				if len(results) >= maxResults {
					return errLimitReached
				}
			}
		}
		return nil
	})

	if walkErr != nil && !errors.Is(walkErr, errLimitReached) {
		return nil, fmt.Errorf("search failed: %w", walkErr)
	}
	return results, nil
}
