package pattern

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/util"
)

const (
	commentMarker = "#"

	globSeparator = '/'
)

// Parse splits the given search path into patterns and classifies each one as inclusion or exclusion.
// Every entry is checked for glob syntax errors and all malformed entries are reported together.
// It returns an InvalidPatternError if any entry is malformed or if no inclusion pattern remains.
func Parse(searchPath string) (Patterns, error) {
	var (
		patterns Patterns
		errs     *errors.MultiError
	)

	for _, entry := range splitEntries(searchPath) {
		if strings.HasPrefix(entry, commentMarker) {
			continue
		}

		pattern, err := parseEntry(entry)
		if err != nil {
			errs = errs.Append(err)
			continue
		}

		patterns = append(patterns, pattern)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, NewInvalidPatternError(searchPath, "malformed patterns", err)
	}

	if len(patterns.Includes()) == 0 {
		return nil, NewInvalidPatternError(searchPath, "at least one inclusion pattern is required", nil)
	}

	return patterns, nil
}

// splitEntries splits on line breaks, and on commas that are not inside a brace alternation.
func splitEntries(searchPath string) []string {
	var (
		entries []string
		entry   strings.Builder
		depth   int
	)

	flush := func() {
		entries = append(entries, strings.TrimSpace(entry.String()))
		entry.Reset()
	}

	for _, r := range searchPath {
		switch {
		case r == '\n':
			// an unbalanced brace never spans lines
			depth = 0

			flush()

			continue
		case r == ',' && depth == 0:
			flush()
			continue
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		}

		entry.WriteRune(r)
	}

	flush()

	return util.RemoveEmptyElements(entries)
}

func parseEntry(entry string) (SearchPattern, error) {
	polarity := Include

	text := entry
	if strings.HasPrefix(text, NegationMarker) {
		polarity = Exclude
		text = strings.TrimSpace(strings.TrimPrefix(text, NegationMarker))
	}

	if text == "" {
		return SearchPattern{}, MalformedPatternError{Pattern: entry, Err: errors.New("nothing follows the negation marker")}
	}

	text = normalize(text)

	if _, err := glob.Compile(text, globSeparator); err != nil {
		return SearchPattern{}, MalformedPatternError{Pattern: entry, Err: err}
	}

	return NewSearchPattern(text, polarity), nil
}

// normalize converts the pattern to forward slashes and drops trailing separators.
func normalize(pattern string) string {
	pattern = filepath.ToSlash(pattern)

	for len(pattern) > 1 && strings.HasSuffix(pattern, "/") {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	return pattern
}
