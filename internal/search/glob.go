package search

import (
	"path"
	"strings"

	"github.com/gobwas/glob"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/util"
)

const (
	globSeparator = '/'

	globstar = "**"
)

// matcher matches slash separated absolute paths against one glob expression.
type matcher struct {
	glob glob.Glob

	// maxDepth is the number of path segments a match has, or -1 if it varies.
	maxDepth int
}

// compileMatcher compiles the given absolute, slash separated pattern. `*`, `?` and `[...]` stay within a path
// segment, `[!...]` negates a class, `{a,b}` is an alternation and `**` spans any number of segments, including
// none when it forms a whole segment.
func compileMatcher(pattern string) (*matcher, error) {
	g, err := glob.Compile(expandGlobstar(pattern), globSeparator)
	if err != nil {
		return nil, errors.New(err)
	}

	return &matcher{glob: g, maxDepth: fixedDepth(pattern)}, nil
}

func (m *matcher) Match(path string) bool {
	return m.glob.Match(path)
}

// CanDescend reports whether entries below the given directory may still match.
func (m *matcher) CanDescend(dir string) bool {
	return m.maxDepth < 0 || len(util.SplitPath(dir)) < m.maxDepth
}

// expandGlobstar rewrites every `/**/` segment into an alternation that also matches a single separator,
// so that `a/**/b` matches `a/b`.
// E.g. "/a/**/*.txt" -> "/a{/,/**/}*.txt"
func expandGlobstar(pattern string) string {
	const segment = "/" + globstar + "/"

	for strings.Contains(pattern, segment+globstar+"/") {
		pattern = strings.ReplaceAll(pattern, segment+globstar+"/", segment)
	}

	return strings.ReplaceAll(pattern, segment, "{/,"+segment+"}")
}

// fixedDepth returns the number of path segments every match of the pattern has, or -1 if the pattern can match
// paths of different depths.
func fixedDepth(pattern string) int {
	if strings.Contains(pattern, globstar) {
		return -1
	}

	var depth int

	for _, r := range pattern {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		case '/':
			if depth > 0 {
				return -1
			}
		}
	}

	return len(util.SplitPath(pattern))
}

// compileMatchers compiles every pattern.
func compileMatchers(patterns []string) ([]*matcher, error) {
	matchers := make([]*matcher, 0, len(patterns))

	for _, pattern := range patterns {
		m, err := compileMatcher(pattern)
		if err != nil {
			return nil, err
		}

		matchers = append(matchers, m)
	}

	return matchers, nil
}

// ancestors returns the given path followed by each of its parent directories, stopping before the filesystem root.
// E.g. "/foo/bar/baz.txt" -> ["/foo/bar/baz.txt", "/foo/bar", "/foo"]
func ancestors(filePath string) []string {
	paths := []string{filePath}

	for {
		parent := path.Dir(filePath)
		if parent == filePath || parent == "/" || parent == "." {
			return paths
		}

		paths = append(paths, parent)
		filePath = parent
	}
}
