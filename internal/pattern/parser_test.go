package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/internal/pattern"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		searchPath string
		expected   []string
	}{
		{
			name:       "single literal file",
			searchPath: "a/b/c.txt",
			expected:   []string{"a/b/c.txt"},
		},
		{
			name:       "inclusion and exclusion",
			searchPath: "a/**/*.txt\n!a/tmp/**",
			expected:   []string{"a/**/*.txt", "!a/tmp/**"},
		},
		{
			name:       "surrounding whitespace and empty lines",
			searchPath: "\n   a.txt   \n\n\t b.txt \n",
			expected:   []string{"a.txt", "b.txt"},
		},
		{
			name:       "comma delimited",
			searchPath: "a.txt, b.txt,,c.txt",
			expected:   []string{"a.txt", "b.txt", "c.txt"},
		},
		{
			name:       "commas inside braces do not split",
			searchPath: "src/{a,b}/*.go, docs",
			expected:   []string{"src/{a,b}/*.go", "docs"},
		},
		{
			name:       "comments are skipped",
			searchPath: "# build output\ndist/**\n  # trailing comment",
			expected:   []string{"dist/**"},
		},
		{
			name:       "windows line breaks and trailing slash",
			searchPath: "dist/\r\nlogs//\r\n",
			expected:   []string{"dist", "logs"},
		},
		{
			name:       "whitespace after negation marker",
			searchPath: "b\n!  a.txt",
			expected:   []string{"b", "!a.txt"},
		},
		{
			name:       "root directory",
			searchPath: "/",
			expected:   []string{"/"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			patterns, err := pattern.Parse(tc.searchPath)
			require.NoError(t, err)

			actual := make([]string, 0, len(patterns))
			for _, p := range patterns {
				actual = append(actual, p.String())
			}

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestParsePolarity(t *testing.T) {
	t.Parallel()

	patterns, err := pattern.Parse("a/**/*.txt\n!a/tmp/**\nb/*.log")
	require.NoError(t, err)

	assert.Equal(t, []string{"a/**/*.txt", "b/*.log"}, patterns.Includes().Strings())
	assert.Equal(t, []string{"a/tmp/**"}, patterns.Excludes().Strings())

	assert.Equal(t, pattern.Include, patterns[0].Polarity())
	assert.Equal(t, pattern.Exclude, patterns[1].Polarity())
	assert.True(t, patterns[1].IsExclude())
	assert.Equal(t, "a/tmp/**", patterns[1].Pattern())
	assert.Equal(t, "exclude", patterns[1].Polarity().String())
}

func TestParseIsIdempotent(t *testing.T) {
	t.Parallel()

	const searchPath = "a/**/*.txt, !a/tmp/**\nb/{x,y}.txt"

	first, err := pattern.Parse(searchPath)
	require.NoError(t, err)

	second, err := pattern.Parse(searchPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	reparsed, err := pattern.Parse(first.String())
	require.NoError(t, err)
	assert.Equal(t, first, reparsed)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		searchPath    string
		wantMalformed bool
	}{
		{name: "empty input", searchPath: ""},
		{name: "blank input", searchPath: "  \n\t\n , "},
		{name: "only comments", searchPath: "# nothing here"},
		{name: "only exclusions", searchPath: "!a/*.txt"},
		{name: "several exclusions", searchPath: "!a/*.txt\n!b/**"},
		{name: "bare negation marker", searchPath: "a.txt\n!", wantMalformed: true},
		{name: "unclosed character class", searchPath: "a/[b", wantMalformed: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			patterns, err := pattern.Parse(tc.searchPath)
			require.Error(t, err)
			assert.Nil(t, patterns)

			var invalidErr pattern.InvalidPatternError
			require.True(t, errors.As(err, &invalidErr), "expected InvalidPatternError, got %T", err)
			assert.Equal(t, tc.searchPath, invalidErr.SearchPath)

			var malformedErr pattern.MalformedPatternError
			assert.Equal(t, tc.wantMalformed, errors.As(err, &malformedErr))
		})
	}
}

func TestParseReportsAllMalformedPatterns(t *testing.T) {
	t.Parallel()

	_, err := pattern.Parse("a/[b\nok.txt\n!\nc/[d")
	require.Error(t, err)

	var multiErr *errors.MultiError
	require.True(t, errors.As(err, &multiErr))
	assert.Equal(t, 3, multiErr.Len())
	assert.Contains(t, err.Error(), "3 errors occurred")
}
