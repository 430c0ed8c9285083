package search

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruntwork-io/artifact-search/pkg/log"
)

func TestRootDirectory(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		dirs         []string
		expected     string
		expectedWarn bool
	}{
		{
			name:     "single directory",
			dirs:     []string{"/work/dist"},
			expected: "/work/dist",
		},
		{
			name:     "nested directories",
			dirs:     []string{"/work/a/b", "/work/a", "/work/a/c/d"},
			expected: "/work/a",
		},
		{
			name:     "siblings",
			dirs:     []string{"/work/a/b", "/work/a/c"},
			expected: "/work/a",
		},
		{
			name:     "similar names are not a common ancestor",
			dirs:     []string{"/work/app", "/work/apple"},
			expected: "/work",
		},
		{
			name:         "disjoint directories degenerate to the filesystem root",
			dirs:         []string{"/work/a", "/tmp/b"},
			expected:     "/",
			expectedWarn: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			r := NewResolver("").WithLogger(log.New(log.WithOutput(&buf), log.WithFormatter(log.NewJSONFormatter())))

			assert.Equal(t, tc.expected, r.rootDirectory(tc.dirs))
			assert.Equal(t, tc.expectedWarn, bytes.Contains(buf.Bytes(), []byte("no common parent directory")))
		})
	}
}

func TestAncestors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"/foo/bar/baz.txt", "/foo/bar", "/foo"}, ancestors("/foo/bar/baz.txt"))
	assert.Equal(t, []string{"/foo"}, ancestors("/foo"))
	assert.Equal(t, []string{"foo/bar", "foo"}, ancestors("foo/bar"))
}

func TestMatcher(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		pattern  string
		name     string
		expected bool
	}{
		{"/a/tmp/**", "/a/tmp/skip.txt", true},
		{"/a/tmp/**", "/a/tmp/deep/skip.txt", true},
		{"/a/**/*.txt", "/a/x.txt", true},
		{"/a/**/*.txt", "/a/y/z.txt", true},
		{"/a/**/*.txt", "/a/y/z.log", false},
		{"/a/**/**/*.txt", "/a/x.txt", true},
		{"/a/*.txt", "/a/y/z.txt", false},
		{"/a/{x,y}.txt", "/a/y.txt", true},
		{"/a/?.txt", "/a/x.txt", true},
		{"/a/?.txt", "/a/xy.txt", false},
		{"/a/*/?.txt", "/a/d/1.txt", true},
		{"/a/*/?.txt", "/a/d/22.txt", false},
		{"/a/**/?.txt", "/a/d/1.txt", true},
		{"/a/**/?.txt", "/a/1.txt", true},
		{"/a/**/?.txt", "/a/d/e/22.txt", false},
		{"/a/{b,c}/?.txt", "/a/c/1.txt", true},
		{"/a/[xy].txt", "/a/y.txt", true},
		{"/a/[!1].txt", "/a/2.txt", true},
		{"/a/[!1].txt", "/a/1.txt", false},
		{"/a/*/[!1].txt", "/a/d/1.txt", false},
		{"/a/*/[!1].txt", "/a/d/2.txt", true},
		{"/a/?", "/a/b/c", false},
		{"/a/tmp", "/a/tmp", true},
		{"/a/tmp", "/a/tmp2", false},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern+" "+tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := compileMatcher(tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.Match(tc.name))
		})
	}
}

func TestExpandGlobstar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/a{/,/**/}*.txt", expandGlobstar("/a/**/*.txt"))
	assert.Equal(t, "/a{/,/**/}*.txt", expandGlobstar("/a/**/**/*.txt"))
	assert.Equal(t, "/a/**", expandGlobstar("/a/**"))
	assert.Equal(t, "/a/*.txt", expandGlobstar("/a/*.txt"))
}

func TestMatcherCanDescend(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		pattern  string
		dir      string
		expected bool
	}{
		{"/a/*.txt", "/a", true},
		{"/a/*.txt", "/a/b", false},
		{"/a/*/?.txt", "/a/b", true},
		{"/a/*/?.txt", "/a/b/c", false},
		{"/a/**/*.txt", "/a/b/c/d", true},
		{"/a/{b/c,d}/*.txt", "/a/b/c", true},
		{"/*.txt", "/usr", false},
	}

	for _, tc := range testCases {
		m, err := compileMatcher(tc.pattern)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, m.CanDescend(tc.dir), "%s below %s", tc.pattern, tc.dir)
	}
}

func TestWithNumWorkers(t *testing.T) {
	t.Parallel()

	r := NewResolver("")
	defaultWorkers := r.numWorkers

	assert.Equal(t, defaultWorkers, r.WithNumWorkers(0).numWorkers)
	assert.Equal(t, defaultWorkers, r.WithNumWorkers(-3).numWorkers)
	assert.Equal(t, 2, r.WithNumWorkers(2).numWorkers)
	assert.Equal(t, maxResolverWorkers, r.WithNumWorkers(32).numWorkers)
}
