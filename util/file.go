package util

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/gruntwork-io/artifact-search/internal/errors"
)

const (
	// GlobMetaChars are the characters that turn a path segment into a glob expression.
	GlobMetaChars = "*?[{"

	pathSeparator = "/"
)

// Return true if the path points to a directory
func IsDir(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && fileInfo.IsDir()
}

// CanonicalPath returns the canonical version of the given path, relative to the given base path. That is, if the given path is a
// relative path, assume it is relative to the given base path. A canonical path is an absolute path with all relative
// components (e.g. "../") fully resolved, which makes it safe to compare paths as strings. A leading `~` is expanded
// to the home directory of the current user.
func CanonicalPath(path string, basePath string) (string, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return "", errors.New(err)
	}

	if !filepath.IsAbs(path) {
		path = JoinPath(basePath, path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.New(err)
	}

	return CleanPath(absPath), nil
}

// Return the relative path you would have to take to get from basePath to path
func GetPathRelativeTo(path string, basePath string) (string, error) {
	if path == "" {
		path = "."
	}

	if basePath == "" {
		basePath = "."
	}

	inputFolderAbs, err := filepath.Abs(basePath)
	if err != nil {
		return "", errors.New(err)
	}

	fileAbs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.New(err)
	}

	relPath, err := filepath.Rel(inputFolderAbs, fileAbs)
	if err != nil {
		return "", errors.New(err)
	}

	return filepath.ToSlash(relPath), nil
}

// Windows systems use \ as the path separator *nix uses /
// Use this function when joining paths to force the returned path to use / as the path separator
// This will improve cross-platform compatibility
func JoinPath(elem ...string) string {
	return filepath.ToSlash(filepath.Join(elem...))
}

// SplitPath splits the given path into a list.
// E.g. "foo/bar/boo.txt" -> ["foo", "bar", "boo.txt"]
// E.g. "/foo/bar/boo.txt" -> ["", "foo", "bar", "boo.txt"]
// Notice that if path is absolute the resulting list will begin with an empty string.
func SplitPath(path string) []string {
	return strings.Split(CleanPath(path), pathSeparator)
}

// Use this function when cleaning paths to ensure the returned path uses / as the path separator to improve cross-platform compatibility
func CleanPath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// HasPathPrefix returns true if path starts with the given path prefix
// E.g. path="/foo/bar/biz", prefix="/foo/bar" -> true
// E.g. path="/foo/bar/biz", prefix="/foo/ba" -> false (because ba is not a directory
// path)
func HasPathPrefix(path, prefix string) bool {
	splitPath := SplitPath(path)
	splitPrefix := SplitPath(prefix)

	// "/" splits into ["", ""], which is a prefix of every absolute path.
	if len(splitPrefix) == 2 && splitPrefix[0] == "" && splitPrefix[1] == "" {
		return len(splitPath) > 0 && splitPath[0] == ""
	}

	return ListHasPrefix(splitPath, splitPrefix)
}

// CommonAncestor returns the deepest directory that is a prefix of all the given paths, compared segment by segment.
// E.g. ["/foo/bar/a", "/foo/bar/b/c"] -> "/foo/bar"
// E.g. ["/foo", "/bar"] -> "/"
// An empty string is returned if the paths have nothing in common, e.g. relative paths with different first
// segments or paths on different Windows volumes.
func CommonAncestor(paths ...string) string {
	if len(paths) == 0 {
		return ""
	}

	common := SplitPath(paths[0])

	for _, path := range paths[1:] {
		common = CommonPrefix(common, SplitPath(path))
	}

	if len(common) == 0 {
		return ""
	}

	ancestor := strings.Join(common, pathSeparator)
	if ancestor == "" {
		return pathSeparator
	}

	if volume := filepath.VolumeName(ancestor); volume != "" && volume == ancestor {
		return ancestor + pathSeparator
	}

	return ancestor
}

// HasGlobMeta returns true if the given path contains any of the glob metacharacters.
func HasGlobMeta(path string) bool {
	return strings.ContainsAny(path, GlobMetaChars)
}

// GlobLiteralPrefix returns the longest leading sequence of path segments that contain no glob metacharacters,
// and whether the pattern has any metacharacters at all. For a pattern without metacharacters the whole
// pattern is returned.
// E.g. "/foo/bar/**/*.txt" -> "/foo/bar", true
// E.g. "/foo/b?r/baz" -> "/foo", true
// E.g. "/*.txt" -> "/", true
// E.g. "/foo/bar.txt" -> "/foo/bar.txt", false
func GlobLiteralPrefix(pattern string) (string, bool) {
	pattern = filepath.ToSlash(pattern)
	segments := strings.Split(pattern, pathSeparator)

	for i, segment := range segments {
		if !HasGlobMeta(segment) {
			continue
		}

		prefix := strings.Join(segments[:i], pathSeparator)

		switch {
		case prefix == "" && strings.HasPrefix(pattern, pathSeparator):
			prefix = pathSeparator
		case prefix == "":
			prefix = "."
		case filepath.VolumeName(prefix) == prefix:
			prefix += pathSeparator
		}

		return prefix, true
	}

	return pattern, false
}

// IsHiddenPath returns true if any segment of the given relative path starts with a dot.
// E.g. "foo/.bar/baz" -> true
// E.g. "./foo/../bar" -> false
func IsHiddenPath(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), pathSeparator) {
		if segment == "." || segment == ".." {
			continue
		}

		if strings.HasPrefix(segment, ".") {
			return true
		}
	}

	return false
}
