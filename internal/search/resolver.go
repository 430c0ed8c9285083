package search

import (
	"context"
	"os"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/internal/pattern"
	"github.com/gruntwork-io/artifact-search/pkg/log"
	"github.com/gruntwork-io/artifact-search/util"
)

const (
	// maxResolverWorkers is the upper bound of concurrent pattern expansions.
	maxResolverWorkers = 16

	filesystemRoot = "/"
)

// Resolver expands search patterns into the set of files to upload and their root directory.
type Resolver struct {
	logger log.Logger

	// workingDir is the directory relative patterns are resolved against.
	workingDir string

	// numWorkers is the number of concurrent expansions.
	numWorkers int

	// excludeHidden drops files below a hidden path segment from wildcard and directory expansions.
	excludeHidden bool
}

// NewResolver creates a new Resolver resolving relative patterns against the given working directory.
// An empty working directory stands for the current directory of the process. Unless WithLogger is used,
// the logger is taken from the context given to Resolve.
func NewResolver(workingDir string) *Resolver {
	return &Resolver{
		workingDir: workingDir,
		numWorkers: DefaultNumWorkers(),
	}
}

// DefaultNumWorkers returns the number of available CPUs, bounded by the maximum number of workers.
func DefaultNumWorkers() int {
	return min(max(runtime.NumCPU(), 1), maxResolverWorkers)
}

// WithLogger sets the logger used to report warnings and skipped paths.
func (r *Resolver) WithLogger(l log.Logger) *Resolver {
	if l != nil {
		r.logger = l
	}

	return r
}

// WithNumWorkers sets the number of concurrent expansions, capped at the maximum number of workers.
// Values below one keep the default.
func (r *Resolver) WithNumWorkers(numWorkers int) *Resolver {
	if numWorkers > 0 {
		r.numWorkers = min(numWorkers, maxResolverWorkers)
	}

	return r
}

// WithExcludeHidden excludes hidden files and directories from wildcard and directory expansions.
func (r *Resolver) WithExcludeHidden() *Resolver {
	r.excludeHidden = true
	return r
}

// Resolve expands the inclusion patterns, removes every file matched by an exclusion pattern and computes
// the root directory. An empty file list is not an error.
func (r *Resolver) Resolve(ctx context.Context, patterns pattern.Patterns) (*SearchResult, error) {
	if r.logger == nil {
		resolver := *r
		resolver.logger = log.LoggerFromContext(ctx)

		return resolver.Resolve(ctx, patterns)
	}

	if len(patterns.Includes()) == 0 {
		return nil, pattern.NewInvalidPatternError(patterns.String(), "at least one inclusion pattern is required", nil)
	}

	workingDir, err := r.resolveWorkingDir()
	if err != nil {
		return nil, err
	}

	inclusions, err := canonicalInclusions(patterns.Includes(), workingDir)
	if err != nil {
		return nil, err
	}

	exclusionPatterns, err := canonicalPatterns(patterns.Excludes(), workingDir)
	if err != nil {
		return nil, err
	}

	exclusions, err := compileMatchers(exclusionPatterns)
	if err != nil {
		return nil, err
	}

	expansions := make([]expansion, len(inclusions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.numWorkers)

	for i, inc := range inclusions {
		g.Go(func() error {
			exp, err := r.expand(gctx, inc)
			if err != nil {
				return err
			}

			expansions[i] = exp

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		files = make([]string, 0, len(expansions))
		roots = make([]string, 0, len(expansions))
	)

	for _, exp := range expansions {
		files = append(files, exp.files...)
		roots = append(roots, exp.root)
	}

	files = r.removeExcluded(files, exclusions)

	files = util.RemoveDuplicatesFromList(files)
	slices.Sort(files)

	r.warnCaseConflicts(files)

	return &SearchResult{
		FilesToUpload: files,
		RootDirectory: r.rootDirectory(roots),
	}, nil
}

func (r *Resolver) resolveWorkingDir() (string, error) {
	if r.workingDir != "" {
		return util.CanonicalPath(r.workingDir, "")
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return "", errors.New(err)
	}

	return util.CleanPath(workingDir), nil
}

func canonicalInclusions(includes pattern.Patterns, workingDir string) ([]inclusion, error) {
	paths, err := canonicalPatterns(includes, workingDir)
	if err != nil {
		return nil, err
	}

	inclusions := make([]inclusion, len(paths))

	for i, path := range paths {
		prefix, wildcard := util.GlobLiteralPrefix(path)

		inclusions[i] = inclusion{
			pattern:  path,
			prefix:   prefix,
			wildcard: wildcard,
		}
	}

	return inclusions, nil
}

// canonicalPatterns turns every pattern into an absolute, cleaned, slash separated glob expression.
func canonicalPatterns(patterns pattern.Patterns, workingDir string) ([]string, error) {
	paths := make([]string, 0, len(patterns))

	for _, p := range patterns {
		path, err := util.CanonicalPath(p.Pattern(), workingDir)
		if err != nil {
			return nil, err
		}

		paths = append(paths, path)
	}

	return paths, nil
}

// removeExcluded drops every file that, or whose ancestor directory, matches one of the exclusions.
func (r *Resolver) removeExcluded(files []string, exclusions []*matcher) []string {
	if len(exclusions) == 0 {
		return files
	}

	kept := make([]string, 0, len(files))

	for _, file := range files {
		if isExcluded(file, exclusions) {
			r.logger.Tracef("Excluding %s", file)
			continue
		}

		kept = append(kept, file)
	}

	if removed := len(files) - len(kept); removed > 0 {
		r.logger.Debugf("Exclusion patterns removed %d file(s)", removed)
	}

	return kept
}

func isExcluded(file string, exclusions []*matcher) bool {
	for _, path := range ancestors(file) {
		for _, exclusion := range exclusions {
			if exclusion.Match(path) {
				return true
			}
		}
	}

	return false
}

// rootDirectory returns the deepest common ancestor of the given directories, falling back to the filesystem root.
func (r *Resolver) rootDirectory(dirs []string) string {
	root := util.CommonAncestor(dirs...)
	if root == "" {
		root = filesystemRoot
	}

	if root == filesystemRoot && len(dirs) > 1 {
		r.logger.Warnf("The search patterns have no common parent directory, the root directory is %s", root)
	}

	return root
}

// warnCaseConflicts logs the files that would overwrite each other on a case-insensitive filesystem.
// The given files must be sorted.
func (r *Resolver) warnCaseConflicts(files []string) {
	seen := make(map[string]string, len(files))

	for _, file := range files {
		key := strings.ToLower(file)

		if other, ok := seen[key]; ok {
			r.logger.Warnf("%s and %s differ only by case and will conflict on a case-insensitive filesystem", other, file)
			continue
		}

		seen[key] = file
	}
}
