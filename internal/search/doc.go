// Package search resolves parsed search patterns against the filesystem.
//
// A Resolver expands every inclusion pattern, removes the files matched by any exclusion pattern and computes
// the root directory that the remaining files are relative to. The root is the deepest common ancestor of the
// literal prefixes of the inclusion patterns, which is the part of each pattern before its first wildcard
// segment. Directory structure below the root is what a consumer re-creates when the files are restored.
//
// Usage:
//
//	patterns, err := pattern.Parse("dist/**/*.js\n!dist/**/*.map")
//	if err != nil {
//		return err
//	}
//
//	result, err := search.NewResolver(workingDir).
//		WithLogger(l).
//		WithExcludeHidden().
//		Resolve(ctx, patterns)
//
// Expansion of the inclusion patterns runs concurrently, bounded by WithNumWorkers. The first filesystem error
// cancels the remaining expansions and no partial result is returned.
package search
