package search

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/pkg/log"
	"github.com/gruntwork-io/artifact-search/util"
)

// expand returns the files matched by a single inclusion and the directory it contributes to the root.
func (r *Resolver) expand(ctx context.Context, inc inclusion) (expansion, error) {
	if !inc.wildcard {
		return r.expandLiteral(ctx, inc.pattern)
	}

	l := r.logger.WithField(log.FieldKeyPattern, inc.pattern)
	l.Debugf("Expanding from %s", inc.prefix)

	m, err := compileMatcher(inc.pattern)
	if err != nil {
		return expansion{}, err
	}

	var files []string

	err = walk(ctx, inc.prefix, func(path string, entry fs.DirEntry) error {
		if path == inc.prefix {
			return nil
		}

		if r.isHidden(path, inc.prefix) {
			return skipEntry(entry)
		}

		if !m.Match(path) {
			if entry.IsDir() && !m.CanDescend(path) {
				return filepath.SkipDir
			}

			return nil
		}

		info, err := entryInfo(path, entry)
		if err != nil {
			return NewFilesystemAccessError(path, err)
		}

		switch {
		case info.IsDir():
			dirFiles, err := r.collectDir(ctx, path, inc.prefix)
			if err != nil {
				return err
			}

			files = append(files, dirFiles...)

			return skipEntry(entry)
		case info.Mode().IsRegular():
			l.Tracef("Matched %s", path)

			files = append(files, path)
		default:
			l.Debugf("Skipping %s, it is neither a file nor a directory", path)
		}

		return nil
	})
	if err != nil {
		return expansion{}, err
	}

	if len(files) == 0 {
		l.Debugf("No files match %s", inc.pattern)
	}

	return expansion{files: files, root: inc.prefix}, nil
}

// expandLiteral resolves a pattern without wildcards. A directory is expanded to all files beneath it and is its
// own root; a regular file is returned as is and contributes its parent directory.
func (r *Resolver) expandLiteral(ctx context.Context, path string) (expansion, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return expansion{}, NewNotAFileError(path, "does not exist")
	}

	if err != nil {
		return expansion{}, NewFilesystemAccessError(path, err)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		if info, err = os.Stat(path); err != nil {
			return expansion{}, NewFilesystemAccessError(path, err)
		}
	}

	switch {
	case info.IsDir():
		files, err := r.collectDir(ctx, path, path)
		if err != nil {
			return expansion{}, err
		}

		return expansion{files: files, root: path}, nil
	case info.Mode().IsRegular():
		return expansion{files: []string{path}, root: util.CleanPath(filepath.Dir(path))}, nil
	default:
		return expansion{}, NewNotAFileError(path, "is not a regular file")
	}
}

// collectDir returns every regular file beneath the given directory, which may itself be a symlink. Symlinks to
// files are followed, symlinks to directories below it are not. Hidden paths are evaluated relative to prefix.
func (r *Resolver) collectDir(ctx context.Context, dir, prefix string) ([]string, error) {
	var files []string

	err := walk(ctx, dir, func(path string, entry fs.DirEntry) error {
		if path == dir {
			return nil
		}

		if r.isHidden(path, prefix) {
			return skipEntry(entry)
		}

		switch {
		case entry.IsDir():
			return nil
		case entry.Type()&fs.ModeSymlink != 0:
			info, err := os.Stat(path)
			if err != nil {
				return NewFilesystemAccessError(path, err)
			}

			if info.IsDir() {
				r.logger.Debugf("Skipping %s, symlinks to directories are not followed", path)
				return nil
			}

			if !info.Mode().IsRegular() {
				r.logger.Debugf("Skipping %s, it is not a regular file", path)
				return nil
			}
		case !entry.Type().IsRegular():
			r.logger.Debugf("Skipping %s, it is not a regular file", path)
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// walk calls fn for root and every entry beneath it, with clean slash separated paths. A root that is a symlink
// to a directory is resolved, but the paths given to fn stay under root. A missing root has no entries. Any other
// error aborts the walk as a FilesystemAccessError.
func walk(ctx context.Context, root string, fn func(path string, entry fs.DirEntry) error) error {
	walkRoot := root

	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		target, err := filepath.EvalSymlinks(root)
		if err != nil {
			return NewFilesystemAccessError(root, err)
		}

		walkRoot = target
	}

	walkFn := func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if entry == nil && path == walkRoot && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}

			return NewFilesystemAccessError(rebase(path, walkRoot, root), err)
		}

		if err := ctx.Err(); err != nil {
			return errors.New(err)
		}

		return fn(rebase(path, walkRoot, root), entry)
	}

	return filepath.WalkDir(walkRoot, walkFn)
}

// rebase moves the given path from one directory to another, keeping its relative path.
func rebase(path, from, to string) string {
	if from == to {
		return util.CleanPath(path)
	}

	relPath, err := filepath.Rel(from, path)
	if err != nil {
		return util.CleanPath(path)
	}

	return util.JoinPath(to, relPath)
}

// entryInfo returns the file info of the entry, following a symlink.
func entryInfo(path string, entry fs.DirEntry) (fs.FileInfo, error) {
	if entry.Type()&fs.ModeSymlink != 0 {
		return os.Stat(path)
	}

	return entry.Info()
}

// skipEntry skips the rest of a directory walk below the entry. Returning filepath.SkipDir for a file would skip
// its remaining siblings instead.
func skipEntry(entry fs.DirEntry) error {
	if entry.IsDir() {
		return filepath.SkipDir
	}

	return nil
}

// isHidden returns true if excluding hidden files is enabled and the path relative to prefix is hidden.
func (r *Resolver) isHidden(path, prefix string) bool {
	if !r.excludeHidden {
		return false
	}

	relPath, err := filepath.Rel(prefix, path)
	if err != nil {
		return false
	}

	return util.IsHiddenPath(relPath)
}
