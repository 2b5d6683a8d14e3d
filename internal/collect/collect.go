// Package collect enumerates the files a run will count.
//
// Directories are walked recursively to any depth, following symlinks. Each
// directory's identity is recorded before it is read so a directory reached a
// second time, through a symlink cycle or an overlapping argument, is never
// walked again. Unreadable directories and missing paths are logged and
// skipped; collection itself never fails.
package collect

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"wordfreq/internal/logging"
)

// Options controls collection.
type Options struct {
	// Ignore reports whether a file with the given base name is excluded.
	Ignore func(base string) bool
	Logger *slog.Logger
}

type walker struct {
	opts    Options
	logger  *slog.Logger
	visited map[dirID]struct{}
	files   []string
}

// Files returns the regular files found under paths, in traversal order.
func Files(paths []string, opts Options) []string {
	w := &walker{
		opts:    opts,
		logger:  logging.NewComponentLogger(opts.Logger, "collect"),
		visited: make(map[dirID]struct{}),
	}
	for _, path := range paths {
		w.visit(path)
	}
	w.logger.Debug("collection complete", logging.Int("files", len(w.files)))
	return w.files
}

func (w *walker) visit(path string) {
	info, err := os.Stat(path)
	if err != nil {
		w.warn("path skipped", "path_unavailable", path, err)
		return
	}
	switch {
	case info.IsDir():
		w.walkDir(path)
	case info.Mode().IsRegular():
		w.addFile(path)
	default:
		w.logger.Debug("skipping non-regular file", logging.String(logging.FieldSource, path))
	}
}

func (w *walker) walkDir(dir string) {
	id, err := identify(dir)
	if err != nil {
		w.warn("directory skipped", "directory_unreadable", dir, err)
		return
	}
	if _, seen := w.visited[id]; seen {
		w.logger.Debug("directory already visited", logging.String(logging.FieldSource, dir))
		return
	}
	w.visited[id] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.warn("directory skipped", "directory_unreadable", dir, err)
		if len(entries) == 0 {
			return
		}
	}
	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		if entry.Type()&fs.ModeSymlink != 0 {
			w.visit(child)
			continue
		}
		switch {
		case entry.IsDir():
			w.walkDir(child)
		case entry.Type().IsRegular():
			w.addFile(child)
		}
	}
}

func (w *walker) addFile(path string) {
	if w.opts.Ignore != nil && w.opts.Ignore(filepath.Base(path)) {
		w.logger.Debug("ignoring file", logging.String(logging.FieldSource, path))
		return
	}
	w.files = append(w.files, path)
}

func (w *walker) warn(msg, event, path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		event = "path_missing"
	}
	logging.WarnWithContext(w.logger, msg, event,
		logging.String(logging.FieldSource, path),
		logging.Error(err),
		logging.String(logging.FieldImpact, "files under this path are not counted"),
	)
}
