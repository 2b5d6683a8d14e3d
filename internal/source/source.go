// Package source opens the readable streams that feed the tokenizer.
//
// Files ending in .gz or .xz are decompressed transparently; everything else
// is read as-is. A source is read exactly once and closed by the caller.
package source

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Open returns a reader over the decoded contents of path and the number of
// bytes that will be read from disk.
func Open(path string) (io.ReadCloser, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	var size int64
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}

	rc, err := decode(path, file)
	if err != nil {
		_ = file.Close()
		return nil, 0, err
	}
	return rc, size, nil
}

func decode(path string, file *os.File) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("gzip header: %w", err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, file}}, nil
	case ".xz":
		xr, err := xz.NewReader(bufio.NewReader(file))
		if err != nil {
			return nil, fmt.Errorf("xz header: %w", err)
		}
		return &stackedCloser{Reader: xr, closers: []io.Closer{file}}, nil
	default:
		return file, nil
	}
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
