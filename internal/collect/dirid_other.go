//go:build !unix

package collect

import "path/filepath"

type dirID struct {
	path string
}

func identify(dir string) (dirID, error) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return dirID{}, err
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return dirID{}, err
	}
	return dirID{path: abs}, nil
}
