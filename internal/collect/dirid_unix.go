//go:build unix

package collect

import (
	"golang.org/x/sys/unix"
)

type dirID struct {
	dev uint64
	ino uint64
}

// identify follows symlinks, so every path to the same directory shares an id.
func identify(dir string) (dirID, error) {
	var st unix.Stat_t
	if err := unix.Stat(dir, &st); err != nil {
		return dirID{}, err
	}
	return dirID{dev: uint64(st.Dev), ino: uint64(st.Ino)}, nil
}
