//go:build unix

package lockfile

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// POSIX record lock over the whole file, i.e. the lock taken by lockf(3), which is
// what the printer monitoring software uses when writing the event file.
func lock(f *os.File) error {
	lk := unix.Flock_t{
		Type:   unix.F_WRLCK,
		Whence: io.SeekStart,
	}

	return unix.FcntlFlock(f.Fd(), unix.F_SETLKW, &lk)
}

func unlock(f *os.File) error {
	lk := unix.Flock_t{
		Type:   unix.F_UNLCK,
		Whence: io.SeekStart,
	}

	return unix.FcntlFlock(f.Fd(), unix.F_SETLK, &lk)
}
