package lockfile

import (
	"fmt"
	"os"
)

// Empty is the content written to a consumed event file.
const Empty = "{}"

// WithLock holds an exclusive advisory lock on f for the duration of fn. The
// lock is released on every exit path, including a panic in fn.
func WithLock(f *os.File, fn func() error) (err error) {
	if err := lock(f); err != nil {
		return fmt.Errorf("unable to lock %s (%w)", f.Name(), err)
	}

	defer func() {
		if e := unlock(f); e != nil && err == nil {
			err = fmt.Errorf("unable to unlock %s (%w)", f.Name(), e)
		}
	}()

	return fn()
}

// Clear overwrites the file with an empty JSON object while holding the lock,
// creating the file if it does not exist.
func Clear(file string) (err error) {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}

	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return WithLock(f, func() error {
		if err := f.Truncate(0); err != nil {
			return err
		}

		if _, err := f.WriteAt([]byte(Empty), 0); err != nil {
			return err
		}

		return f.Sync()
	})
}
