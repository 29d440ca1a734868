// Package runlock serializes extract runs that target the same output file.
package runlock

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// Suffix is appended to the output path to form the lock file path.
const Suffix = ".lock"

// ErrLocked is returned when another run holds the lock.
var ErrLocked = errors.New("output is locked by another movieinfo run")

// Lock is an exclusive advisory lock tied to one output file.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file path guarding output.
func PathFor(output string) string {
	return output + Suffix
}

// Acquire takes the lock for output without blocking.
func Acquire(output string) (*Lock, error) {
	path := PathFor(output)
	l := &Lock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return l, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks. The lock file is left in place.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}
