package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const LockName = ".run.lock"

// ErrLocked is returned by Lock when another run holds the data directory.
var ErrLocked = errors.New("another run holds the lock")

// RunLock serializes runs against one data directory through an exclusively
// created lock file.
type RunLock struct {
	path string
}

// Lock creates dir/.run.lock. It fails with ErrLocked when the file exists.
// A lock left behind by a crashed run has to be removed by hand.
func Lock(dir string) (*RunLock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed os.MkdirAll(%s)", dir)
	}

	path := filepath.Join(dir, LockName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if os.IsExist(err) {
		owner, _ := os.ReadFile(path)
		return nil, errors.Wrapf(ErrLocked, "%s (%s)", path, strings.TrimSpace(string(owner)))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed create %s", path)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "pid=%s started=%s\n", strconv.Itoa(os.Getpid()), time.Now().Format(time.RFC3339))
	if err != nil {
		_ = os.Remove(path)
		return nil, errors.Wrapf(err, "failed write %s", path)
	}
	return &RunLock{path: path}, nil
}

func (l *RunLock) Unlock() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed os.Remove(%s)", l.path)
	}
	return nil
}
