package sync

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/dkerobean/WoocommerceOrders/internal/export"
)

// NextRunNumber returns one more than the highest run number stamped on a
// file of day in dir, 1 when there is none. Files are matched on
// <anything>_<dd-mm-yyyy>_run<N>.<ext>.
func NextRunNumber(dir string, day time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 1, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "failed os.ReadDir(%s)", dir)
	}

	pattern := regexp.MustCompile(`_` + regexp.QuoteMeta(day.Format(export.FileDateLayout)) + `_run([0-9]+)\.[^.]+$`)

	highest := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}
