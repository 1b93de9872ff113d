package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dkerobean/WoocommerceOrders/internal/store"
)

// Discipline says what a CSV writer does with a file left by an earlier run.
type Discipline int

const (
	// Replace rewrites the file with a fresh header and this run's rows.
	Replace Discipline = iota
	// Append writes the header only when the file is new, then adds rows.
	Append
)

func (d Discipline) String() string {
	if d == Append {
		return "append"
	}
	return "replace"
}

// writeCSV writes header and rows to path following d.
func writeCSV(path string, d Discipline, header []string, rows [][]string) error {
	switch d {
	case Replace:
		buf := new(bytes.Buffer)
		if err := encodeCSV(buf, header, rows); err != nil {
			return errors.Wrapf(err, "failed encode %s", path)
		}
		return store.WriteFileAtomic(path, buf.Bytes(), 0644)
	case Append:
		return appendCSV(path, header, rows)
	}
	return errors.Errorf("unknown discipline %d", d)
}

func appendCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed os.MkdirAll(%s)", filepath.Dir(path))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed os.OpenFile(%s)", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, "failed stat %s", path)
	}
	if info.Size() > 0 {
		header = nil
	}

	if err := encodeCSV(f, header, rows); err != nil {
		return errors.Wrapf(err, "failed append %s", path)
	}
	return errors.Wrapf(f.Sync(), "failed sync %s", path)
}

func encodeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if header != nil {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
