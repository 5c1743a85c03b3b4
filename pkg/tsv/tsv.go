// Package tsv writes tab separated tables with a header row.
package tsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type Writer struct {
	cw *csv.Writer
}

func NewWriter(w io.Writer, header ...string) (*Writer, error) {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return nil, err
		}
	}
	return &Writer{cw: cw}, nil
}

func (w *Writer) Write(row ...string) error {
	return w.cw.Write(row)
}

// Flush writes buffered rows and reports any earlier write error.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// WriteFile creates path and writes header plus rows to it.
func WriteFile(path string, header []string, rows [][]string) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}

	w, err := NewWriter(fh, header...)
	if err != nil {
		fh.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(row...); err != nil {
			fh.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		fh.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return fh.Close()
}
