package export

import (
	"archive/zip"
	"fmt"
	"io"
)

// Names of the files inside a bundle.
const (
	StatementFile = "statement.csv"
	SummaryFile   = "summary.txt"
)

// WriteBundle writes a zip archive holding the CSV statement and its plain-text summary.
func WriteBundle(w io.Writer, st *Statement) error {
	zw := zip.NewWriter(w)

	f, err := zw.Create(StatementFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", StatementFile, err)
	}

	if err := WriteCSV(f, st); err != nil {
		return err
	}

	f, err = zw.Create(SummaryFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", SummaryFile, err)
	}

	if _, err := io.WriteString(f, Summary(st)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish bundle: %w", err)
	}

	return nil
}
