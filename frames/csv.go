package frames

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoRows is returned by WriteCSV for a frame with no data rows; no file
// is created.
var ErrNoRows = errors.New("frames: no rows to write")

// ReadCSV reads a comma-delimited file into a Frame. The first record is the
// header; every cell is kept as text.
func ReadCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv %q: missing header", path)
	}

	frame := New(records[0]...)
	for _, record := range records[1:] {
		if err := frame.Append(record...); err != nil {
			return nil, fmt.Errorf("read csv %q: %w", path, err)
		}
	}
	return frame, nil
}

// WriteCSV writes the frame as a comma-delimited file with every field
// quoted, creating parent directories as needed. Frames without rows return
// ErrNoRows and leave no file behind.
func WriteCSV(path string, f *Frame) error {
	if f.Len() == 0 {
		return ErrNoRows
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write csv %q: %w", path, err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write csv %q: %w", path, err)
	}

	w := bufio.NewWriter(out)
	writeQuoted(w, f.Columns)
	for _, row := range f.Rows {
		writeQuoted(w, row)
	}

	if err := w.Flush(); err != nil {
		out.Close()
		return fmt.Errorf("write csv %q: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write csv %q: %w", path, err)
	}
	return nil
}

// writeQuoted writes one record with full quoting (every field, not just the
// ones that need it), since encoding/csv only quotes minimally.
func writeQuoted(w *bufio.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteByte('\n')
}
