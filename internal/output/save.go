package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/qdm12/rtmask/internal/models"
)

// Write renders the results to w in the format given.
func Write(w io.Writer, format Format, results []models.ConversionResult,
	now time.Time) error {
	switch format {
	case FormatText:
		PrintConsole(w, results)
		return nil
	case FormatJSON:
		return WriteJSON(w, results)
	case FormatCSV:
		return WriteCSV(w, results)
	case FormatHTML:
		return WriteHTML(w, results, now)
	default:
		return fmt.Errorf("%w: %s", ErrFormatUnknown, format)
	}
}

// Save writes the results to the file at path, creating its
// parent directories if needed.
func Save(path string, format Format, results []models.ConversionResult,
	now time.Time) (err error) {
	const dirPerm = os.FileMode(0o755)
	err = os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	const filePerm = os.FileMode(0o644)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	err = Write(file, format, results, now)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("writing %s results: %w", format, err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
