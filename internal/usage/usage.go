// Package usage records when the application was started.
package usage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout is the format of each recorded line.
const TimestampLayout = "2006-01-02 15:04:05"

// Record appends now as a single CSV row to the file at path, creating the
// file and its directory if needed.
func Record(path string, now time.Time) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create usage log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open usage log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{now.Format(TimestampLayout)}); err != nil {
		return fmt.Errorf("failed to write usage log: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush usage log: %w", err)
	}
	return nil
}
