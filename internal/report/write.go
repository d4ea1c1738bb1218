package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName returns the report file name for a UTC date.
func FileName(date string) string {
	return fmt.Sprintf("Macro_Report_%s.md", date)
}

// Write saves the rendered brief under dir and returns the full path.
func Write(dir, date, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report dir: %w", err)
	}

	path := filepath.Join(dir, FileName(date))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
