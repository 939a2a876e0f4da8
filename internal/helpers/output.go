package helpers

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureOutputDir creates the export destination directory if missing.
func EnsureOutputDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// ExportPath derives a per-table export file name by suffixing the base name,
// e.g. base "outbound" + suffix "ExternalTenantSummary" -> outbound_ExternalTenantSummary.csv
func ExportPath(dir, base, suffix, ext string) string {
	name := fmt.Sprintf("%s_%s.%s", base, suffix, ext)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
