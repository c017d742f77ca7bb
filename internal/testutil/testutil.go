package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTempScheduleFile creates a temporary schedule file with the given
// content and returns the file path and a cleanup function.
func CreateTempScheduleFile(t *testing.T, content string) (string, func()) {
	t.Helper()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.cron")

	err := os.WriteFile(tmpFile, []byte(content), 0644)
	if err != nil {
		t.Fatalf("failed to create temp schedule file: %v", err)
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	return tmpFile, cleanup
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
