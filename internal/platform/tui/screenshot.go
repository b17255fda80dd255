package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/balloon-math/internal/core"
)

// screenshotDir returns ~/.balloons/screenshots, or a relative directory when
// the home directory is unknown.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".balloons", "screenshots")
}

// writeScreenshot saves the screen as plain text and returns the file path.
func writeScreenshot(dir string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	path := filepath.Join(dir, "balloons_"+now.Format("20060102_150405")+".txt")
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
