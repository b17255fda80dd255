package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/balloon-math/internal/core"
)

func TestWriteScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "(7)")

	now := time.Date(2024, 5, 1, 13, 4, 5, 0, time.UTC)
	path, err := writeScreenshot(dir, s, now)
	if err != nil {
		t.Fatalf("writeScreenshot: %v", err)
	}

	if filepath.Base(path) != "balloons_20240501_130405.txt" {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if string(data) != "(7) \n    " {
		t.Errorf("screenshot = %q", data)
	}
}
