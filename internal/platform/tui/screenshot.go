package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultScreenshotDir returns ~/.flappy/screenshots, or empty if home is unavailable.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "screenshots")
}

// saveScreenshot writes the composed field as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}

	path, err := writeScreenshot(m.screenshotDir, m.console.Compose().String(), time.Now())
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot stores text under dir with a timestamped name.
func writeScreenshot(dir, text string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("flappy_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
