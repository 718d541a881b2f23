package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultSnapshotDir is where reports land when no directory is configured.
const DefaultSnapshotDir = "collected_news"

// Dir persists formatted news reports as timestamped text files.
type Dir struct {
	path string
}

// NewDir creates the snapshot directory if needed and returns a store
// over it.
func NewDir(path string) (*Dir, error) {
	if path == "" {
		path = DefaultSnapshotDir
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	return &Dir{path: path}, nil
}

// Save writes the report to a new timestamped file and returns its path.
// Filenames follow news_articles_<YYYYMMDD_HHMMSS>.txt so successive
// snapshots stay distinguishable.
func (d *Dir) Save(report string) (string, error) {
	filename := fmt.Sprintf("news_articles_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(d.path, filename)

	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}
