// Package scanner implements the linear scan that builds a dimension
// catalog from a directory of media files.
package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/allenv0/snowball/internal/catalog"
	"github.com/allenv0/snowball/internal/imaging"
)

// SelectRoot picks the scan root. The conventional media subdirectory wins
// when it exists as a directory; otherwise the working directory is scanned
// and recorded paths carry no prefix.
func SelectRoot(dir string) (root string, prefixed bool) {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir, true
	}
	return ".", false
}

// Scan enumerates the immediate entries of the scan root and records pixel
// dimensions for every entry that decodes as an image. Entries that do not
// decode (non-image files, subdirectories, unreadable files) are skipped;
// no entry is ever recorded with partial dimensions. No recursion.
func Scan(dir string) (catalog.Catalog, error) {
	root, prefixed := SelectRoot(dir)
	slog.Debug("Scanning directory", "root", root, "prefixed", prefixed)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	cat := catalog.Catalog{}
	for _, entry := range entries {
		path := entry.Name()
		if prefixed {
			path = filepath.Join(root, entry.Name())
		}

		width, height, err := imaging.Dimensions(path)
		if err != nil {
			// e.g. .DS_Store, text files, nested directories
			slog.Debug("Skipping entry", "path", path, "err", err)
			continue
		}
		cat = append(cat, catalog.Entry{Path: path, Width: width, Height: height})
	}

	slog.Debug("Scan complete", "root", root, "cataloged", len(cat), "listed", len(entries))
	return cat, nil
}
