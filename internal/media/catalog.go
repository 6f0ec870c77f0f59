package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ScanFolder builds the ordered item list for a folder of images. Files with
// unrecognized extensions and subdirectories are skipped; items are ordered
// by display name. The ids are fresh per scan, so a rescan of the same folder
// is a new item-set session.
func ScanFolder(dir string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	var items []Item
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		kind := KindForPath(entry.Name())
		if kind == KindUnknown {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		items = append(items, Item{
			ID:   uuid.NewString(),
			Name: name,
			Path: filepath.Join(dir, entry.Name()),
			Kind: kind,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}
