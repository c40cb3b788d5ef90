// Package catalog defines the media dimension catalog and its JSON form.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry pairs a media file path with its pixel dimensions. Any entry in a
// written catalog has strictly positive width and height.
type Entry struct {
	Path   string
	Width  int
	Height int
}

// MarshalJSON encodes the entry as ["path", [width, height]].
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Path, [2]int{e.Width, e.Height}})
}

// UnmarshalJSON decodes the ["path", [width, height]] form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("entry has %d elements, want 2", len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.Path); err != nil {
		return fmt.Errorf("invalid entry path: %w", err)
	}
	var dims []int
	if err := json.Unmarshal(raw[1], &dims); err != nil {
		return fmt.Errorf("invalid entry dimensions: %w", err)
	}
	if len(dims) != 2 {
		return fmt.Errorf("entry has %d dimensions, want 2", len(dims))
	}
	e.Width, e.Height = dims[0], dims[1]
	return nil
}

// Catalog is the ordered list of entries produced by one scan.
type Catalog []Entry

// Write serializes the catalog to path as a JSON array, overwriting any
// previous contents. An empty catalog writes [].
func Write(path string, c Catalog) error {
	if c == nil {
		c = Catalog{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a catalog file previously written by Write.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return c, nil
}
