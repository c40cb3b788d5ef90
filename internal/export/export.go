// Package export converts a dimension catalog into analysis-friendly
// formats.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/allenv0/snowball/internal/catalog"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Record is the flattened row written to Parquet and YAML exports.
type Record struct {
	Path   string `parquet:"path" yaml:"path"`
	Width  int    `parquet:"width" yaml:"width"`
	Height int    `parquet:"height" yaml:"height"`
}

// Records flattens a catalog into export rows, preserving order.
func Records(c catalog.Catalog) []Record {
	rows := make([]Record, 0, len(c))
	for _, e := range c {
		rows = append(rows, Record{Path: e.Path, Width: e.Width, Height: e.Height})
	}
	return rows
}

// Write converts the catalog to the format implied by the output file
// extension.
func Write(c catalog.Catalog, outputPath string) error {
	ext := strings.ToLower(filepath.Ext(outputPath))

	switch ext {
	case ".parquet":
		return writeParquet(c, outputPath)
	case ".yaml", ".yml":
		return writeYAML(c, outputPath)
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .parquet, .yaml)", ext)
	}
}

func writeParquet(c catalog.Catalog, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Record](file)
	if rows := Records(c); len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

func writeYAML(c catalog.Catalog, path string) error {
	data, err := yaml.Marshal(Records(c))
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write yaml file: %w", err)
	}
	return nil
}
