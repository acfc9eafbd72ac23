// Package viewsjson writes a computed view set to a JSON file, the
// output sink of the one-shot compute mode.
package viewsjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"riskmap/internal/logger"
	"riskmap/pkg/models"
)

// Write creates path (and its directory) and writes the view set as
// indented JSON.
func Write(path string, set *models.ViewSet) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode views: %w", err)
	}

	logger.Infof("Views written: %s", path)
	return nil
}
