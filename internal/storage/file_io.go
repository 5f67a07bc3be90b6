package storage

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/10Draken01/Docker-Front/internal/model"
)

// FormatFromFilename guesses the export format from the file extension,
// defaulting to json.
func FormatFromFilename(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".xml") {
		return "xml"
	}
	return "json"
}

// FileExport writes a roster to a file in the specified format (JSON or XML).
func FileExport(roster *model.Roster, filename string, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(roster, "", "  ")
	case "xml":
		data, err = xml.MarshalIndent(roster, "", "  ")
		if err == nil {
			data = append([]byte(xml.Header), data...)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// FileImport reads a roster from a file in the specified format (JSON or XML).
func FileImport(filename string, format string) (*model.Roster, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var roster model.Roster
	switch format {
	case "json":
		err = json.Unmarshal(data, &roster)
	case "xml":
		err = xml.Unmarshal(data, &roster)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return &roster, nil
}
