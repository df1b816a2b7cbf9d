// Package importer reads bulk task files, validating and converting them into
// domain tasks for transactional import.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a bulk task import.
type ImportSchema struct {
	Defaults *DefaultsImport `json:"defaults,omitempty"`
	Tasks    []TaskImport    `json:"tasks"`
}

// DefaultsImport defines file-wide defaults applied to tasks that omit the
// field.
type DefaultsImport struct {
	Category     string `json:"category,omitempty"`
	IntervalDays *int   `json:"interval_days,omitempty"`
}

// TaskImport defines one task in the import file. LastCompleted is a
// YYYY-MM-DD date; empty means the import time.
type TaskImport struct {
	Name          string `json:"name"`
	Category      string `json:"category,omitempty"`
	IntervalDays  *int   `json:"interval_days,omitempty"`
	LastCompleted string `json:"last_completed,omitempty"`
	Description   string `json:"description,omitempty"`
}

// LoadImportSchema reads and parses a task import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
