package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// writeJSON writes the snapshot as one indented JSON document under
// <dir>/json/universities_export_<timestamp>.json.
func (e *Exporter) writeJSON(snap *Snapshot) (string, error) {
	dir, err := e.ensureDir("json")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir,
		fmt.Sprintf("universities_export_%s.json", snap.ExportDate.Format(timestampLayout)))

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return "", fmt.Errorf("failed to write JSON export: %w", writeErr)
	}

	e.log.Info("wrote JSON export", "path", path)
	return path, nil
}

// LoadSnapshot reads a JSON export back into memory.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var snap Snapshot
	if unmarshalErr := json.Unmarshal(data, &snap); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, unmarshalErr)
	}

	return &snap, nil
}
