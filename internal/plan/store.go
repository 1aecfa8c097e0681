package plan

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the reading-plan artifact from disk. Called fresh on every
// announcer firing so external edits take effect without a restart.
func Load(path string) ([]DayRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reading plan at %s: %w", path, err)
	}

	var records []DayRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid JSON in reading plan at %s: %w", path, err)
	}

	return records, nil
}

// Save writes the records as a pretty-printed JSON array.
func Save(path string, records []DayRecord) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode reading plan: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write reading plan to %s: %w", path, err)
	}

	return nil
}
