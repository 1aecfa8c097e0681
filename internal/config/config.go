// Package config loads and validates the bot configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config holds the bot's startup configuration. Immutable after Load.
type Config struct {
	Token        string `json:"token"`
	ChannelID    int64  `json:"channel_id"`
	Timezone     string `json:"timezone"`
	JSONFilePath string `json:"json_file_path"`
}

var requiredFields = []string{"token", "channel_id", "timezone", "json_file_path"}

// Load reads the JSON configuration at path. All four fields are mandatory;
// a missing file, malformed JSON, and a missing field each produce their own
// error so startup logs say exactly what is wrong.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found at %s: %w", path, err)
	}

	// Pre-pass over raw keys: encoding/json cannot tell a missing field
	// from a zero value.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON format in config file %s: %w", path, err)
	}

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("missing required field in config: %s", field)
		}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid JSON format in config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Location resolves the configured IANA timezone name.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
