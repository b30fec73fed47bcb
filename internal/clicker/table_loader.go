package clicker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/KissClicker_Go/internal/domain"
	"github.com/osse101/KissClicker_Go/internal/validation"
)

// LoadTables reads content tables from a JSON or YAML file.
// An empty path yields the built-in defaults.
func LoadTables(path string) (domain.ClickerTables, error) {
	if path == "" {
		return DefaultTables(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ClickerTables{}, fmt.Errorf("failed to read clicker tables %s: %w", path, err)
	}

	tables, err := ParseTables(data, filepath.Ext(path))
	if err != nil {
		return domain.ClickerTables{}, fmt.Errorf("%s: %w", path, err)
	}
	return tables, nil
}

// ParseTables decodes and validates tables. ext selects the format
// (".yaml"/".yml" for YAML, anything else JSON).
func ParseTables(data []byte, ext string) (domain.ClickerTables, error) {
	var tables domain.ClickerTables

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tables); err != nil {
			return domain.ClickerTables{}, fmt.Errorf("%w: %v", domain.ErrInvalidTables, err)
		}
	default:
		if err := validation.ValidateClickerTables(data); err != nil {
			return domain.ClickerTables{}, fmt.Errorf("%w: %v", domain.ErrInvalidTables, err)
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&tables); err != nil {
			return domain.ClickerTables{}, fmt.Errorf("%w: %v", domain.ErrInvalidTables, err)
		}
	}

	if err := ValidateTables(tables); err != nil {
		return domain.ClickerTables{}, err
	}
	return withRewardDefaults(tables), nil
}
