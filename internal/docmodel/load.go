package docmodel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// LoadSnapshot reads a structural snapshot from a JSON or YAML file. The
// format follows the extension; unknown extensions try YAML first, then
// JSON. Decoding rejects unknown enum values; the input contract beyond
// shape is checked by the engine, not here.
func LoadSnapshot(path string) (*Structure, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var st Structure
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &st); err != nil {
			return nil, fmt.Errorf("parse yaml snapshot: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &st); err != nil {
			return nil, fmt.Errorf("parse json snapshot: %w", err)
		}
	default:
		if yerr := yaml.Unmarshal(b, &st); yerr != nil {
			if jerr := json.Unmarshal(b, &st); jerr != nil {
				return nil, fmt.Errorf("parse snapshot: %v (yaml) / %v (json)", yerr, jerr)
			}
		}
	}
	return &st, nil
}
