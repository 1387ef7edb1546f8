package qa

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/introvert24312/autoword-sub003/internal/score"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to flags; pointer fields distinguish "absent" from zero so the
// file only overrides what it names.
type FileConfig struct {
	Accessibility struct {
		MinFontSizePt        *float64 `yaml:"minFontSizePt" json:"minFontSizePt"`
		LegibleHeadingSizePt *float64 `yaml:"legibleHeadingSizePt" json:"legibleHeadingSizePt"`
		MaxHeadingLevelSkip  *int     `yaml:"maxHeadingLevelSkip" json:"maxHeadingLevelSkip"`
	} `yaml:"accessibility" json:"accessibility"`

	Fields struct {
		TOCCoverageRatio *float64 `yaml:"tocCoverageRatio" json:"tocCoverageRatio"`
	} `yaml:"fields" json:"fields"`

	Style struct {
		MaxHeadingSizeRatio *float64 `yaml:"maxHeadingSizeRatio" json:"maxHeadingSizeRatio"`
	} `yaml:"style" json:"style"`

	Weights   *score.Weights   `yaml:"weights" json:"weights"`
	Penalties *score.Penalties `yaml:"penalties" json:"penalties"`

	IncludeInfo        *bool `yaml:"includeInfo" json:"includeInfo"`
	MaxRecommendations *int  `yaml:"maxRecommendations" json:"maxRecommendations"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if yerr := yaml.Unmarshal(b, &fc); yerr != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", yerr, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values onto cfg. Only fields present in the
// file change; validation happens later, once, in Config.Validate.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if fc.Accessibility.MinFontSizePt != nil {
		cfg.MinFontSizePt = *fc.Accessibility.MinFontSizePt
	}
	if fc.Accessibility.LegibleHeadingSizePt != nil {
		cfg.LegibleHeadingSizePt = *fc.Accessibility.LegibleHeadingSizePt
	}
	if fc.Accessibility.MaxHeadingLevelSkip != nil {
		cfg.MaxHeadingLevelSkip = *fc.Accessibility.MaxHeadingLevelSkip
	}
	if fc.Fields.TOCCoverageRatio != nil {
		cfg.TOCCoverageRatio = *fc.Fields.TOCCoverageRatio
	}
	if fc.Style.MaxHeadingSizeRatio != nil {
		cfg.MaxHeadingSizeRatio = *fc.Style.MaxHeadingSizeRatio
	}
	if fc.Weights != nil {
		cfg.Weights = *fc.Weights
	}
	if fc.Penalties != nil {
		cfg.Penalties = *fc.Penalties
	}
	if fc.IncludeInfo != nil {
		cfg.IncludeInfo = *fc.IncludeInfo
	}
	if fc.MaxRecommendations != nil {
		cfg.MaxRecommendations = *fc.MaxRecommendations
	}
}
