package qa

import (
	"github.com/introvert24312/autoword-sub003/internal/score"
)

// Config holds every tunable the engine recognizes, with defaults that work
// unmodified. Unknown knobs do not exist: construction validates everything
// eagerly and the engine fails fast on a bad value.
type Config struct {
	// MinFontSizePt is the accessibility floor for heading fonts.
	MinFontSizePt float64
	// LegibleHeadingSizePt is the size at which a non-bold heading still
	// counts as legible.
	LegibleHeadingSizePt float64
	// MaxHeadingLevelSkip is the largest permitted outline descent between
	// consecutive headings.
	MaxHeadingLevelSkip int
	// TOCCoverageRatio is the fraction of headings a TOC result must list
	// before it counts as stale.
	TOCCoverageRatio float64
	// MaxHeadingSizeRatio bounds heading-family size spread.
	MaxHeadingSizeRatio float64

	// Weights distributes the overall score across the sub-scores.
	Weights score.Weights
	// Penalties is the per-severity deduction scheme.
	Penalties score.Penalties

	// IncludeInfo keeps info-severity findings in the output. When false
	// they are dropped before scoring, so the reported scores stay
	// explainable by the reported issues.
	IncludeInfo bool
	// MaxRecommendations caps the suggestion list; 0 means unbounded.
	MaxRecommendations int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinFontSizePt:        8,
		LegibleHeadingSizePt: 14,
		MaxHeadingLevelSkip:  1,
		TOCCoverageRatio:     0.5,
		MaxHeadingSizeRatio:  2.0,
		Weights:              score.DefaultWeights(),
		Penalties:            score.DefaultPenalties(),
		IncludeInfo:          false,
		MaxRecommendations:   0,
	}
}

// Validate rejects configuration the engine cannot honor. It returns a
// *ConfigError so callers can tell a configuration bug apart from document
// findings.
func (c Config) Validate() error {
	if c.MinFontSizePt <= 0 {
		return configErr("min font size must be positive, got %.4g", c.MinFontSizePt)
	}
	if c.LegibleHeadingSizePt < c.MinFontSizePt {
		return configErr("legible heading size %.4g is below the accessibility floor %.4g",
			c.LegibleHeadingSizePt, c.MinFontSizePt)
	}
	if c.MaxHeadingLevelSkip < 1 {
		return configErr("max heading level skip must be at least 1, got %d", c.MaxHeadingLevelSkip)
	}
	if c.TOCCoverageRatio <= 0 || c.TOCCoverageRatio > 1 {
		return configErr("toc coverage ratio must be in (0,1], got %.4g", c.TOCCoverageRatio)
	}
	if c.MaxRecommendations < 0 {
		return configErr("max recommendations must be non-negative, got %d", c.MaxRecommendations)
	}
	if err := c.Weights.Validate(); err != nil {
		return configErr("quality weights: %v", err)
	}
	if err := c.Penalties.Validate(); err != nil {
		return configErr("penalties: %v", err)
	}
	return nil
}
