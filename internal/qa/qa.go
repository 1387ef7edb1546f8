// Package qa wires the check passes, the scoring engine, and the
// recommendation engine into a one-shot assessment pipeline. The pipeline
// is a pure function of (snapshot, configuration): it performs no I/O,
// holds no state between calls, and never mutates its input.
package qa

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/introvert24312/autoword-sub003/internal/checks"
	"github.com/introvert24312/autoword-sub003/internal/docmodel"
	"github.com/introvert24312/autoword-sub003/internal/recommend"
	"github.com/introvert24312/autoword-sub003/internal/score"
)

// Assessment is the result of one validation run: the merged findings and
// the metrics computed from them. Both are write-once; nothing in this
// package touches them after Assess returns.
type Assessment struct {
	Issues  []checks.Issue `json:"issues"`
	Metrics score.Metrics  `json:"metrics"`
}

// Engine runs the fixed set of check passes against snapshots. It is safe
// for concurrent use: Assess shares nothing between calls.
type Engine struct {
	cfg    Config
	passes []checks.Pass
	log    zerolog.Logger
}

// New validates cfg and builds an engine. The pass registry is a closed,
// fixed list; there is no dynamic lookup or registration.
func New(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg: cfg,
		passes: []checks.Pass{
			checks.IntegrityPass{},
			checks.StylePass{MaxHeadingSizeRatio: cfg.MaxHeadingSizeRatio},
			checks.AccessibilityPass{
				MaxLevelSkip:  cfg.MaxHeadingLevelSkip,
				MinFontSizePt: cfg.MinFontSizePt,
				LegibleSizePt: cfg.LegibleHeadingSizePt,
			},
			checks.FieldsPass{TOCCoverageRatio: cfg.TOCCoverageRatio},
		},
		log: logger,
	}, nil
}

// Assess runs every pass, merges their findings, scores the result, and
// derives recommendations. Contract violations in the snapshot surface as
// *InputError before any pass runs; document defects never do, they become
// issues in the result.
func (e *Engine) Assess(ctx context.Context, doc *docmodel.Structure) (*Assessment, error) {
	if err := doc.CheckShape(); err != nil {
		return nil, inputErr("%v", err)
	}

	// Passes are mutually independent, so they run concurrently; the merge
	// below keeps registry order, which keeps runs byte-identical.
	perPass := make([][]checks.Issue, len(e.passes))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range e.passes {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			perPass[i] = p.Check(doc)
			e.log.Debug().
				Str("pass", p.Name()).
				Int("issues", len(perPass[i])).
				Dur("took", time.Since(start)).
				Msg("check pass complete")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := checks.Merge(perPass...)
	if !e.cfg.IncludeInfo {
		merged = dropInfo(merged)
	}
	if err := verifyIssues(merged); err != nil {
		return nil, err
	}

	metrics := score.Compute(doc, merged, e.cfg.Weights, e.cfg.Penalties)
	metrics.Recommendations = recommend.Build(merged, metrics, e.cfg.MaxRecommendations)

	e.log.Info().
		Float64("overall", metrics.Overall).
		Str("grade", metrics.Grade).
		Int("issues", len(merged)).
		Msg("assessment complete")

	return &Assessment{Issues: merged, Metrics: metrics}, nil
}

// dropInfo filters info-severity findings out of the merged list.
func dropInfo(issues []checks.Issue) []checks.Issue {
	out := issues[:0:0]
	for _, is := range issues {
		if is.Severity != checks.SeverityInfo {
			out = append(out, is)
		}
	}
	return out
}

// verifyIssues guards the engine's own output contract. A pass emitting an
// unknown severity or category is a bug in this tool, reported as such and
// never as a document finding.
func verifyIssues(issues []checks.Issue) error {
	for _, is := range issues {
		if !is.Severity.Valid() {
			return fmt.Errorf("%w: pass emitted unknown severity %q", ErrInternal, is.Severity)
		}
		if !is.Category.Valid() {
			return fmt.Errorf("%w: pass emitted unknown category %q", ErrInternal, is.Category)
		}
	}
	return nil
}
