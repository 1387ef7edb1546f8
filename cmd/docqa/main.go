package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/introvert24312/autoword-sub003/internal/docmodel"
	"github.com/introvert24312/autoword-sub003/internal/qa"
	"github.com/introvert24312/autoword-sub003/internal/recommend"
	"github.com/introvert24312/autoword-sub003/internal/report"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		comparePath string
		configPath  string
		outJSON     string
		outPDF      string

		minFontSize  float64
		legibleSize  float64
		maxLevelSkip int
		tocRatio     float64

		weightStyle   float64
		weightXref    float64
		weightAccess  float64
		weightFmt     float64
		includeInfo   bool
		maxRecommends int

		llmBaseURL string
		llmModel   string
		llmKey     string

		verbose bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to a structural snapshot (JSON or YAML)")
	flag.StringVar(&comparePath, "compare", "", "Optional second snapshot taken after an edit pass; prints a before/after delta")
	flag.StringVar(&configPath, "config", os.Getenv("DOCQA_CONFIG"), "Optional YAML/JSON config file")
	flag.StringVar(&outJSON, "out.json", "", "Write the full assessment as JSON to this path")
	flag.StringVar(&outPDF, "out.pdf", "", "Write the summary report as PDF to this path")
	flag.Float64Var(&minFontSize, "min.fontSize", 8, "Accessibility floor for heading font sizes (points)")
	flag.Float64Var(&legibleSize, "min.legibleSize", 14, "Size at which a non-bold heading still counts as legible (points)")
	flag.IntVar(&maxLevelSkip, "max.headingSkip", 1, "Largest permitted outline descent between consecutive headings")
	flag.Float64Var(&tocRatio, "toc.coverage", 0.5, "Fraction of headings a TOC result must list before it counts as stale")
	flag.Float64Var(&weightStyle, "weight.style", 0.30, "Overall-score weight of the style sub-score")
	flag.Float64Var(&weightXref, "weight.crossReference", 0.25, "Overall-score weight of the cross-reference sub-score")
	flag.Float64Var(&weightAccess, "weight.accessibility", 0.25, "Overall-score weight of the accessibility sub-score")
	flag.Float64Var(&weightFmt, "weight.formatting", 0.20, "Overall-score weight of the formatting sub-score")
	flag.BoolVar(&includeInfo, "info", false, "Include info-severity findings in the output")
	flag.IntVar(&maxRecommends, "max.recommendations", 0, "Cap the recommendation list (0 = unbounded)")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for the recommendation advisor (optional)")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for the recommendation advisor (optional)")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the recommendation advisor")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if inputPath == "" {
		log.Fatal().Msg("missing -input snapshot path")
	}

	cfg := qa.DefaultConfig()
	if configPath != "" {
		fc, err := qa.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config file")
		}
		qa.ApplyFileConfig(&cfg, fc)
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min.fontSize":
			cfg.MinFontSizePt = minFontSize
		case "min.legibleSize":
			cfg.LegibleHeadingSizePt = legibleSize
		case "max.headingSkip":
			cfg.MaxHeadingLevelSkip = maxLevelSkip
		case "toc.coverage":
			cfg.TOCCoverageRatio = tocRatio
		case "weight.style":
			cfg.Weights.Style = weightStyle
		case "weight.crossReference":
			cfg.Weights.CrossReference = weightXref
		case "weight.accessibility":
			cfg.Weights.Accessibility = weightAccess
		case "weight.formatting":
			cfg.Weights.Formatting = weightFmt
		case "info":
			cfg.IncludeInfo = includeInfo
		case "max.recommendations":
			cfg.MaxRecommendations = maxRecommends
		}
	})

	engine, err := qa.New(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("engine configuration rejected")
	}

	ctx := context.Background()

	asmt := assess(ctx, engine, inputPath)

	// Optional advisor pass over the deterministic recommendations.
	if llmModel != "" {
		clientCfg := openai.DefaultConfig(llmKey)
		if llmBaseURL != "" {
			clientCfg.BaseURL = llmBaseURL
		}
		advisor := &recommend.Advisor{Client: openai.NewClientWithConfig(clientCfg), Model: llmModel}
		asmt.Metrics.Recommendations = advisor.Advise(ctx, asmt.Issues, asmt.Metrics, asmt.Metrics.Recommendations)
	}

	fmt.Print(report.Summary(asmt.Metrics, asmt.Issues))
	printGrade(asmt.Metrics.Grade)

	if comparePath != "" {
		after := assess(ctx, engine, comparePath)
		delta := report.Diff(asmt.Metrics, after.Metrics, asmt.Issues, after.Issues)
		fmt.Println()
		fmt.Print(report.FormatDelta(delta))
	}

	if outJSON != "" {
		b, err := json.MarshalIndent(asmt, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to encode assessment")
		}
		if err := os.WriteFile(outJSON, append(b, '\n'), 0o644); err != nil {
			log.Fatal().Err(err).Str("path", outJSON).Msg("failed to write JSON output")
		}
		log.Info().Str("path", outJSON).Msg("wrote JSON assessment")
	}
	if outPDF != "" {
		if err := report.WritePDF(asmt.Metrics, asmt.Issues, outPDF); err != nil {
			log.Fatal().Err(err).Str("path", outPDF).Msg("failed to write PDF report")
		}
		log.Info().Str("path", outPDF).Msg("wrote PDF report")
	}
}

func assess(ctx context.Context, engine *qa.Engine, path string) *qa.Assessment {
	doc, err := docmodel.LoadSnapshot(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to load snapshot")
	}
	asmt, err := engine.Assess(ctx, doc)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("assessment failed")
	}
	return asmt
}

func printGrade(grade string) {
	c := color.New(color.FgRed, color.Bold)
	switch grade {
	case "A":
		c = color.New(color.FgGreen, color.Bold)
	case "B":
		c = color.New(color.FgCyan, color.Bold)
	case "C", "D":
		c = color.New(color.FgYellow, color.Bold)
	}
	fmt.Printf("Final grade: %s\n", c.Sprint(grade))
}
