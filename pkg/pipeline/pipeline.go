// Package pipeline provides the core analysis pipeline for signet.
//
// This package implements the complete load → partition → verify → render
// → save sequence so the CLI stays thin. Stages are optional and driven by
// Options; the order is fixed: partitioning happens before verification so
// the checks see the decomposed graph, and serialization runs last so the
// output reflects every mutation and derived attribute.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:         "karate.gml",
//	    Components:    2,
//	    VerifyBalance: true,
//	    Plot:          pipeline.PlotAttribute,
//	    Output:        "out.gml",
//	})
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/render"
	"github.com/kachup1/signet/pkg/sgraph"
)

// Plot style re-exports so CLI code doesn't import pkg/render directly.
const (
	PlotAttribute  = render.StyleAttribute
	PlotClustering = render.StyleClustering
	PlotOverlap    = render.StyleOverlap
)

// Format constants for rendered artifacts.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatDOT: true,
}

// DefaultFormat is used when no formats are requested with a plot.
const DefaultFormat = FormatSVG

// DefaultAttribute is the node attribute used for balance verification and
// attribute plots when none is given.
const DefaultAttribute = sgraph.ColorAttr

// Options configures a pipeline run. Zero values disable the associated
// stage; only Input is required.
type Options struct {
	// Input is the path of the GML file to analyze.
	Input string `json:"input"`

	// Components is the target number of connected components. Zero
	// skips partitioning entirely.
	Components int `json:"components,omitempty"`

	// VerifyBalance runs both balance checks (cycle-sign and
	// attribute-consistency).
	VerifyBalance bool `json:"verify_balance,omitempty"`

	// VerifyHomophily computes the edge color agreement ratio.
	VerifyHomophily bool `json:"verify_homophily,omitempty"`

	// Attribute is the node attribute for the attribute-consistency
	// balance check and the P plot style. Defaults to "color".
	Attribute string `json:"attribute,omitempty"`

	// ColorsFrom optionally names a reference GML file whose node colors
	// are used for the homophily check instead of the input graph's own.
	ColorsFrom string `json:"colors_from,omitempty"`

	// Plot selects a plot style (C, N, or P). Empty skips rendering.
	Plot string `json:"plot,omitempty"`

	// Formats lists the artifact formats to render. Defaults to svg.
	Formats []string `json:"formats,omitempty"`

	// Output is the path to write the resulting GML to. Empty skips
	// serialization.
	Output string `json:"output,omitempty"`

	// Logger receives stage progress. Defaults to a discarding logger.
	Logger *log.Logger `json:"-"`
}

// Validate checks option consistency and applies defaults.
func (o *Options) Validate() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input path is required")
	}
	if o.Components < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "components must be >= 0, got %d", o.Components)
	}
	if o.Plot != "" {
		if err := render.ValidateStyle(o.Plot); err != nil {
			return err
		}
		if len(o.Formats) == 0 {
			o.Formats = []string{DefaultFormat}
		}
		for _, f := range o.Formats {
			if !ValidFormats[f] {
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: svg, png, dot)", f)
			}
		}
	}
	if o.Attribute == "" {
		o.Attribute = DefaultAttribute
	}
	return nil
}

// BalanceReport holds the outcome of both balance checks.
type BalanceReport struct {
	// Cycles is the odd-cycle sign-parity verdict.
	Cycles bool

	// Attribute is the attribute-consistency verdict.
	Attribute bool

	// Reason is set when the attribute verdict failed for a diagnosable
	// reason (e.g. a node missing the attribute) rather than a plain
	// sign mismatch.
	Reason string
}

// HomophilyReport holds the edge color agreement proportion.
type HomophilyReport struct {
	Ratio float64
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution in logs and reports.
	RunID string

	// Graph is the analyzed (and possibly partitioned) graph.
	Graph *sgraph.Graph

	// GraphHash is the content hash of the graph after all mutations.
	GraphHash string

	// Components is the final component membership.
	Components [][]string

	// Balance is set when balance verification ran.
	Balance *BalanceReport

	// Homophily is set when homophily verification ran.
	Homophily *HomophilyReport

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount     int
	EdgeCount     int // edges after partitioning
	EdgesRemoved  int
	LoadTime      time.Duration
	PartitionTime time.Duration
	VerifyTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // whether all artifacts came from cache
}
