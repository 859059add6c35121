package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/kachup1/signet/pkg/balance"
	"github.com/kachup1/signet/pkg/cache"
	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/gml"
	"github.com/kachup1/signet/pkg/homophily"
	"github.com/kachup1/signet/pkg/partition"
	"github.com/kachup1/signet/pkg/render"
	"github.com/kachup1/signet/pkg/sgraph"
)

// Runner executes the analysis pipeline with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results, so one Runner can serve many runs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// A nil cache disables caching; a nil logger discards output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the requested stages in order: load → derive signs →
// partition → verify balance → verify homophily → render → save.
//
// Failures are terminal for the run but never roll back work already
// done: edges removed by the partitioner before a later failure stay
// removed in the graph held by the returned partial result.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger.Debug("starting analysis", "run_id", result.RunID, "input", opts.Input)

	// Stage 1: Load and derive signs.
	loadStart := time.Now()
	g, err := gml.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	sgraph.DeriveSigns(g)
	result.Graph = g
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = g.NodeCount()
	edgesBefore := g.EdgeCount()

	logger.Info("loaded graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Partition.
	if opts.Components > 0 {
		partitionStart := time.Now()
		if err := partition.Split(g, opts.Components); err != nil {
			r.finish(result, edgesBefore)
			return result, fmt.Errorf("partition: %w", err)
		}
		result.Stats.PartitionTime = time.Since(partitionStart)

		logger.Info("partitioned graph",
			"components", opts.Components,
			"edges_removed", edgesBefore-g.EdgeCount(),
			"duration", result.Stats.PartitionTime)
	}
	r.finish(result, edgesBefore)

	// Stage 3: Verify.
	verifyStart := time.Now()
	if opts.VerifyBalance {
		result.Balance = r.verifyBalance(g, opts.Attribute, logger)
	}
	if opts.VerifyHomophily {
		report, err := r.verifyHomophily(g, opts)
		if err != nil {
			return result, fmt.Errorf("homophily: %w", err)
		}
		result.Homophily = report
		logger.Info("verified homophily", "agreement_ratio", report.Ratio)
	}
	result.Stats.VerifyTime = time.Since(verifyStart)

	// Stage 4: Render.
	if opts.Plot != "" {
		renderStart := time.Now()
		artifacts, hit, err := r.renderArtifacts(ctx, g, result.GraphHash, opts)
		if err != nil {
			return result, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.CacheInfo.RenderHit = hit
		result.Stats.RenderTime = time.Since(renderStart)

		logger.Info("rendered plot",
			"style", opts.Plot,
			"formats", opts.Formats,
			"cached", hit,
			"duration", result.Stats.RenderTime)
	}

	// Stage 5: Save.
	if opts.Output != "" {
		if err := gml.WriteFile(g, opts.Output); err != nil {
			return result, fmt.Errorf("save: %w", err)
		}
		logger.Info("wrote graph", "path", opts.Output)
	}

	return result, nil
}

// finish records the post-partition shape of the graph on the result.
func (r *Runner) finish(result *Result, edgesBefore int) {
	g := result.Graph
	result.Components = g.Components()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.EdgesRemoved = edgesBefore - g.EdgeCount()
	result.GraphHash = cache.Hash(gml.Marshal(g))
}

// verifyBalance runs both balance checks. A missing node attribute makes
// the attribute verdict false with a recorded reason instead of failing
// the run - under-annotation is a verification result, not an exception.
func (r *Runner) verifyBalance(g *sgraph.Graph, attribute string, logger *log.Logger) *BalanceReport {
	report := &BalanceReport{}
	report.Cycles = balance.ByCycles(g)

	ok, err := balance.ByAttribute(g, attribute)
	report.Attribute = ok
	if err != nil {
		report.Reason = errors.UserMessage(err)
	}

	logger.Info("verified balance",
		"cycles", report.Cycles,
		"attribute", report.Attribute)
	return report
}

// verifyHomophily computes the agreement ratio, using the reference
// graph's colors when one was supplied.
func (r *Runner) verifyHomophily(g *sgraph.Graph, opts Options) (*HomophilyReport, error) {
	colors := homophily.NodeColors(g)
	if opts.ColorsFrom != "" {
		ref, err := gml.ReadFile(opts.ColorsFrom)
		if err != nil {
			return nil, fmt.Errorf("load reference colors: %w", err)
		}
		colors = homophily.NodeColors(ref)
	}

	ratio, err := homophily.AgreementRatio(g, colors)
	if err != nil {
		return nil, err
	}
	return &HomophilyReport{Ratio: ratio}, nil
}

// renderArtifacts renders the requested formats, consulting the cache
// first. All formats must hit for the run to count as cached.
func (r *Runner) renderArtifacts(ctx context.Context, g *sgraph.Graph, graphHash string, opts Options) (map[string][]byte, bool, error) {
	keyFor := func(format string) string {
		return cache.ArtifactKey(graphHash, cache.ArtifactKeyOpts{
			Format:    format,
			Style:     opts.Plot,
			Attribute: opts.Attribute,
		})
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for _, format := range opts.Formats {
		if data, hit, err := r.Cache.Get(ctx, keyFor(format)); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	dot, err := render.ToDOT(g, render.Options{Style: opts.Plot, Attribute: opts.Attribute})
	if err != nil {
		return nil, false, err
	}

	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = render.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = render.RenderPNG(ctx, dot)
		}
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		rendered[format] = data
		_ = r.Cache.Set(ctx, keyFor(format), data, cache.TTLArtifact)
	}
	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
