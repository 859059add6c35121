package cli

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kachup1/signet/pkg/pipeline"
)

// analyzeCommand creates the analyze command, which runs the full pipeline.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		formatsStr  string
		noCache     bool
		interactive bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "analyze [graph.gml]",
		Short: "Run the full analysis pipeline on a signed graph",
		Long: `Run the full analysis pipeline on a signed graph.

The analyze command loads a GML graph, derives edge signs from colors,
optionally partitions it into communities by repeatedly removing the
highest-betweenness edge, verifies structural balance and homophily, and
renders a plot of the result.

Render artifacts are cached locally for faster subsequent runs.

Use the focused commands (partition, balance, homophily, plot) when you
only need a single stage.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			if opts.Plot != "" {
				opts.Formats = c.parseFormats(formatsStr)
			}
			return c.runAnalyze(cmd.Context(), opts, noCache, interactive)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the analyzed graph as GML")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse components interactively")

	// Stage flags
	cmd.Flags().IntVarP(&opts.Components, "components", "k", 0, "target number of connected components (0 skips partitioning)")
	cmd.Flags().BoolVar(&opts.VerifyBalance, "balance", false, "verify structural balance")
	cmd.Flags().BoolVar(&opts.VerifyHomophily, "homophily", false, "compute the edge color agreement ratio")
	cmd.Flags().StringVarP(&opts.Attribute, "attribute", "a", "", "node attribute for balance checks and attribute plots (default color)")
	cmd.Flags().StringVar(&opts.ColorsFrom, "colors-from", "", "reference GML file supplying node colors for homophily")
	cmd.Flags().StringVarP(&opts.Plot, "plot", "p", "", "plot style: P (attribute), C (clustering), N (overlap)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "plot format(s): svg (default), png, dot (comma-separated)")

	return cmd
}

// runAnalyze executes the pipeline and presents the result.
func (c *CLI) runAnalyze(ctx context.Context, opts pipeline.Options, noCache, interactive bool) error {
	runner := c.newRunner(ctx, noCache)
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Analyzing %s...", opts.Input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()

	printSuccess("Analyzed %s", opts.Input)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)

	if opts.Components > 0 {
		printComponents(result.Components, result.Stats.EdgesRemoved)
	}
	if result.Balance != nil {
		printBalance(result.Balance)
	}
	if result.Homophily != nil {
		printKeyValue("homophily", strconv.FormatFloat(result.Homophily.Ratio, 'f', 4, 64))
	}

	if opts.Plot != "" {
		if err := writeArtifacts(artifactWriteParams{
			artifacts: result.Artifacts,
			formats:   opts.Formats,
			input:     opts.Input,
			output:    "",
			cacheHit:  result.CacheInfo.RenderHit,
		}); err != nil {
			return err
		}
	}
	if opts.Output != "" {
		printFile(opts.Output)
	}

	if interactive {
		model := NewComponentListModel(result.Components)
		if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
			return fmt.Errorf("interactive browser: %w", err)
		}
	}
	return nil
}

// printComponents summarizes the component decomposition.
func printComponents(components [][]string, edgesRemoved int) {
	printKeyValue("components", strconv.Itoa(len(components)))
	printDetail("removed %d edges", edgesRemoved)
	for i, members := range components {
		if len(members) > 8 {
			printDetail("[%d] %d members", i, len(members))
			continue
		}
		printDetail("[%d] %v", i, members)
	}
}

// printBalance presents both balance verdicts.
func printBalance(report *pipeline.BalanceReport) {
	printVerdict("cycles", report.Cycles)
	printVerdict("attribute", report.Attribute)
	if report.Reason != "" {
		printDetail("%s", report.Reason)
	}
}
