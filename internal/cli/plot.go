package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kachup1/signet/pkg/pipeline"
	"github.com/kachup1/signet/pkg/render"
)

// plotCommand creates the plot command for rendering a graph on its own.
func (c *CLI) plotCommand() *cobra.Command {
	var (
		style      string
		attribute  string
		formatsStr string
		output     string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "plot [graph.gml]",
		Short: "Render a graph visualization",
		Long: `Render a graph visualization.

Three styles are available: P colors nodes by a node attribute, C shades
them by clustering coefficient, and N annotates edges with neighborhood
overlap. Negative edges are always drawn dashed.

Results are cached locally for faster subsequent runs.

Use 'analyze --plot' to partition and verify in the same run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Input:     args[0],
				Plot:      style,
				Attribute: attribute,
				Formats:   c.parseFormats(formatsStr),
			}
			return c.runPlot(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&style, "style", "p", c.Config.Render.Style, "plot style: P (attribute), C (clustering), N (overlap)")
	cmd.Flags().StringVarP(&attribute, "attribute", "a", "", "node attribute for the P style (default color)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runPlot renders the requested formats through the pipeline.
func (c *CLI) runPlot(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if err := render.ValidateStyle(opts.Plot); err != nil {
		return err
	}

	runner := c.newRunner(ctx, noCache)
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("plot: %w", err)
	}
	spinner.Stop()

	printSuccess("Rendered %s", opts.Input)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}
