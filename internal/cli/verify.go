package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kachup1/signet/pkg/balance"
	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/gml"
	"github.com/kachup1/signet/pkg/homophily"
	"github.com/kachup1/signet/pkg/sgraph"
)

// balanceCommand creates the balance verification command.
func (c *CLI) balanceCommand() *cobra.Command {
	var attribute string

	cmd := &cobra.Command{
		Use:   "balance [graph.gml]",
		Short: "Verify structural balance of a signed graph",
		Long: `Verify structural balance of a signed graph.

Two checks are run. The cycle check enumerates simple cycles and flags the
graph unbalanced when any odd-length cycle carries an odd number of negative
edges. The attribute check requires every edge sign to match its endpoints:
positive between same-valued nodes, negative between different-valued ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBalance(cmd.Context(), args[0], attribute)
		},
	}

	cmd.Flags().StringVarP(&attribute, "attribute", "a", sgraph.ColorAttr, "node attribute for the consistency check")

	return cmd
}

// runBalance loads the graph and prints both verdicts.
func (c *CLI) runBalance(ctx context.Context, input, attribute string) error {
	logger := loggerFromContext(ctx)

	g, err := gml.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	sgraph.DeriveSigns(g)
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	printVerdict("cycles", balance.ByCycles(g))

	ok, err := balance.ByAttribute(g, attribute)
	printVerdict("attribute", ok)
	if err != nil {
		printDetail("%s", errors.UserMessage(err))
	}
	return nil
}

// homophilyCommand creates the homophily evaluation command.
func (c *CLI) homophilyCommand() *cobra.Command {
	var colorsFrom string

	cmd := &cobra.Command{
		Use:   "homophily [graph.gml]",
		Short: "Compute the edge color agreement ratio",
		Long: `Compute the edge color agreement ratio.

The ratio is the proportion of edges joining two nodes of the same color.
With --colors-from, colors are taken from a reference graph instead of the
input graph, so a partitioned graph can be scored against the original
annotations.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHomophily(cmd.Context(), args[0], colorsFrom)
		},
	}

	cmd.Flags().StringVar(&colorsFrom, "colors-from", "", "reference GML file supplying node colors")

	return cmd
}

// runHomophily loads the graph (and optional reference) and prints the ratio.
func (c *CLI) runHomophily(ctx context.Context, input, colorsFrom string) error {
	logger := loggerFromContext(ctx)

	g, err := gml.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	colors := homophily.NodeColors(g)
	if colorsFrom != "" {
		ref, err := gml.ReadFile(colorsFrom)
		if err != nil {
			return fmt.Errorf("load reference colors %s: %w", colorsFrom, err)
		}
		colors = homophily.NodeColors(ref)
	}

	ratio, err := homophily.AgreementRatio(g, colors)
	if err != nil {
		return err
	}
	printKeyValue("homophily", strconv.FormatFloat(ratio, 'f', 4, 64))
	return nil
}
