// Package partition splits a graph into connected components by divisive
// clustering in the style of Girvan-Newman: repeatedly remove the edge
// with the highest betweenness centrality until the graph falls apart into
// the requested number of components.
package partition

import (
	"github.com/kachup1/signet/pkg/centrality"
	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/sgraph"
)

// Less is a strict total order over edge keys, used to break ties between
// edges with equal betweenness. The edge that sorts first among the
// maximal-score edges is removed.
type Less func(a, b sgraph.EdgeKey) bool

// CanonicalOrder orders edges lexicographically by their canonical
// endpoint pair. This is the default tie-break and makes partitioning
// fully deterministic for a given graph.
func CanonicalOrder(a, b sgraph.EdgeKey) bool { return a.Compare(b) < 0 }

// Split mutates g in place, removing highest-betweenness edges one at a
// time until the graph has at least target connected components. Scores
// are recomputed from scratch after every removal since each removal
// invalidates them.
//
// A graph that already has enough components is left untouched, and the
// loop stops the moment the threshold is crossed, so no more edges are
// removed than necessary. Edges removed before a failure stay removed.
//
// Returns ErrCodeInvalidInput when target < 1, or ErrCodeUnreachableTarget
// when every edge has been removed and the graph still has fewer than
// target components (only possible when target exceeds the node count).
func Split(g *sgraph.Graph, target int) error {
	return SplitOrdered(g, target, CanonicalOrder)
}

// SplitOrdered is Split with an explicit tie-break order. The order
// parameter decides which of several equally central edges is removed and
// therefore which partition the algorithm converges to; any strict total
// order yields a conformant result.
func SplitOrdered(g *sgraph.Graph, target int, less Less) error {
	if target < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "target component count must be >= 1, got %d", target)
	}
	if less == nil {
		less = CanonicalOrder
	}

	for g.ComponentCount() < target {
		scores := centrality.EdgeBetweenness(g)
		if len(scores) == 0 {
			return errors.New(errors.ErrCodeUnreachableTarget,
				"no edges left: cannot split %d nodes into %d components",
				g.NodeCount(), target)
		}
		key := argmax(scores, less)
		g.RemoveEdge(key.U, key.V)
	}
	return nil
}

// argmax returns the key with the highest score; among equal scores the
// one that sorts first under less wins.
func argmax(scores map[sgraph.EdgeKey]float64, less Less) sgraph.EdgeKey {
	var best sgraph.EdgeKey
	bestScore := 0.0
	first := true
	for k, s := range scores {
		switch {
		case first, s > bestScore:
			best, bestScore, first = k, s, false
		case s == bestScore && less(k, best):
			best = k
		}
	}
	return best
}
