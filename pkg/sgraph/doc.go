// Package sgraph implements the signed undirected graph model used by all
// signet analyses.
//
// A [Graph] holds uniquely named nodes and undirected edges between them.
// Both carry free-form attribute maps; edges additionally expose a sign
// (+1 or -1) derived from their "color" attribute by [DeriveSigns].
//
// The package also provides the structural queries the analyses are built
// on: connected components ([Graph.Components]) and lazy simple-cycle
// enumeration ([Graph.Cycles]).
//
// Graph is not safe for concurrent use without external synchronization.
// The intended usage is a single owner performing a sequential stream of
// operations: load, derive signs, then analyze.
package sgraph
