// Package gml reads and writes graphs in the GML node-link format.
//
// The dialect understood here is the one emitted by common graph tools:
// a top-level "graph" list holding "node" entries (integer id, optional
// string label, arbitrary scalar attributes) and "edge" entries (source
// and target ids plus arbitrary scalar attributes). Nodes are keyed by
// label when present, falling back to the numeric id. All attributes
// round-trip exactly, including the edge "color" and any derived "sign".
//
// # Example
//
//	graph [
//	  node [
//	    id 0
//	    label "frodo"
//	    color "blue"
//	  ]
//	  edge [
//	    source 0
//	    target 1
//	    color "r"
//	  ]
//	]
package gml

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/sgraph"
)

// ReadFile reads a GML file and returns the decoded graph.
func ReadFile(path string) (*sgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a GML document from r into a graph.
func Read(r io.Reader) (*sgraph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// Unmarshal decodes GML bytes into a graph.
func Unmarshal(data []byte) (*sgraph.Graph, error) {
	doc, err := parse(data)
	if err != nil {
		return nil, err
	}
	return doc.toGraph()
}

// WriteFile writes a graph to a GML file.
// The file is created with 0644 permissions.
func WriteFile(g *sgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Write encodes a graph as GML to w. Nodes are written in sorted ID order
// and edges in canonical key order, so output is deterministic.
func Write(g *sgraph.Graph, w io.Writer) error {
	if _, err := w.Write(Marshal(g)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Marshal encodes a graph as GML bytes.
func Marshal(g *sgraph.Graph) []byte {
	var buf bytes.Buffer
	encode(g, &buf)
	return buf.Bytes()
}
