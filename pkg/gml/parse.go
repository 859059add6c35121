package gml

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/kachup1/signet/pkg/sgraph"
)

// document is the raw parse of a GML file before graph construction.
type document struct {
	directed bool
	nodes    []nodeElem
	edges    []edgeElem
}

type nodeElem struct {
	id    int
	label string
	attrs sgraph.Attrs
}

type edgeElem struct {
	source, target int
	attrs          sgraph.Attrs
}

// name returns the graph identifier for the node: its label when present,
// the numeric id otherwise.
func (n nodeElem) name() string {
	if n.label != "" {
		return n.label
	}
	return strconv.Itoa(n.id)
}

// toGraph builds the in-memory graph, resolving edge endpoints through the
// node id mapping. Attribute maps are carried over as parsed.
func (d *document) toGraph() (*sgraph.Graph, error) {
	g := sgraph.New()
	names := make(map[int]string, len(d.nodes))

	for _, n := range d.nodes {
		names[n.id] = n.name()
		if err := g.AddNode(sgraph.Node{ID: n.name(), Attrs: n.attrs}); err != nil {
			return nil, fmt.Errorf("node %d: %w", n.id, err)
		}
	}

	for _, e := range d.edges {
		u, uok := names[e.source]
		v, vok := names[e.target]
		if !uok || !vok {
			return nil, fmt.Errorf("edge %d--%d: endpoint not declared as node", e.source, e.target)
		}
		if err := g.AddEdge(sgraph.Edge{U: u, V: v, Attrs: e.attrs}); err != nil {
			return nil, fmt.Errorf("edge %s--%s: %w", u, v, err)
		}
	}

	return g, nil
}

// =============================================================================
// Tokenizer
// =============================================================================

type lexer struct {
	input []byte
	pos   int
}

// next returns the next token: "[", "]", a quoted string (quotes stripped,
// prefixed with \x00 to distinguish it from a bare atom), or a bare atom.
// Returns "" at end of input. Lines starting with # are comments.
func (l *lexer) next() (string, error) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		case unicode.IsSpace(rune(c)):
			l.pos++
		case c == '[' || c == ']':
			l.pos++
			return string(c), nil
		case c == '"':
			return l.quoted()
		default:
			return l.atom(), nil
		}
	}
	return "", nil
}

// stringToken marks tokens that originated from quoted strings.
const stringToken = "\x00"

func (l *lexer) quoted() (string, error) {
	start := l.pos
	l.pos++ // opening quote
	var sb strings.Builder
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == '"' {
			l.pos++
			return stringToken + sb.String(), nil
		}
		if c == '\\' && l.pos+1 < len(l.input) {
			l.pos++
			c = l.input[l.pos]
		}
		sb.WriteByte(c)
		l.pos++
	}
	return "", fmt.Errorf("unterminated string at offset %d", start)
}

func (l *lexer) atom() string {
	start := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if unicode.IsSpace(rune(c)) || c == '[' || c == ']' || c == '"' {
			break
		}
		l.pos++
	}
	return string(l.input[start:l.pos])
}

// =============================================================================
// Parser
// =============================================================================

// entry is one key-value pair inside a GML list. Exactly one of list and
// scalar is meaningful, discriminated by isList.
type entry struct {
	key    string
	scalar any
	list   []entry
	isList bool
}

func parse(data []byte) (*document, error) {
	l := &lexer{input: data}
	top, err := parseEntries(l, false)
	if err != nil {
		return nil, err
	}

	for _, e := range top {
		if e.key == "graph" && e.isList {
			return buildDocument(e.list)
		}
	}
	return nil, fmt.Errorf("no graph section found")
}

// parseEntries reads key-value pairs until end of input or, when nested is
// true, a closing bracket.
func parseEntries(l *lexer, nested bool) ([]entry, error) {
	var out []entry
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == "" {
			if nested {
				return nil, fmt.Errorf("unexpected end of input: missing ]")
			}
			return out, nil
		}
		if tok == "]" {
			if !nested {
				return nil, fmt.Errorf("unexpected ]")
			}
			return out, nil
		}
		if tok == "[" || strings.HasPrefix(tok, stringToken) {
			return nil, fmt.Errorf("expected key, got %q", strings.TrimPrefix(tok, stringToken))
		}

		val, err := l.next()
		if err != nil {
			return nil, err
		}
		switch {
		case val == "[":
			inner, err := parseEntries(l, true)
			if err != nil {
				return nil, err
			}
			out = append(out, entry{key: tok, list: inner, isList: true})
		case val == "" || val == "]":
			return nil, fmt.Errorf("key %q has no value", tok)
		default:
			out = append(out, entry{key: tok, scalar: scalarValue(val)})
		}
	}
}

// scalarValue converts an atom token to int, float64, or string. Quoted
// strings stay strings even when they look numeric.
func scalarValue(tok string) any {
	if s, ok := strings.CutPrefix(tok, stringToken); ok {
		return s
	}
	if i, err := strconv.Atoi(tok); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	return tok
}

func buildDocument(graph []entry) (*document, error) {
	doc := &document{}
	for _, e := range graph {
		switch {
		case e.key == "directed" && !e.isList:
			if v, ok := e.scalar.(int); ok && v != 0 {
				doc.directed = true
			}
		case e.key == "node" && e.isList:
			n, err := buildNode(e.list)
			if err != nil {
				return nil, err
			}
			doc.nodes = append(doc.nodes, n)
		case e.key == "edge" && e.isList:
			ed, err := buildEdge(e.list)
			if err != nil {
				return nil, err
			}
			doc.edges = append(doc.edges, ed)
		}
	}
	if doc.directed {
		return nil, fmt.Errorf("directed graphs are not supported")
	}
	return doc, nil
}

func buildNode(list []entry) (nodeElem, error) {
	n := nodeElem{id: -1, attrs: sgraph.Attrs{}}
	for _, e := range list {
		if e.isList {
			continue // nested node structures (e.g. graphics) are ignored
		}
		switch e.key {
		case "id":
			v, ok := e.scalar.(int)
			if !ok {
				return n, fmt.Errorf("node id must be an integer, got %v", e.scalar)
			}
			n.id = v
		case "label":
			if s, ok := e.scalar.(string); ok {
				n.label = s
			}
		default:
			n.attrs[e.key] = e.scalar
		}
	}
	if n.id < 0 {
		return n, fmt.Errorf("node missing id")
	}
	return n, nil
}

func buildEdge(list []entry) (edgeElem, error) {
	e := edgeElem{source: -1, target: -1, attrs: sgraph.Attrs{}}
	for _, it := range list {
		if it.isList {
			continue
		}
		switch it.key {
		case "source", "target":
			v, ok := it.scalar.(int)
			if !ok {
				return e, fmt.Errorf("edge %s must be an integer, got %v", it.key, it.scalar)
			}
			if it.key == "source" {
				e.source = v
			} else {
				e.target = v
			}
		default:
			e.attrs[it.key] = it.scalar
		}
	}
	if e.source < 0 || e.target < 0 {
		return e, fmt.Errorf("edge missing source or target")
	}
	return e, nil
}
