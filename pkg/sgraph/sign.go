package sgraph

// Well-known attribute names shared by the loader, the analyses, and the
// renderer.
const (
	// ColorAttr is the edge/node attribute holding a color label.
	ColorAttr = "color"

	// SignAttr is the edge attribute holding the derived sign.
	SignAttr = "sign"

	// NegativeColor is the edge color that marks a negative relationship.
	NegativeColor = "r"
)

// Edge signs.
const (
	SignPositive = 1
	SignNegative = -1
)

// DeriveSigns computes the sign attribute for every edge from its color:
// -1 when color is "r", +1 otherwise (including edges without a color).
// Any previously stored sign is overwritten, so the derivation is
// idempotent. Run this once after loading, before any balance check.
func DeriveSigns(g *Graph) {
	for _, e := range g.Edges() {
		e.Attrs[SignAttr] = signFromColor(e.Attrs)
	}
}

// Sign returns the sign of the edge: the stored sign attribute when
// present, otherwise the value its color derives to.
func (e *Edge) Sign() int {
	switch v := e.Attrs[SignAttr].(type) {
	case int:
		if v == SignNegative {
			return SignNegative
		}
		return SignPositive
	case float64:
		// GML numerics may decode as floats.
		if v == float64(SignNegative) {
			return SignNegative
		}
		return SignPositive
	}
	return signFromColor(e.Attrs)
}

// Color returns the edge's color attribute, or "" if unset or not a string.
func (e *Edge) Color() string {
	c, _ := e.Attrs[ColorAttr].(string)
	return c
}

func signFromColor(attrs Attrs) int {
	if c, ok := attrs[ColorAttr].(string); ok && c == NegativeColor {
		return SignNegative
	}
	return SignPositive
}
