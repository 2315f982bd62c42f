package cardwall

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint represents the styling information for drawing.
type Paint struct {
	// Color is the solid fill or stroke color.
	Color RGBA

	// LineWidth is the width of strokes
	LineWidth float64

	// FillRule is the fill rule for paths
	FillRule FillRule

	// Antialias enables anti-aliasing
	Antialias bool
}

// NewPaint creates a new Paint with default values: opaque black,
// 1px strokes, non-zero winding, anti-aliasing on.
func NewPaint() *Paint {
	return &Paint{
		Color:     Black,
		LineWidth: 1.0,
		FillRule:  FillRuleNonZero,
		Antialias: true,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}
