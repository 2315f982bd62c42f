package cardwall

import (
	"github.com/gogpu/cardwall/internal/path"
	"github.com/gogpu/cardwall/internal/raster"
)

// SoftwareRenderer is a CPU-based scanline rasterizer.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer for the given
// target dimensions.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
	}
}

// pixmapAdapter adapts cardwall.Pixmap to the raster package interfaces.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p *pixmapAdapter) Width() int {
	return p.pixmap.Width()
}

func (p *pixmapAdapter) Height() int {
	return p.pixmap.Height()
}

func (p *pixmapAdapter) SetPixel(x, y int, c raster.RGBA) {
	p.pixmap.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// BlendPixelAlpha implements the raster.AAPixmap interface for
// anti-aliased rendering.
func (p *pixmapAdapter) BlendPixelAlpha(x, y int, c raster.RGBA, alpha uint8) {
	p.pixmap.BlendPixelAlpha(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, alpha)
}

// convertPath converts cardwall.Path elements to path.PathElement for
// flattening.
func convertPath(p *Path) []path.PathElement {
	var elements []path.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, path.MoveTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, path.LineTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, path.QuadTo{
				Control: path.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

// convertPoints converts path.Point to raster.Point.
func convertPoints(points []path.Point) []raster.Point {
	result := make([]raster.Point, len(points))
	for i, p := range points {
		result[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return result
}

// Fill rasterizes a filled path onto the pixmap.
// Paths that flatten to fewer than two points draw nothing.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPath(p)
	flattened := path.Flatten(elements)
	points := convertPoints(flattened)

	fillRule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		fillRule = raster.FillRuleEvenOdd
	}

	color := raster.RGBA{R: paint.Color.R, G: paint.Color.G, B: paint.Color.B, A: paint.Color.A}
	adapter := &pixmapAdapter{pixmap: pixmap}

	if paint.Antialias {
		r.rasterizer.FillAA(adapter, points, fillRule, color)
	} else {
		r.rasterizer.Fill(adapter, points, fillRule, color)
	}
	return nil
}

// Stroke rasterizes a stroked path outline onto the pixmap at
// paint.LineWidth. Paths that flatten to fewer than two points draw
// nothing.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPath(p)
	flattened := path.Flatten(elements)
	points := convertPoints(flattened)

	color := raster.RGBA{R: paint.Color.R, G: paint.Color.G, B: paint.Color.B, A: paint.Color.A}
	adapter := &pixmapAdapter{pixmap: pixmap}

	if paint.Antialias {
		r.rasterizer.StrokeAA(adapter, points, paint.LineWidth, color)
	} else {
		r.rasterizer.Stroke(adapter, points, paint.LineWidth, color)
	}
	return nil
}
