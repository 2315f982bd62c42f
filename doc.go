// Package cardwall provides the raster drawing core for composing card
// widgets onto wallpaper images.
//
// # Overview
//
// cardwall is a pure Go software rasterizer: a premultiplied RGBA pixel
// buffer (Pixmap), a vector path model (move/line/quadratic/close), and a
// CPU scanline renderer with 4x supersampled anti-aliasing. It holds no
// state across calls: every draw is an explicit call that mutates a
// caller-owned Pixmap.
//
// The domain layer that lays out and composites task/memo cards onto a
// background photograph lives in the wallpaper subpackage; a host CLI lives
// in cmd/cardwall.
//
// # Quick Start
//
//	pm := cardwall.NewPixmap(800, 600)
//	pm.Clear(cardwall.White)
//
//	p := cardwall.NewPath()
//	p.RoundedRectangle(100, 100, 280, 76, 16)
//
//	paint := cardwall.NewPaint()
//	paint.Color = cardwall.RGBA8(255, 255, 255, 34)
//
//	r := cardwall.NewSoftwareRenderer(pm.Width(), pm.Height())
//	_ = r.Fill(pm, p, paint)
//
// # Coordinate System
//
// Standard raster coordinates: origin (0,0) at top-left, x increases right,
// y increases down.
package cardwall

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
