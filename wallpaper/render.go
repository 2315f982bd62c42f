package wallpaper

import (
	"bytes"

	"github.com/gogpu/cardwall"
)

// blurSigma is the Gaussian radius used when a request asks for a blurred
// background.
const blurSigma = 8.0

// Pin indicator palette: a fixed two-entry mapping from card kind.
var (
	pinMemoColor = cardwall.RGBA8(251, 191, 36, 255) // amber
	pinTaskColor = cardwall.RGBA8(96, 165, 250, 255) // blue
)

const (
	pinInset  = 12.0 // pin center offset from the card's top-right corner
	pinRadius = 6.0
)

// cardFill returns the frosted-glass fill color: a light overlay in dark
// mode, a dark overlay in light mode, scaled by the card opacity. The
// alpha is quantized through uint8 so identical requests produce identical
// pixels.
func cardFill(opts RenderOptions) cardwall.RGBA {
	if opts.DarkMode {
		return cardwall.RGBA8(255, 255, 255, uint8(opts.CardOpacity*40))
	}
	return cardwall.RGBA8(0, 0, 0, uint8(opts.CardOpacity*30))
}

// cardBorder returns the 1px outline tint.
func cardBorder(opts RenderOptions) cardwall.RGBA {
	if opts.DarkMode {
		return cardwall.RGBA8(255, 255, 255, 50)
	}
	return cardwall.RGBA8(0, 0, 0, 20)
}

// pinColor returns the pin indicator color for a card kind.
func pinColor(kind Kind) cardwall.RGBA {
	if kind == KindTask {
		return pinTaskColor
	}
	return pinMemoColor
}

// Render composites the requested cards onto the canvas in place.
//
// Each card is drawn as an anti-aliased rounded-rectangle fill, a 1px
// rounded-rectangle stroke, and, for pinned cards, a filled pin circle near
// the top-right corner. An empty card list draws nothing. Degenerate
// geometry (for example a non-positive card width) is skipped per shape
// rather than failing the render.
//
// The BlurBackground flag is not acted on here; see RenderWallpaper.
func Render(pm *cardwall.Pixmap, opts RenderOptions) {
	boxes := Layout(opts, pm.Width(), pm.Height())
	if len(boxes) == 0 {
		return
	}

	r := cardwall.NewSoftwareRenderer(pm.Width(), pm.Height())

	fillPaint := cardwall.NewPaint()
	fillPaint.Color = cardFill(opts)

	strokePaint := cardwall.NewPaint()
	strokePaint.Color = cardBorder(opts)
	strokePaint.LineWidth = 1.0

	pinPaint := cardwall.NewPaint()

	log := cardwall.Logger()
	for i, box := range boxes {
		card := opts.Cards[i]

		p := cardwall.NewPath()
		p.RoundedRectangle(box.X, box.Y, box.W, box.H, cornerRadius)
		if p.IsEmpty() {
			log.Warn("skipping degenerate card geometry",
				"index", i, "width", box.W, "height", box.H)
			continue
		}
		_ = r.Fill(pm, p, fillPaint)
		_ = r.Stroke(pm, p, strokePaint)

		if card.Pinned {
			pin := cardwall.NewPath()
			pin.Circle(box.X+box.W-pinInset, box.Y+pinInset, pinRadius)
			pinPaint.Color = pinColor(card.Kind)
			_ = r.Fill(pm, pin, pinPaint)
		}

		log.Debug("rendered card",
			"index", i, "kind", card.Kind.String(),
			"x", box.X, "y", box.Y, "height", box.H, "pinned", card.Pinned)
	}
}

// EncodePNG serializes the canvas to PNG bytes.
// Failures are reported as *EncodeError; no partial output is returned.
func EncodePNG(pm *cardwall.Pixmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}

// RenderWallpaper runs the full pipeline: load the background, honor the
// blur flag, build the overlaid canvas, composite the cards and encode the
// result as PNG bytes.
func RenderWallpaper(backgroundPath string, opts RenderOptions) ([]byte, error) {
	img, err := LoadBackground(backgroundPath)
	if err != nil {
		return nil, err
	}

	if opts.BlurBackground {
		img = BlurBackground(img, blurSigma)
	}

	pm, err := BuildCanvas(img)
	if err != nil {
		return nil, err
	}

	Render(pm, opts)

	return EncodePNG(pm)
}
