package wallpaper

import (
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Background images arrive in whatever format the user picked;
	// register the decoders the host contract allows.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"

	"github.com/gogpu/cardwall"
)

// overlayColor is the unconditional legibility overlay composited over the
// background: semi-transparent black, alpha 50/255. It does not depend on
// dark mode.
var overlayColor = cardwall.RGBA8(0, 0, 0, 50)

// IsValidImage reports whether the path has a supported background image
// extension (the host sniffs by extension, not content).
func IsValidImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".gif", ".webp":
		return true
	default:
		return false
	}
}

// LoadBackground opens and decodes the background image at path.
// Failures are reported as *DecodeError.
func LoadBackground(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := DecodeBackground(f)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return img, nil
}

// DecodeBackground decodes a background image from r.
// Failures are reported as *DecodeError.
func DecodeBackground(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	cardwall.Logger().Debug("decoded background",
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return img, nil
}

// BlurBackground returns a Gaussian-blurred copy of img.
// Non-positive sigmas return img unchanged.
func BlurBackground(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return img
	}
	return imaging.Blur(img, sigma)
}

// BuildCanvas copies the background verbatim into a new pixel canvas and
// composites the fixed darkening overlay over it.
//
// Applying BuildCanvas twice to its own output stacks the overlay; the
// operation is intentionally not idempotent.
func BuildCanvas(img image.Image) (*cardwall.Pixmap, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, &DecodeError{Err: errors.New("zero-sized background")}
	}

	pm := cardwall.FromImage(img)
	if pm == nil {
		return nil, &AllocationError{Width: width, Height: height}
	}

	for y := 0; y < height; y++ {
		pm.FillSpanBlend(0, width, y, overlayColor)
	}

	return pm, nil
}
