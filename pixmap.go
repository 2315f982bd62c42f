package cardwall

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as premultiplied RGBA, 8 bits per channel, which makes
// source-over compositing a single multiply-add per channel. The invariant
// len(data) == width*height*4 holds for the lifetime of the pixmap, and all
// pixel writes are bounds-checked (out-of-bounds writes are ignored).
type Pixmap struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Returns nil if either dimension is not positive.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// mul255 multiplies two 8-bit values as fractions of 255, rounded.
func mul255(a, b uint32) uint32 {
	return (a*b + 127) / 255
}

// SetPixel sets the color of a single pixel from a straight-alpha color.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	a := clamp255(c.A * 255)
	p.data[i+0] = uint8(clamp255(c.R*255) * a / 255)
	p.data[i+1] = uint8(clamp255(c.G*255) * a / 255)
	p.data[i+2] = uint8(clamp255(c.B*255) * a / 255)
	p.data[i+3] = uint8(a)
}

// SetPixelPremul sets a single pixel from premultiplied 8-bit channels.
func (p *Pixmap) SetPixelPremul(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns the straight-alpha color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	a := p.data[i+3]
	if a == 0 {
		return Transparent
	}
	return RGBA{
		R: float64(p.data[i+0]) / float64(a),
		G: float64(p.data[i+1]) / float64(a),
		B: float64(p.data[i+2]) / float64(a),
		A: float64(a) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	a := clamp255(c.A * 255)
	r := uint8(clamp255(c.R*255) * a / 255)
	g := uint8(clamp255(c.G*255) * a / 255)
	b := uint8(clamp255(c.B*255) * a / 255)
	a8 := uint8(a)

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a8
	}
}

// FillSpan overwrites a horizontal span of pixels with a color.
// The span is [x1, x2) on row y, clipped to the pixmap bounds.
func (p *Pixmap) FillSpan(x1, x2, y int, c RGBA) {
	if y < 0 || y >= p.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.width {
		x2 = p.width
	}
	if x1 >= x2 {
		return
	}

	a := clamp255(c.A * 255)
	r := uint8(clamp255(c.R*255) * a / 255)
	g := uint8(clamp255(c.G*255) * a / 255)
	b := uint8(clamp255(c.B*255) * a / 255)
	a8 := uint8(a)

	i := (y*p.width + x1) * 4
	for x := x1; x < x2; x++ {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a8
		i += 4
	}
}

// FillSpanBlend composites a color over a horizontal span using
// source-over blending. The span is [x1, x2) on row y, clipped to bounds.
func (p *Pixmap) FillSpanBlend(x1, x2, y int, c RGBA) {
	if y < 0 || y >= p.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.width {
		x2 = p.width
	}
	if x1 >= x2 {
		return
	}

	sa := uint32(clamp255(c.A * 255))
	if sa == 0 {
		return
	}
	sr := mul255(uint32(clamp255(c.R*255)), sa)
	sg := mul255(uint32(clamp255(c.G*255)), sa)
	sb := mul255(uint32(clamp255(c.B*255)), sa)
	inv := 255 - sa

	i := (y*p.width + x1) * 4
	for x := x1; x < x2; x++ {
		p.data[i+0] = uint8(sr + mul255(uint32(p.data[i+0]), inv))
		p.data[i+1] = uint8(sg + mul255(uint32(p.data[i+1]), inv))
		p.data[i+2] = uint8(sb + mul255(uint32(p.data[i+2]), inv))
		p.data[i+3] = uint8(sa + mul255(uint32(p.data[i+3]), inv))
		i += 4
	}
}

// BlendPixelAlpha composites a color over a single pixel, scaling the
// color's own alpha by the coverage value (0-255). This is the blend the
// anti-aliased rasterizer drives.
func (p *Pixmap) BlendPixelAlpha(x, y int, c RGBA, alpha uint8) {
	if alpha == 0 {
		return
	}
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}

	ea := mul255(uint32(clamp255(c.A*255)), uint32(alpha))
	if ea == 0 {
		return
	}

	i := (y*p.width + x) * 4
	sr := mul255(uint32(clamp255(c.R*255)), ea)
	sg := mul255(uint32(clamp255(c.G*255)), ea)
	sb := mul255(uint32(clamp255(c.B*255)), ea)
	inv := 255 - ea

	p.data[i+0] = uint8(sr + mul255(uint32(p.data[i+0]), inv))
	p.data[i+1] = uint8(sg + mul255(uint32(p.data[i+1]), inv))
	p.data[i+2] = uint8(sb + mul255(uint32(p.data[i+2]), inv))
	p.data[i+3] = uint8(ea + mul255(uint32(p.data[i+3]), inv))
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{
		width:  p.width,
		height: p.height,
		data:   make([]uint8, len(p.data)),
	}
	copy(c.data, p.data)
	return c
}

// ToImage converts the pixmap to an image.RGBA.
// image.RGBA is alpha-premultiplied, matching the pixmap's storage, so this
// is a straight copy.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
// Returns nil if the image has no pixels.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)
	if pm == nil {
		return nil
	}

	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < height; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+width*4]
			copy(pm.data[y*width*4:], row)
		}
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+width*4]
			for x := 0; x < width; x++ {
				a := uint32(row[x*4+3])
				i := (y*width + x) * 4
				pm.data[i+0] = uint8(uint32(row[x*4+0]) * a / 255)
				pm.data[i+1] = uint8(uint32(row[x*4+1]) * a / 255)
				pm.data[i+2] = uint8(uint32(row[x*4+2]) * a / 255)
				pm.data[i+3] = uint8(a)
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				i := (y*width + x) * 4
				pm.data[i+0] = uint8(r >> 8)
				pm.data[i+1] = uint8(g >> 8)
				pm.data[i+2] = uint8(b >> 8)
				pm.data[i+3] = uint8(a >> 8)
			}
		}
	}

	return pm
}

// EncodePNG writes the pixmap to w as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return p.EncodePNG(f)
}

// At implements the image.Image interface.
// The returned color.RGBA is alpha-premultiplied.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
