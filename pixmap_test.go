package cardwall

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestNewPixmapInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pm := NewPixmap(tt.w, tt.h); pm != nil {
				t.Errorf("expected nil pixmap for %dx%d", tt.w, tt.h)
			}
		})
	}
}

func TestPixmapInvariant(t *testing.T) {
	pm := NewPixmap(17, 9)
	if len(pm.Data()) != 17*9*4 {
		t.Errorf("buffer length: got %d, want %d", len(pm.Data()), 17*9*4)
	}
}

// TestSetPixelOutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestSetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
		pm.SetPixelPremul(c.x, c.y, 255, 0, 0, 255)
		pm.BlendPixelAlpha(c.x, c.y, Red, 255)
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestSetPixelPremultiplies(t *testing.T) {
	pm := NewPixmap(10, 10)

	// 50% transparent red stores premultiplied bytes.
	pm.SetPixel(3, 7, RGBA2(1, 0, 0, 0.5))

	i := (7*10 + 3) * 4
	data := pm.Data()
	if data[i+0] != 127 || data[i+1] != 0 || data[i+2] != 0 || data[i+3] != 127 {
		t.Errorf("raw data: got (%d, %d, %d, %d), want (127, 0, 0, 127)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}

	// GetPixel un-premultiplies.
	c := pm.GetPixel(3, 7)
	if abs(c.R-1.0) > 0.01 || abs(c.A-0.5) > 0.01 {
		t.Errorf("GetPixel: got R=%.4f A=%.4f, want R=1.0 A=0.5", c.R, c.A)
	}
}

// TestFillSpanBlendOverlay checks the source-over formula with the exact
// canvas overlay color (black, alpha 50): an opaque white pixel must become
// gray 205 and stay opaque.
func TestFillSpanBlendOverlay(t *testing.T) {
	pm := NewPixmap(8, 1)
	pm.Clear(White)

	pm.FillSpanBlend(0, 8, 0, RGBA8(0, 0, 0, 50))

	data := pm.Data()
	for x := 0; x < 8; x++ {
		i := x * 4
		if data[i+0] != 205 || data[i+1] != 205 || data[i+2] != 205 {
			t.Fatalf("pixel %d: got (%d, %d, %d), want (205, 205, 205)",
				x, data[i+0], data[i+1], data[i+2])
		}
		if data[i+3] != 255 {
			t.Fatalf("pixel %d alpha: got %d, want 255", x, data[i+3])
		}
	}
}

func TestFillSpanBlendBounds(t *testing.T) {
	pm := NewPixmap(100, 100)
	pm.Clear(Black)

	testCases := []struct {
		name string
		x1   int
		x2   int
		y    int
	}{
		{"negative x1", -10, 10, 50},
		{"x2 beyond width", 90, 150, 50},
		{"both out of bounds", -10, 150, 50},
		{"negative y", 10, 20, -1},
		{"y beyond height", 10, 20, 100},
		{"x1 == x2", 10, 10, 50},
		{"x1 > x2", 20, 10, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Should not panic
			pm.FillSpanBlend(tc.x1, tc.x2, tc.y, Red)
			pm.FillSpan(tc.x1, tc.x2, tc.y, Red)
		})
	}
}

func TestFillSpan(t *testing.T) {
	pm := NewPixmap(100, 1)
	pm.Clear(Black)

	pm.FillSpan(10, 20, 0, Red)

	filled := 0
	for x := 0; x < 100; x++ {
		if pm.GetPixel(x, 0).R == 1.0 {
			filled++
		}
	}
	if filled != 10 {
		t.Errorf("filled pixels: got %d, want 10", filled)
	}
}

// TestBlendPixelAlphaCoverage verifies coverage scaling: full coverage of an
// opaque color overwrites, zero coverage is a no-op.
func TestBlendPixelAlphaCoverage(t *testing.T) {
	pm := NewPixmap(4, 1)
	pm.Clear(White)

	pm.BlendPixelAlpha(0, 0, RGBA8(251, 191, 36, 255), 255)
	data := pm.Data()
	if data[0] != 251 || data[1] != 191 || data[2] != 36 || data[3] != 255 {
		t.Errorf("full coverage: got (%d, %d, %d, %d), want (251, 191, 36, 255)",
			data[0], data[1], data[2], data[3])
	}

	before := pm.GetPixel(1, 0)
	pm.BlendPixelAlpha(1, 0, Red, 0)
	after := pm.GetPixel(1, 0)
	if before != after {
		t.Errorf("zero coverage modified the pixel")
	}
}

// TestEncodePNGRoundTrip verifies the lossless codec contract for an opaque
// canvas: decode(encode(pm)) reproduces the exact pixel buffer.
func TestEncodePNGRoundTrip(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.Clear(White)
	pm.FillSpanBlend(0, 16, 3, RGBA8(0, 0, 0, 50))
	pm.FillSpan(2, 9, 7, RGBA8(96, 165, 250, 255))

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := FromImage(img)
	if !bytes.Equal(got.Data(), pm.Data()) {
		t.Errorf("round-trip changed pixel data")
	}
}

func TestFromImageNil(t *testing.T) {
	if pm := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))); pm != nil {
		t.Errorf("expected nil pixmap for empty image")
	}
}

func TestFromImagePremultipliesNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Pix[0] = 255 // R
	src.Pix[3] = 128 // A

	pm := FromImage(src)
	data := pm.Data()
	if data[0] != 128 || data[3] != 128 {
		t.Errorf("got (%d, _, _, %d), want (128, _, _, 128)", data[0], data[3])
	}
}
