package wallpaper

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/cardwall"
)

func testCanvas(t *testing.T, w, h int) *cardwall.Pixmap {
	t.Helper()
	pm, err := BuildCanvas(whiteBackground(w, h))
	require.NoError(t, err)
	return pm
}

// pixelAt returns the raw premultiplied RGBA bytes of one pixel.
func pixelAt(pm *cardwall.Pixmap, x, y int) [4]uint8 {
	i := (y*pm.Width() + x) * 4
	data := pm.Data()
	return [4]uint8{data[i], data[i+1], data[i+2], data[i+3]}
}

func TestRenderEmptyCardsDrawsNothing(t *testing.T) {
	pm := testCanvas(t, 64, 64)
	before := append([]uint8(nil), pm.Data()...)

	Render(pm, DefaultOptions())

	assert.Equal(t, before, pm.Data())
}

func TestRenderCardChangesPixels(t *testing.T) {
	pm := testCanvas(t, 800, 600)
	opts := DefaultOptions()
	opts.Cards = []Card{{Title: "t", Content: "short"}}

	before := pixelAt(pm, 600, 520) // inside the card box (488, 492)-(768, 568)
	Render(pm, opts)
	after := pixelAt(pm, 600, 520)

	assert.NotEqual(t, before, after, "card interior should be tinted")

	// A pixel far from the card block is untouched.
	assert.Equal(t, [4]uint8{205, 205, 205, 255}, pixelAt(pm, 100, 100))
}

// TestRenderPinColors verifies the exact pin palette at the pin center:
// amber for memos, blue for tasks.
func TestRenderPinColors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want [4]uint8
	}{
		{"memo amber", KindMemo, [4]uint8{251, 191, 36, 255}},
		{"task blue", KindTask, [4]uint8{96, 165, 250, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := testCanvas(t, 800, 600)
			opts := DefaultOptions()
			opts.Cards = []Card{{Title: "t", Content: "short", Kind: tt.kind, Pinned: true}}

			Render(pm, opts)

			// Card box is (488, 492, 280, 76); pin center is 12px in from
			// the top-right corner.
			assert.Equal(t, tt.want, pixelAt(pm, 756, 504))
		})
	}
}

func TestRenderUnpinnedHasNoPin(t *testing.T) {
	pm := testCanvas(t, 800, 600)
	opts := DefaultOptions()
	opts.Cards = []Card{{Title: "t", Content: "short", Kind: KindTask, Pinned: false}}

	Render(pm, opts)

	px := pixelAt(pm, 756, 504)
	assert.NotEqual(t, [4]uint8{96, 165, 250, 255}, px)
	assert.NotEqual(t, [4]uint8{251, 191, 36, 255}, px)
}

// TestRenderDropsExtraCards verifies that cards past MaxCards produce no
// pixels: rendering six cards equals rendering the first four.
func TestRenderDropsExtraCards(t *testing.T) {
	cards := make([]Card, 6)
	for i := range cards {
		cards[i] = Card{Content: "x", Pinned: true}
	}

	capped := testCanvas(t, 800, 600)
	optsCapped := DefaultOptions()
	optsCapped.Cards = cards[:MaxCards]
	Render(capped, optsCapped)

	full := testCanvas(t, 800, 600)
	optsFull := DefaultOptions()
	optsFull.Cards = cards
	Render(full, optsFull)

	assert.Equal(t, capped.Data(), full.Data())
}

func TestRenderZeroCardWidthSkipsShapes(t *testing.T) {
	pm := testCanvas(t, 200, 200)
	before := append([]uint8(nil), pm.Data()...)

	opts := DefaultOptions()
	opts.CardWidth = 0
	opts.Cards = []Card{{Content: "x", Pinned: true}}

	Render(pm, opts)

	assert.Equal(t, before, pm.Data())
}

func TestEncodePNG(t *testing.T) {
	pm := testCanvas(t, 32, 16)

	data, err := EncodePNG(pm)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestRenderWallpaperPipeline(t *testing.T) {
	bg := filepath.Join(t.TempDir(), "bg.png")
	pm := cardwall.NewPixmap(320, 240)
	pm.Clear(cardwall.White)
	require.NoError(t, pm.SavePNG(bg))

	opts := DefaultOptions()
	opts.Cards = []Card{{Title: "t", Content: "short", Pinned: true}}
	opts.BlurBackground = true

	data, err := RenderWallpaper(bg, opts)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestRenderWallpaperMissingBackground(t *testing.T) {
	_, err := RenderWallpaper(filepath.Join(t.TempDir(), "missing.png"), DefaultOptions())
	require.Error(t, err)

	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}
