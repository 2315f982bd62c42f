package wallpaper

// RenderOptions describes one render request: the cards to draw and the
// layout configuration. The JSON field names are the host wire contract.
type RenderOptions struct {
	// Cards to render, in order. At most MaxCards are drawn; extras are
	// ignored.
	Cards []Card `json:"cards"`

	// Anchor is the screen corner cards stack from.
	Anchor Anchor `json:"position"`

	// CardWidth is the fixed card width in pixels.
	CardWidth int `json:"card_width"`

	// CardOpacity scales the card fill alpha, in [0, 1].
	CardOpacity float64 `json:"card_opacity"`

	// BlurBackground requests a blurred background. The compositor itself
	// never acts on this flag; RenderWallpaper honors it before the canvas
	// is built.
	BlurBackground bool `json:"blur_background"`

	// DarkMode selects the light-on-dark card palette.
	DarkMode bool `json:"is_dark_mode"`
}

// DefaultOptions returns the default render configuration:
// no cards, bottom-right anchor, 280px cards at 0.85 opacity, dark mode.
func DefaultOptions() RenderOptions {
	return RenderOptions{
		Cards:          nil,
		Anchor:         AnchorBottomRight,
		CardWidth:      280,
		CardOpacity:    0.85,
		BlurBackground: false,
		DarkMode:       true,
	}
}
