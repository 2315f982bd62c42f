package wallpaper

import "math"

// Fixed layout metrics, in pixels.
const (
	// MaxCards is the most cards a single render draws; extras are
	// dropped without being measured.
	MaxCards = 4

	outerMargin  = 32.0 // gap between the canvas edge and the card block
	cardMargin   = 12.0 // gap between stacked cards
	cardPadding  = 16.0 // inner padding above and below the text bands
	cornerRadius = 16.0

	titleBand    = 24.0 // height reserved for a non-empty title
	lineHeight   = 20.0 // height of one estimated content line
	charsPerLine = 30.0 // character-count line-wrap heuristic
)

// LayoutBox is the computed placement of one card. It exists only for the
// duration of a render call.
type LayoutBox struct {
	X, Y, W, H float64
}

// CardHeight estimates the rendered height of a card.
//
// The content band is a character-count heuristic, not text measurement:
// ceil(len(content)/30) lines of 20px, at least one line even for empty
// content. Length is in bytes, so multi-byte runes widen the estimate.
func CardHeight(card Card) float64 {
	titleHeight := 0.0
	if card.Title != "" {
		titleHeight = titleBand
	}
	contentLines := math.Max(math.Ceil(float64(len(card.Content))/charsPerLine), 1.0)
	return titleHeight + contentLines*lineHeight + cardPadding*2
}

// Layout computes the placement of each drawable card on a width x height
// canvas. At most MaxCards boxes are returned, in card input order.
//
// Bottom anchors stack upward from the bottom margin, so the first card
// sits closest to the screen edge; top anchors stack downward in input
// order.
func Layout(opts RenderOptions, width, height int) []LayoutBox {
	cards := opts.Cards
	if len(cards) > MaxCards {
		cards = cards[:MaxCards]
	}
	if len(cards) == 0 {
		return nil
	}

	cardWidth := float64(opts.CardWidth)

	var startX float64
	if opts.Anchor.IsRight() {
		startX = float64(width) - cardWidth - outerMargin
	} else {
		startX = outerMargin
	}

	var currentY float64
	if opts.Anchor.IsBottom() {
		currentY = float64(height) - outerMargin
	} else {
		currentY = outerMargin
	}

	boxes := make([]LayoutBox, 0, len(cards))
	for _, card := range cards {
		h := CardHeight(card)

		var y float64
		if opts.Anchor.IsBottom() {
			currentY -= h + cardMargin
			y = currentY + cardMargin
		} else {
			y = currentY
			currentY += h + cardMargin
		}

		boxes = append(boxes, LayoutBox{X: startX, Y: y, W: cardWidth, H: h})
	}

	return boxes
}
