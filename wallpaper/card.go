package wallpaper

import "fmt"

// Kind identifies what a card summarizes.
type Kind int

const (
	// KindMemo is a free-form note.
	KindMemo Kind = iota
	// KindTask is a to-do item.
	KindTask
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMemo:
		return "memo"
	case KindTask:
		return "task"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindMemo, KindTask:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("wallpaper: invalid card kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown kinds are an error; the kind set is closed.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "memo":
		*k = KindMemo
	case "task":
		*k = KindTask
	default:
		return fmt.Errorf("wallpaper: unknown card kind %q", text)
	}
	return nil
}

// Anchor is the screen corner from which cards stack.
type Anchor int

const (
	// AnchorBottomRight stacks cards upward from the bottom-right corner.
	AnchorBottomRight Anchor = iota
	// AnchorBottomLeft stacks cards upward from the bottom-left corner.
	AnchorBottomLeft
	// AnchorTopRight stacks cards downward from the top-right corner.
	AnchorTopRight
	// AnchorTopLeft stacks cards downward from the top-left corner.
	AnchorTopLeft
)

// String returns the wire name of the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorBottomRight:
		return "bottomright"
	case AnchorBottomLeft:
		return "bottomleft"
	case AnchorTopRight:
		return "topright"
	case AnchorTopLeft:
		return "topleft"
	default:
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	switch a {
	case AnchorBottomRight, AnchorBottomLeft, AnchorTopRight, AnchorTopLeft:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("wallpaper: invalid anchor %d", int(a))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(text []byte) error {
	parsed, err := ParseAnchor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAnchor converts a wire name into an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "bottomright":
		return AnchorBottomRight, nil
	case "bottomleft":
		return AnchorBottomLeft, nil
	case "topright":
		return AnchorTopRight, nil
	case "topleft":
		return AnchorTopLeft, nil
	default:
		return 0, fmt.Errorf("wallpaper: unknown anchor %q", s)
	}
}

// IsBottom reports whether cards stack upward from the bottom edge.
func (a Anchor) IsBottom() bool {
	return a == AnchorBottomRight || a == AnchorBottomLeft
}

// IsRight reports whether cards align to the right edge.
func (a Anchor) IsRight() bool {
	return a == AnchorBottomRight || a == AnchorTopRight
}

// Card is one widget to render: a text summary of a task or memo.
// Cards are value types supplied by the host and read-only to the
// compositor; render order is input order.
type Card struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Kind    Kind   `json:"card_type"`
	Pinned  bool   `json:"is_pinned"`
}
