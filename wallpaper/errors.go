package wallpaper

import "fmt"

// DecodeError reports an unreadable or unsupported background image,
// including zero-sized sources.
type DecodeError struct {
	Path string // background path, if known
	Err  error  // underlying cause, if any
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("wallpaper: decode background %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("wallpaper: decode background: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AllocationError reports that the canvas pixel buffer could not be
// created. It is terminal for the render call.
type AllocationError struct {
	Width  int
	Height int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("wallpaper: cannot allocate %dx%d canvas", e.Width, e.Height)
}

// EncodeError reports a PNG serialization failure. No partial output is
// produced.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("wallpaper: encode png: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
