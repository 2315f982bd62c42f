// Package wallpaper composes task/memo card widgets onto a background
// photograph and encodes the result as PNG bytes suitable for use as a
// desktop wallpaper.
//
// The package is a stateless pipeline over the cardwall drawing core:
//
//	img, err := wallpaper.LoadBackground("bg.jpg")
//	pm, err := wallpaper.BuildCanvas(img)
//	wallpaper.Render(pm, opts)
//	png, err := wallpaper.EncodePNG(pm)
//
// or, end to end:
//
//	png, err := wallpaper.RenderWallpaper("bg.jpg", opts)
//
// Nothing persists across calls; every invocation is a pure function of its
// inputs. Concurrent renders must each use their own pixmap.
package wallpaper
