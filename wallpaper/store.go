package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"
)

// WallpaperFileName is the fixed output filename the host points the OS
// wallpaper facility at. Reusing one name lets repeated renders replace the
// active wallpaper in place.
const WallpaperFileName = "cardwall_wallpaper.png"

// Store persists rendered wallpapers in an application-data directory.
// Setting the OS wallpaper itself is the host's responsibility.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. An empty dir selects
// <user config dir>/cardwall/wallpapers, falling back to the working
// directory when no user directory is available.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		dir = filepath.Join(base, "cardwall", "wallpapers")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("wallpaper: create store dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes PNG bytes to the fixed wallpaper file and returns its path.
func (s *Store) Save(png []byte) (string, error) {
	path := filepath.Join(s.dir, WallpaperFileName)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("wallpaper: save wallpaper: %w", err)
	}
	return path, nil
}
