/*
Package skin reads and writes skin files, the interchange format for a
single palette: exactly 6 raw bytes, one color-selection index per
byte, no header and no padding.

It also renders palettes to PNG previews and derives palettes from
arbitrary images using the approximate on-screen master colors.
*/
package skin

import (
	"fmt"
	"os"

	"skinvault/savefile"
)

// ReadFile reads the skin file at path, requiring exactly the 6
// palette bytes.
func ReadFile(path string) (savefile.Palette, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(b) != savefile.PaletteSize {
		return nil, fmt.Errorf("%w: %q is %d bytes, expected %d", savefile.ErrMalformedPalette, path, len(b), savefile.PaletteSize)
	}

	return savefile.Palette(b), nil
}

// WriteFile writes the palette to path as a skin file.
func WriteFile(path string, p savefile.Palette) error {
	if len(p) != savefile.PaletteSize {
		return fmt.Errorf("%w: %d values, expected %d", savefile.ErrMalformedPalette, len(p), savefile.PaletteSize)
	}

	return os.WriteFile(path, p, 0644)
}
