package skin

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"skinvault/savefile"
)

const swatchSize = 32

// Preview renders the palette as a horizontal strip of six swatches
// and encodes it to w as a PNG.
func Preview(w io.Writer, p savefile.Palette) error {
	if len(p) != savefile.PaletteSize {
		return fmt.Errorf("%w: %d values, expected %d", savefile.ErrMalformedPalette, len(p), savefile.PaletteSize)
	}

	m := image.NewPaletted(image.Rect(0, 0, swatchSize*savefile.PaletteSize, swatchSize), Master)

	for i, v := range p {
		if int(v) >= len(Master) {
			return fmt.Errorf("%w: value %d at index %d, maximum is %d", savefile.ErrPaletteOutOfRange, v, i, savefile.MaxValue)
		}
		r := image.Rect(i*swatchSize, 0, (i+1)*swatchSize, swatchSize)
		draw.Draw(m, r, image.NewUniform(Master[v]), image.Point{}, draw.Src)
	}

	return png.Encode(w, m)
}

// PreviewFile renders the skin file at src to a PNG at dest.
func PreviewFile(src, dest string) error {
	p, err := ReadFile(src)
	if err != nil {
		return err
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	if err := Preview(f, p); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
