package skin

import (
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/ericpauley/go-quantize/quantize"

	"skinvault/savefile"
)

// FromImage reduces m to six representative colors and maps each onto
// the nearest master color, returning the resulting palette. Images
// with fewer than six distinct colors repeat their last color rather
// than padding with black.
func FromImage(m image.Image) (savefile.Palette, error) {
	q := quantize.MedianCutQuantizer{}

	reduced := q.Quantize(make(color.Palette, 0, savefile.PaletteSize), m)
	if len(reduced) == 0 {
		return nil, errors.New("skin: image has no pixels to quantize")
	}

	p := make(savefile.Palette, savefile.PaletteSize)
	for i := range p {
		c := reduced[len(reduced)-1]
		if i < len(reduced) {
			c = reduced[i]
		}
		p[i] = byte(Master.Index(c))
	}

	return p, nil
}

// ConvertFile quantizes the image at src (PNG, GIF or JPEG) into a
// skin file at dest.
func ConvertFile(src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	p, err := FromImage(m)
	if err != nil {
		return err
	}

	return WriteFile(dest, p)
}
