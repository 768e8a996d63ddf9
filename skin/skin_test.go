package skin

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skinvault/savefile"
)

func TestMasterHasOneColorPerValue(t *testing.T) {
	assert.Len(t, Master, savefile.MaxValue+1)
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.skin")
	p := savefile.Palette{0, 13, 26, 39, 1, 2}

	require.NoError(t, WriteFile(path, p))

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, p, out)
}

func TestReadFileWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.skin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4, 5, 6, 7}, 0644))

	_, err := ReadFile(path)
	require.ErrorIs(t, err, savefile.ErrMalformedPalette)
}

func TestWriteFileWrongSize(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "bad.skin"), savefile.Palette{1, 2})
	require.ErrorIs(t, err, savefile.ErrMalformedPalette)
}

func TestPreview(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Preview(&b, savefile.Palette{0, 8, 16, 24, 32, 39}))

	m, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, 6*swatchSize, m.Bounds().Dx())
	assert.Equal(t, swatchSize, m.Bounds().Dy())

	// each swatch is a solid block of its master color
	for i, v := range []byte{0, 8, 16, 24, 32, 39} {
		expected := color.NRGBAModel.Convert(Master[v])
		actual := color.NRGBAModel.Convert(m.At(i*swatchSize+swatchSize/2, swatchSize/2))
		assert.Equal(t, expected, actual, "swatch %d", i)
	}
}

func TestPreviewMalformedPalette(t *testing.T) {
	var b bytes.Buffer
	err := Preview(&b, savefile.Palette{1, 2, 3})
	require.ErrorIs(t, err, savefile.ErrMalformedPalette)
}

func TestPreviewValueOutOfRange(t *testing.T) {
	var b bytes.Buffer
	err := Preview(&b, savefile.Palette{0, 0, 0, 0, 0, 40})
	require.ErrorIs(t, err, savefile.ErrPaletteOutOfRange)
}

func TestFromImage(t *testing.T) {
	// six vertical bars of distinct master colors
	m := image.NewRGBA(image.Rect(0, 0, 60, 10))
	for i, v := range []byte{3, 11, 19, 23, 31, 39} {
		draw.Draw(m, image.Rect(i*10, 0, (i+1)*10, 10), image.NewUniform(Master[v]), image.Point{}, draw.Src)
	}

	p, err := FromImage(m)
	require.NoError(t, err)
	require.Len(t, []byte(p), savefile.PaletteSize)

	for _, v := range p {
		assert.LessOrEqual(t, v, byte(savefile.MaxValue))
	}
}

func TestFromImageFlatColor(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(m, m.Bounds(), image.NewUniform(Master[12]), image.Point{}, draw.Src)

	p, err := FromImage(m)
	require.NoError(t, err)
	require.Len(t, []byte(p), savefile.PaletteSize)

	// a flat image still yields a full palette
	for _, v := range p {
		assert.Equal(t, byte(12), v)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dest := filepath.Join(dir, "out.skin")

	m := image.NewRGBA(image.Rect(0, 0, 16, 16))
	draw.Draw(m, m.Bounds(), image.NewUniform(Master[5]), image.Point{}, draw.Src)

	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, m))
	require.NoError(t, f.Close())

	require.NoError(t, ConvertFile(src, dest))

	p, err := ReadFile(dest)
	require.NoError(t, err)
	assert.Len(t, []byte(p), savefile.PaletteSize)
}
