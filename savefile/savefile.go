/*
Package savefile implements the structural rules of the custom skin
save file.

The file begins with a fixed 15 byte ASCII header. Each character owns
a 0x40 byte region starting at its base offset, the first 40 bytes of
which hold 5 consecutive palette records of 8 bytes each. A record
stores the 6 palette values in bytes 1 through 6; bytes 0 and 7 are
padding. The padding carries no known meaning and is rewritten as zero
on encode.
*/
package savefile

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	// HeaderMagic identifies a valid save file
	HeaderMagic = "CUSTOMSKINSAVE1"

	// HeaderSize is the length in bytes of the magic header
	HeaderSize = len(HeaderMagic)

	// SlotsPerCharacter is the number of palette slots each character owns
	SlotsPerCharacter = 5

	// RecordSize is the on-disk size in bytes of one palette record
	RecordSize = 8

	// PaletteSize is the number of values in one palette
	PaletteSize = 6

	// MaxValue is the largest legal palette value
	MaxValue = 39

	// CharacterStride is the distance in bytes between adjacent
	// character regions
	CharacterStride = 0x40
)

var (
	// ErrTooSmall means the file cannot hold the header or a record
	ErrTooSmall = errors.New("savefile: file too small")

	// ErrHeaderMismatch means the file does not start with HeaderMagic
	ErrHeaderMismatch = errors.New("savefile: header mismatch")

	// ErrPaletteOutOfRange means a stored palette value exceeds MaxValue
	ErrPaletteOutOfRange = errors.New("savefile: palette value out of range")

	// ErrMalformedRecord means a byte sequence is not RecordSize bytes
	ErrMalformedRecord = errors.New("savefile: malformed record")

	// ErrMalformedPalette means a palette is not PaletteSize values
	ErrMalformedPalette = errors.New("savefile: malformed palette")
)

// SlotOffset returns the absolute byte offset of the 0-indexed slot
// within the character region starting at base.
func SlotOffset(base int64, slot int) int64 {
	return base + int64(slot)*RecordSize
}

// Validate checks b against the save file layout for every character
// base offset in bases: the magic header, then every palette record of
// every character. It stops at the first violation found, scanning
// characters in the order given and slots within each character, so a
// fixed file always reports the same violation.
func Validate(b []byte, bases []int64) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, header needs %d", ErrTooSmall, len(b), HeaderSize)
	}

	if !bytes.Equal(b[:HeaderSize], []byte(HeaderMagic)) {
		return fmt.Errorf("%w: expected %q, read %q", ErrHeaderMismatch, HeaderMagic, b[:HeaderSize])
	}

	for _, base := range bases {
		for slot := 0; slot < SlotsPerCharacter; slot++ {
			offset := SlotOffset(base, slot)
			if offset+RecordSize > int64(len(b)) {
				return fmt.Errorf("%w: record at %#x ends at %#x, file has %d bytes", ErrTooSmall, offset, offset+RecordSize, len(b))
			}

			var p Palette
			if err := p.UnmarshalBinary(b[offset : offset+RecordSize]); err != nil {
				return err
			}

			for i, v := range p {
				if v > MaxValue {
					return fmt.Errorf("%w: value %d at %#x index %d, maximum is %d", ErrPaletteOutOfRange, v, offset, i, MaxValue)
				}
			}
		}
	}

	return nil
}
