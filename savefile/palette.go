package savefile

import "fmt"

// Palette is one custom skin: six color-selection indices in record
// order. It implements the encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler interfaces over the 8 byte on-disk
// record.
type Palette []byte

// MarshalBinary encodes the palette as an on-disk record. The two
// padding bytes are always written as zero, whatever the record being
// overwritten held there.
func (p Palette) MarshalBinary() ([]byte, error) {
	if len(p) != PaletteSize {
		return nil, fmt.Errorf("%w: %d values, expected %d", ErrMalformedPalette, len(p), PaletteSize)
	}

	b := make([]byte, RecordSize)
	copy(b[1:RecordSize-1], p)

	return b, nil
}

// UnmarshalBinary decodes an on-disk record, discarding the padding
// bytes without inspecting them.
func (p *Palette) UnmarshalBinary(b []byte) error {
	if len(b) != RecordSize {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrMalformedRecord, len(b), RecordSize)
	}

	*p = append(Palette(nil), b[1:RecordSize-1]...)

	return nil
}
