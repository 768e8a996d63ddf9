package skin

import "image/color"

// Master approximates on screen the 40 fixed colors a palette value
// selects from, in value order. Save records store indices into this
// table, never the colors themselves, so it only affects previews and
// image conversion.
var Master = color.Palette{
	// grays
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x30, 0x30, 0x30, 0xff},
	color.RGBA{0x60, 0x60, 0x60, 0xff},
	color.RGBA{0x90, 0x90, 0x90, 0xff},
	color.RGBA{0xc0, 0xc0, 0xc0, 0xff},
	color.RGBA{0xe8, 0xe8, 0xe8, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
	color.RGBA{0xf8, 0xf0, 0xe0, 0xff},
	// reds
	color.RGBA{0x58, 0x10, 0x10, 0xff},
	color.RGBA{0x90, 0x18, 0x18, 0xff},
	color.RGBA{0xc8, 0x20, 0x20, 0xff},
	color.RGBA{0xf8, 0x40, 0x38, 0xff},
	// oranges and browns
	color.RGBA{0x60, 0x38, 0x10, 0xff},
	color.RGBA{0xa0, 0x58, 0x18, 0xff},
	color.RGBA{0xe0, 0x80, 0x20, 0xff},
	color.RGBA{0xf8, 0xa8, 0x40, 0xff},
	// yellows
	color.RGBA{0x98, 0x80, 0x10, 0xff},
	color.RGBA{0xd0, 0xb0, 0x18, 0xff},
	color.RGBA{0xf8, 0xd8, 0x30, 0xff},
	color.RGBA{0xf8, 0xf0, 0x78, 0xff},
	// greens
	color.RGBA{0x10, 0x48, 0x18, 0xff},
	color.RGBA{0x18, 0x78, 0x28, 0xff},
	color.RGBA{0x30, 0xb0, 0x40, 0xff},
	color.RGBA{0x70, 0xe0, 0x68, 0xff},
	// cyans
	color.RGBA{0x10, 0x50, 0x50, 0xff},
	color.RGBA{0x18, 0x88, 0x88, 0xff},
	color.RGBA{0x30, 0xc0, 0xc0, 0xff},
	color.RGBA{0x78, 0xe8, 0xe0, 0xff},
	// blues
	color.RGBA{0x10, 0x20, 0x60, 0xff},
	color.RGBA{0x18, 0x38, 0xa0, 0xff},
	color.RGBA{0x28, 0x58, 0xe0, 0xff},
	color.RGBA{0x58, 0x90, 0xf8, 0xff},
	// purples
	color.RGBA{0x40, 0x10, 0x58, 0xff},
	color.RGBA{0x68, 0x18, 0x90, 0xff},
	color.RGBA{0x98, 0x28, 0xc8, 0xff},
	color.RGBA{0xc8, 0x58, 0xf0, 0xff},
	// pinks
	color.RGBA{0x70, 0x18, 0x40, 0xff},
	color.RGBA{0xb0, 0x28, 0x68, 0xff},
	color.RGBA{0xe8, 0x48, 0x98, 0xff},
	color.RGBA{0xf8, 0x90, 0xc8, 0xff},
}
