package render

import "image/color"

// 3x5 bitmap glyphs for tick labels. Each row is 3 bits, msb left.
// Only the characters strconv.FormatFloat emits are covered.
var glyphs = map[rune][5]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	'e': {0b111, 0b100, 0b110, 0b100, 0b111},
}

const (
	glyphWidth  = 3
	glyphHeight = 5
)

// DrawString renders s with the builtin bitmap font, top-left anchored
// at x, y. Unknown runes advance without drawing.
func (r *ImageRenderer) DrawString(x, y int, s string, col color.RGBA) {
	for _, c := range s {
		g, ok := glyphs[c]
		if ok {
			for row := 0; row < glyphHeight; row++ {
				for bit := 0; bit < glyphWidth; bit++ {
					if g[row]&(1<<(glyphWidth-1-bit)) != 0 {
						r.img.SetRGBA(x+bit, y+row, col)
					}
				}
			}
		}
		x += glyphWidth + 1
	}
}

// StringWidth returns the device width of s in the builtin font.
func StringWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return 0
	}
	return n*(glyphWidth+1) - 1
}
