package assets

import (
	"image"
	"image/draw"
)

var mirroredRunes = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'▌': '▐', '▐': '▌',
}

// Mirror returns a horizontally flipped copy of f.
func Mirror(f *Frame) *Frame {
	out := &Frame{Color: f.Color, W: f.W, H: f.H}

	if f.Glyphs != nil {
		out.Glyphs = make([][]rune, len(f.Glyphs))
		for y, row := range f.Glyphs {
			n := len(row)
			flipped := make([]rune, n)
			for x, r := range row {
				if m, ok := mirroredRunes[r]; ok {
					r = m
				}
				flipped[n-1-x] = r
			}
			out.Glyphs[y] = flipped
		}
	}

	if f.Image != nil {
		b := f.Image.Bounds()
		src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Bounds(), f.Image, b.Min, draw.Src)

		dst := image.NewRGBA(src.Bounds())
		w := b.Dx()
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < w; x++ {
				dst.SetRGBA(w-1-x, y, src.RGBAAt(x, y))
			}
		}
		out.Image = dst
	}

	return out
}
