package window

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xff}
}

// rasterize returns the pixels of a frame. Image frames are returned as is;
// glyph frames become one solid block per non-blank cell.
func rasterize(f *assets.Frame) image.Image {
	if f.Image != nil {
		return f.Image
	}

	img := image.NewRGBA(image.Rect(0, 0, max(int(f.W), 1), max(int(f.H), 1)))
	fill := image.NewUniform(rgba(f.Color))
	for y, row := range f.Glyphs {
		for x, r := range row {
			if r == ' ' {
				continue
			}
			cell := image.Rect(x*assets.GlyphW, y*assets.GlyphH, (x+1)*assets.GlyphW, (y+1)*assets.GlyphH)
			draw.Draw(img, cell, fill, image.Point{}, draw.Src)
		}
	}
	return img
}

// imageCanvas blits frames onto an ebiten image in world coordinates.
// Converted frames are cached for the life of the window.
type imageCanvas struct {
	dst   *ebiten.Image
	cache map[*assets.Frame]*ebiten.Image
}

func (c *imageCanvas) Blit(f *assets.Frame, box core.Box) {
	img, ok := c.cache[f]
	if !ok {
		img = ebiten.NewImageFromImage(rasterize(f))
		c.cache[f] = img
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
	op.GeoM.Translate(box.X, box.Y)
	c.dst.DrawImage(img, op)
}
