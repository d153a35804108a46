package zombies

import (
	"fmt"

	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Screen layout: HUD on row 0, bordered arena below.
const (
	ArenaTop  = 1
	ImageChar = '█' // drawn for image frames, which have no glyphs
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.viewport = g.fitViewport(dst.Width(), dst.Height())
	frame := arenaFrame(dst.Width(), dst.Height())
	dst.DrawBox(frame)

	g.world.Draw(&screenCanvas{
		dst:  dst,
		vp:   g.viewport,
		clip: frame.Inset(1),
	})

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.world.Lost() {
		g.drawCenteredMessage(dst, "YOU DIED",
			fmt.Sprintf("Kills: %d  |  Press R to restart", g.world.Player().Kills()))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player()
	hud := fmt.Sprintf(" Kills: %d  Weapon: %s [1/2]  Zombies: %d ",
		p.Kills(), p.Weapon().Name, g.world.Enemies().Len())
	dst.DrawText(1, 0, hud)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}

// screenCanvas blits frames onto a terminal screen through a viewport.
// Glyph frames keep their authored size in cells; image frames fill the
// cells their box covers.
type screenCanvas struct {
	dst  *core.Screen
	vp   core.Viewport
	clip core.Rect
}

func (c *screenCanvas) Blit(f *assets.Frame, box core.Box) {
	x0, y0 := c.vp.ToCell(box.TopLeft())

	if f.Glyphs != nil {
		for dy, row := range f.Glyphs {
			for dx, r := range row {
				if r != ' ' {
					c.set(x0+dx, y0+dy, r, f.Color)
				}
			}
		}
		return
	}

	x1, y1 := c.vp.ToCell(core.V(box.Right(), box.Bottom()))
	for y := y0; y <= max(y0, y1-1); y++ {
		for x := x0; x <= max(x0, x1-1); x++ {
			c.set(x, y, ImageChar, f.Color)
		}
	}
}

func (c *screenCanvas) set(x, y int, r rune, col core.Color) {
	if c.clip.Contains(x, y) {
		c.dst.SetColored(x, y, r, col)
	}
}
