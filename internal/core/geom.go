// Package core holds the types shared by games and frontends: world
// vectors and boxes, the cell screen, input frames and runtime config.
// Nothing here imports a UI library.
package core

import "math"

// Rect is a block of terminal cells. World geometry uses Box.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rect with top-left (x, y) and size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rect.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side. The result never has a
// negative size.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// Viewport maps world coordinates onto terminal cells. World (0, 0)
// lands on cell (OriginX, OriginY).
type Viewport struct {
	OriginX, OriginY int
	CellW, CellH     float64 // world units per cell
}

// FitViewport stretches a world of w x h units over area. Each axis is
// scaled independently; an empty area is treated as one cell.
func FitViewport(area Rect, w, h float64) Viewport {
	return Viewport{
		OriginX: area.X,
		OriginY: area.Y,
		CellW:   w / float64(max(area.W, 1)),
		CellH:   h / float64(max(area.H, 1)),
	}
}

// ToCell returns the cell containing world point p.
func (v Viewport) ToCell(p Vec2) (int, int) {
	return v.OriginX + int(math.Floor(p.X/v.CellW)), v.OriginY + int(math.Floor(p.Y/v.CellH))
}

// ToWorld returns the world point at the centre of cell (x, y).
func (v Viewport) ToWorld(x, y int) Vec2 {
	return Vec2{
		X: (float64(x-v.OriginX) + 0.5) * v.CellW,
		Y: (float64(y-v.OriginY) + 0.5) * v.CellH,
	}
}
