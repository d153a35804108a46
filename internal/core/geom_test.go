package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name   string
		x, y   int
		inside bool
	}{
		{"top-left corner", 10, 10, true},
		{"last cell", 29, 24, true},
		{"right edge is exclusive", 30, 12, false},
		{"bottom edge is exclusive", 12, 25, false},
		{"left of rect", 5, 15, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.inside {
				t.Errorf("Contains(%d, %d) = %v", tt.x, tt.y, got)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	if got := NewRect(0, 1, 80, 23).Inset(1); got != NewRect(1, 2, 78, 21) {
		t.Errorf("Inset(1) = %+v", got)
	}
	if got := NewRect(0, 0, 1, 3).Inset(1); got.W != 0 || got.H != 1 {
		t.Errorf("tiny rect inset = %+v, size must not go negative", got)
	}
}

func TestFitViewport(t *testing.T) {
	vp := FitViewport(NewRect(1, 2, 128, 32), 1024, 512)
	if vp.OriginX != 1 || vp.OriginY != 2 || vp.CellW != 8 || vp.CellH != 16 {
		t.Errorf("FitViewport() = %+v", vp)
	}

	if vp := FitViewport(Rect{}, 10, 10); vp.CellW != 10 || vp.CellH != 10 {
		t.Errorf("empty area = %+v, expected one cell", vp)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := Viewport{OriginX: 1, OriginY: 2, CellW: 8, CellH: 16}

	x, y := vp.ToCell(V(0, 0))
	if x != 1 || y != 2 {
		t.Errorf("ToCell(0,0) = (%d, %d), expected (1, 2)", x, y)
	}

	x, y = vp.ToCell(V(17, 33))
	if x != 3 || y != 4 {
		t.Errorf("ToCell(17,33) = (%d, %d), expected (3, 4)", x, y)
	}

	p := vp.ToWorld(3, 4)
	if p != V(20, 40) {
		t.Errorf("ToWorld(3,4) = %v, expected (20, 40)", p)
	}
	if cx, cy := vp.ToCell(p); cx != 3 || cy != 4 {
		t.Errorf("round trip landed on (%d, %d)", cx, cy)
	}
}
