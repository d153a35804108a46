// Package assets loads the animation sets the game draws with.
//
// An animation set is a directory of frames sorted by file name. Frames are
// either text glyph art (.txt, one line per terminal row) or images (.png).
// Every set is authored facing right; the left-facing sequence is a mirrored
// copy made at load time.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Size of one glyph cell in world units. Text frames are sized in these.
const (
	GlyphW = 8
	GlyphH = 16
)

// Animation set directory names.
const (
	DirPlayer = "playerRunning"
	DirZombie = "zombieWalk"
	DirBullet = "bullet"
)

// ErrAnimationNotFound is returned when a set directory is missing or has no frames.
var ErrAnimationNotFound = errors.New("animation set not found")

//go:embed glyphs
var glyphFS embed.FS

// Frame is one sprite image. W and H give its size in world units, which is
// also the collision box of whatever shows it.
type Frame struct {
	Glyphs [][]rune // nil for image frames
	Image  image.Image
	Color  core.Color
	W, H   float64
}

// Sprite is a facing-keyed pair of frame sequences of equal length.
type Sprite struct {
	Name  string
	Right []*Frame
	Left  []*Frame
}

// Frames returns the sequence for the given facing.
func (s *Sprite) Frames(left bool) []*Frame {
	if left {
		return s.Left
	}
	return s.Right
}

// Len returns the number of frames per facing.
func (s *Sprite) Len() int {
	return len(s.Right)
}

// Catalog holds every animation set the game needs.
type Catalog struct {
	Player *Sprite
	Zombie *Sprite
	Bullet *Sprite
}

var setColors = map[string]core.Color{
	DirPlayer: core.ColorBrightGreen,
	DirZombie: core.ColorRed,
	DirBullet: core.ColorBrightYellow,
}

// Default returns the built-in glyph catalog.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(glyphFS, "glyphs")
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return Load(sub)
}

// Load reads all animation sets from fsys. A missing or empty set is an error
// wrapping ErrAnimationNotFound.
func Load(fsys fs.FS) (*Catalog, error) {
	var cat Catalog
	for _, dst := range []struct {
		dir string
		out **Sprite
	}{
		{DirPlayer, &cat.Player},
		{DirZombie, &cat.Zombie},
		{DirBullet, &cat.Bullet},
	} {
		s, err := LoadSprite(fsys, dst.dir)
		if err != nil {
			return nil, err
		}
		*dst.out = s
	}
	return &cat, nil
}

// LoadDir loads the catalog from a directory on disk. Every animation set
// must be present; there is no fallback to the built-in sprites.
func LoadDir(dir string) (*Catalog, error) {
	cat, err := Load(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, dir)
	}
	return cat, nil
}

// LoadSprite reads one animation set directory.
func LoadSprite(fsys fs.FS, dir string) (*Sprite, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: %s: %w", dir, ErrAnimationNotFound)
		}
		return nil, fmt.Errorf("assets: read %s: %w", dir, err)
	}

	s := &Sprite{Name: dir}
	color := setColors[dir]
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := path.Join(dir, e.Name())

		var f *Frame
		switch strings.ToLower(path.Ext(name)) {
		case ".txt":
			f, err = loadGlyphs(fsys, name)
		case ".png":
			f, err = loadImage(fsys, name)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		f.Color = color
		s.Right = append(s.Right, f)
		s.Left = append(s.Left, Mirror(f))
	}

	if len(s.Right) == 0 {
		return nil, fmt.Errorf("assets: %s has no frames: %w", dir, ErrAnimationNotFound)
	}
	return s, nil
}

func loadGlyphs(fsys fs.FS, name string) (*Frame, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return ParseGlyphs(data)
}

// ParseGlyphs builds a text frame. Trailing blank lines are dropped and the
// frame is as wide as its longest line.
func ParseGlyphs(data []byte) (*Frame, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, errors.New("assets: empty glyph frame")
	}

	cols := 0
	for _, l := range lines {
		cols = max(cols, utf8.RuneCountInString(l))
	}

	glyphs := make([][]rune, len(lines))
	for y, l := range lines {
		row := []rune(l)
		for len(row) < cols {
			row = append(row, ' ')
		}
		glyphs[y] = row
	}

	return &Frame{
		Glyphs: glyphs,
		W:      float64(cols * GlyphW),
		H:      float64(len(lines) * GlyphH),
	}, nil
}

func loadImage(fsys fs.FS, name string) (*Frame, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	b := img.Bounds()
	return &Frame{
		Image: img,
		W:     float64(b.Dx()),
		H:     float64(b.Dy()),
	}, nil
}
