// File: render/ascii.go
package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/lguibr/pingpong/utils"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// maxGray is the channel sum of white
const maxGray = 3 * 255

// ASCII is a character-grid Graphics backend used by the terminal spectator.
// Each PresentFrame rasterizes the staged scene into cols x rows cells and
// calls OnPresent, if set.
type ASCII struct {
	cfg       utils.Config
	cols      int
	rows      int
	OnPresent func(a *ASCII)

	mu     sync.Mutex
	staged scene
	cells  [][]cell
}

type cell struct {
	Ch    rune
	Color color.Color
}

func NewASCII(cfg utils.Config, cols, rows int) *ASCII {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	a := &ASCII{cfg: cfg, cols: cols, rows: rows}
	a.cells = a.blank()
	return a
}

// --- Graphics ---

func (a *ASCII) CreateShape(kind ShapeKind, c color.Color, size Size) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.staged.create(kind, c, size)
}

func (a *ASCII) SetPosition(h Handle, x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.staged.move(h, x, y)
}

func (a *ASCII) ClearAndDrawText(line string, align Alignment, font Font) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.staged.write(line, align, font)
}

func (a *ASCII) PresentFrame() {
	a.mu.Lock()
	a.cells = a.rasterize(a.staged)
	onPresent := a.OnPresent
	a.mu.Unlock()

	if onPresent != nil {
		onPresent(a)
	}
}

// --- Output ---

// Lines returns the last presented frame as plain text rows.
func (a *ASCII) Lines() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	lines := make([]string, len(a.cells))
	for r, row := range a.cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Ch)
		}
		lines[r] = b.String()
	}
	return lines
}

func (a *ASCII) String() string {
	return strings.Join(a.Lines(), "\n")
}

// ANSI returns the last presented frame with 24-bit color escape codes.
func (a *ASCII) ANSI() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var b strings.Builder
	for _, row := range a.cells {
		for _, c := range row {
			if c.Color == nil {
				b.WriteRune(c.Ch)
				continue
			}
			b.WriteString(rgbToAnsi(c.Color))
			b.WriteRune(c.Ch)
			b.WriteString("\033[0m") // Reset color after each character
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Each calls fn for every non-blank cell of the last presented frame.
func (a *ASCII) Each(fn func(col, row int, ch rune, c color.Color)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for r, row := range a.cells {
		for col, c := range row {
			if c.Ch != ' ' {
				fn(col, r, c.Ch, c.Color)
			}
		}
	}
}

// --- Rasterization ---

func (a *ASCII) blank() [][]cell {
	cells := make([][]cell, a.rows)
	for r := range cells {
		cells[r] = make([]cell, a.cols)
		for c := range cells[r] {
			cells[r][c] = cell{Ch: ' '}
		}
	}
	return cells
}

func (a *ASCII) rasterize(s scene) [][]cell {
	cells := a.blank()

	// Wall margins
	wall := a.cfg.HalfHeight() - a.cfg.WallMargin
	for _, y := range []float64{wall, -wall} {
		r := a.row(y)
		for c := 0; c < a.cols; c++ {
			cells[r][c] = cell{Ch: '-'}
		}
	}

	for _, sh := range s.Shapes {
		ch := grayToASCII(rgbToGray(sh.Color))
		if sh.Kind == Circle {
			ch = 'O'
		}
		c0, c1 := a.col(sh.X-sh.Size.Width/2), a.col(sh.X+sh.Size.Width/2)
		r0, r1 := a.row(sh.Y+sh.Size.Height/2), a.row(sh.Y-sh.Size.Height/2)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				cells[r][c] = cell{Ch: ch, Color: sh.Color}
			}
		}
	}

	if s.Text != "" {
		r := a.row(a.cfg.HalfHeight() - scoreInset)
		runes := []rune(s.Text)
		start := 0
		switch s.Align {
		case AlignCenter:
			start = (a.cols - len(runes)) / 2
		case AlignRight:
			start = a.cols - len(runes)
		}
		for i, ch := range runes {
			if c := start + i; c >= 0 && c < a.cols {
				cells[r][c] = cell{Ch: ch}
			}
		}
	}
	return cells
}

// col maps an arena x to a grid column.
func (a *ASCII) col(x float64) int {
	f := (x + a.cfg.HalfWidth()) / a.cfg.Width * float64(a.cols-1)
	return int(utils.Clamp(math.Round(f), 0, float64(a.cols-1)))
}

// row maps an arena y (up) to a grid row (down).
func (a *ASCII) row(y float64) int {
	f := (a.cfg.HalfHeight() - y) / a.cfg.Height * float64(a.rows-1)
	return int(utils.Clamp(math.Round(f), 0, float64(a.rows-1)))
}

// rgbToGray sums the 8-bit channels of c (0..765).
func rgbToGray(c color.Color) int {
	if c == nil {
		return 0
	}
	r, g, b, _ := c.RGBA()
	return int(r>>8) + int(g>>8) + int(b>>8)
}

// grayToASCII maps a channel sum to a character; brighter is denser
func grayToASCII(gray int) rune {
	index := gray * (len(asciiChars) - 1) / maxGray
	if index < 1 {
		index = 1 // Never draw a shape as blank
	}
	if index >= len(asciiChars) {
		index = len(asciiChars) - 1
	}
	return rune(asciiChars[index])
}

// rgbToAnsi converts a color to an ANSI escape code for that color
func rgbToAnsi(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r>>8, g>>8, b>>8)
}
