// File: render/graphics.go
package render

import "image/color"

// ShapeKind selects the primitive a Handle draws.
type ShapeKind string

const (
	Square ShapeKind = "square"
	Circle ShapeKind = "circle"
)

// Alignment of text around its anchor.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Font describes how score text should look; backends approximate it.
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// Size is a shape's width and height in arena units.
type Size struct {
	Width  float64
	Height float64
}

// Handle refers to a shape created by CreateShape.
type Handle int

// Graphics is the window/canvas collaborator. Coordinates are arena units
// with the origin at the center and y pointing up. Calls between two
// PresentFrame calls are staged and become visible together.
type Graphics interface {
	CreateShape(kind ShapeKind, c color.Color, size Size) Handle
	SetPosition(h Handle, x, y float64)
	ClearAndDrawText(text string, align Alignment, font Font)
	PresentFrame()
}

var (
	Background = color.Black
	Foreground = color.White
)

// ScoreFont matches the classic bold Courier score line.
var ScoreFont = Font{Family: "Courier", Size: 24, Bold: true}

// scoreInset is how far below the top edge the score line sits.
const scoreInset = 60

// shape is the staged state of one Handle, shared by the backends.
type shape struct {
	Kind  ShapeKind
	Color color.Color
	Size  Size
	X, Y  float64
}

// scene is a complete set of staged drawing instructions.
type scene struct {
	Shapes []shape
	Text   string
	Align  Alignment
	Font   Font
}

func (s scene) clone() scene {
	out := s
	out.Shapes = make([]shape, len(s.Shapes))
	copy(out.Shapes, s.Shapes)
	return out
}

func (s *scene) create(kind ShapeKind, c color.Color, size Size) Handle {
	s.Shapes = append(s.Shapes, shape{Kind: kind, Color: c, Size: size})
	return Handle(len(s.Shapes) - 1)
}

func (s *scene) move(h Handle, x, y float64) {
	if int(h) < 0 || int(h) >= len(s.Shapes) {
		return
	}
	s.Shapes[h].X, s.Shapes[h].Y = x, y
}

func (s *scene) write(text string, align Alignment, font Font) {
	s.Text, s.Align, s.Font = text, align, font
}
