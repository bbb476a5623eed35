// File: render/window.go
package render

import (
	"image/color"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
)

// Key repeat timing in ebiten update ticks (60 per second).
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 2
)

// KeySink receives keyboard actions from the window.
type KeySink func(action game.Action)

// Binding ties a physical key to a game action.
type Binding struct {
	Key    ebiten.Key
	Action game.Action
}

// DefaultBindings maps W/S to the left paddle and the arrow keys to the right one.
var DefaultBindings = []Binding{
	{ebiten.KeyW, game.MoveLeftPaddleUp},
	{ebiten.KeyS, game.MoveLeftPaddleDown},
	{ebiten.KeyArrowUp, game.MoveRightPaddleUp},
	{ebiten.KeyArrowDown, game.MoveRightPaddleDown},
}

// Window is the ebiten backend: it implements Graphics for the presenter and
// ebiten.Game for the run loop, and forwards key presses to a KeySink.
//
// Graphics calls come from the game actor goroutine while ebiten draws on its
// own; staged and visible scenes are swapped under mu in PresentFrame.
type Window struct {
	cfg      utils.Config
	face     *text.GoXFace
	bindings []Binding
	keys     KeySink
	stop     <-chan struct{}

	mu      sync.Mutex
	staged  scene
	visible scene
}

func NewWindow(cfg utils.Config) *Window {
	return &Window{
		cfg:      cfg,
		face:     text.NewGoXFace(basicfont.Face7x13),
		bindings: DefaultBindings,
	}
}

// BindKeys sets where key presses go. Call before Run.
func (w *Window) BindKeys(sink KeySink) { w.keys = sink }

// StopWhen ends Run once done is closed. Call before Run.
func (w *Window) StopWhen(done <-chan struct{}) { w.stop = done }

// Run opens the window and blocks until it is closed or StopWhen fires.
func (w *Window) Run() error {
	ebiten.SetWindowSize(int(w.cfg.Width), int(w.cfg.Height))
	ebiten.SetWindowTitle(w.cfg.Title)
	slog.Info("window opening", "width", w.cfg.Width, "height", w.cfg.Height)
	return ebiten.RunGame(w)
}

// --- Graphics ---

func (w *Window) CreateShape(kind ShapeKind, c color.Color, size Size) Handle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.staged.create(kind, c, size)
}

func (w *Window) SetPosition(h Handle, x, y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.staged.move(h, x, y)
}

func (w *Window) ClearAndDrawText(line string, align Alignment, font Font) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.staged.write(line, align, font)
}

func (w *Window) PresentFrame() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = w.staged.clone()
}

// --- ebiten.Game ---

func (w *Window) Update() error {
	if w.stop != nil {
		select {
		case <-w.stop:
			return ebiten.Termination
		default:
		}
	}
	if w.keys == nil {
		return nil
	}
	for _, b := range w.bindings {
		if keyFires(inpututil.KeyPressDuration(b.Key)) {
			w.keys(b.Action)
		}
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	visible := w.visible.clone()
	w.mu.Unlock()

	screen.Fill(Background)

	for _, s := range visible.Shapes {
		sx, sy := w.toScreen(s.X, s.Y)
		switch s.Kind {
		case Circle:
			vector.FillCircle(screen, float32(sx), float32(sy), float32(s.Size.Width/2), s.Color, true)
		default:
			vector.FillRect(screen,
				float32(sx-s.Size.Width/2), float32(sy-s.Size.Height/2),
				float32(s.Size.Width), float32(s.Size.Height),
				s.Color, false)
		}
	}

	if visible.Text != "" {
		op := &text.DrawOptions{}
		scale := 1.0
		if visible.Font.Size > 0 {
			scale = visible.Font.Size / float64(basicfont.Face7x13.Height)
		}
		op.GeoM.Scale(scale, scale)
		tx, ty := w.toScreen(0, w.cfg.HalfHeight()-scoreInset)
		switch visible.Align {
		case AlignLeft:
			op.PrimaryAlign = text.AlignStart
			tx = 0
		case AlignRight:
			op.PrimaryAlign = text.AlignEnd
			tx = w.cfg.Width
		default:
			op.PrimaryAlign = text.AlignCenter
		}
		op.GeoM.Translate(tx, ty)
		op.ColorScale.ScaleWithColor(Foreground)
		text.Draw(screen, visible.Text, w.face, op)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.cfg.Width), int(w.cfg.Height)
}

// toScreen converts arena coordinates (center origin, y up) to pixels.
func (w *Window) toScreen(x, y float64) (float64, float64) {
	return w.cfg.HalfWidth() + x, w.cfg.HalfHeight() - y
}

// keyFires reports whether a key held for the given number of update ticks
// should produce an action: once on press, then repeatedly after a delay.
func keyFires(held int) bool {
	if held == 1 {
		return true
	}
	return held > keyRepeatDelay && (held-keyRepeatDelay)%keyRepeatInterval == 0
}
