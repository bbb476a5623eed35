// File: render/presenter_test.go
package render

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingGraphics logs every Graphics call as a readable string.
type recordingGraphics struct {
	calls []string
	next  Handle
}

func (g *recordingGraphics) CreateShape(kind ShapeKind, c color.Color, size Size) Handle {
	h := g.next
	g.next++
	g.calls = append(g.calls, fmt.Sprintf("create %d %s %vx%v", h, kind, size.Width, size.Height))
	return h
}

func (g *recordingGraphics) SetPosition(h Handle, x, y float64) {
	g.calls = append(g.calls, fmt.Sprintf("move %d %v,%v", h, x, y))
}

func (g *recordingGraphics) ClearAndDrawText(text string, align Alignment, font Font) {
	g.calls = append(g.calls, fmt.Sprintf("text %q %s %s/%v", text, align, font.Family, font.Size))
}

func (g *recordingGraphics) PresentFrame() {
	g.calls = append(g.calls, "present")
}

func (g *recordingGraphics) reset() { g.calls = nil }

func TestPresenter_FirstFrameCreatesShapesAndScore(t *testing.T) {
	cfg := utils.DefaultConfig()
	gfx := &recordingGraphics{}
	presenter := NewPresenter(cfg, gfx)

	presenter.Present(game.NewFrame("s", game.NewState(cfg), nil))

	assert.Equal(t, []string{
		"create 0 square 20x100",
		"create 1 square 20x100",
		"create 2 circle 20x20",
		"move 0 -380,0",
		"move 1 380,0",
		"move 2 0,0",
		`text "Left: 0  |  Right: 0" center Courier/24`,
		"present",
	}, gfx.calls)
}

func TestPresenter_LaterFramesOnlyMove(t *testing.T) {
	cfg := utils.DefaultConfig()
	gfx := &recordingGraphics{}
	presenter := NewPresenter(cfg, gfx)
	state := game.NewState(cfg)
	presenter.Present(game.NewFrame("s", state, nil))
	gfx.reset()

	_, err := game.Step(state, cfg)
	require.NoError(t, err)
	presenter.Present(game.NewFrame("s", state, nil))

	assert.Equal(t, []string{
		"move 0 -380,0",
		"move 1 380,0",
		"move 2 8,8",
		"present",
	}, gfx.calls)
}

func TestPresenter_RewritesScoreAfterPoint(t *testing.T) {
	cfg := utils.DefaultConfig()
	gfx := &recordingGraphics{}
	presenter := NewPresenter(cfg, gfx)
	state := game.NewState(cfg)
	presenter.Present(game.NewFrame("s", state, nil))
	gfx.reset()

	state.Ball.X, state.Ball.Y, state.Ball.Dx = 399, 150, 8
	events, err := game.Step(state, cfg)
	require.NoError(t, err)
	require.True(t, game.HasPoint(events))
	presenter.Present(game.NewFrame("s", state, events))

	assert.Contains(t, gfx.calls, `text "Left: 1  |  Right: 0" center Courier/24`)
	assert.Equal(t, "present", gfx.calls[len(gfx.calls)-1], "present is always last")
}

func TestPresenter_LateJoinDrawsCurrentScore(t *testing.T) {
	cfg := utils.DefaultConfig()
	gfx := &recordingGraphics{}
	state := game.NewState(cfg)
	state.Score = game.Score{Left: 4, Right: 2}

	NewPresenter(cfg, gfx).Present(game.NewFrame("s", state, nil))

	assert.Contains(t, gfx.calls, `text "Left: 4  |  Right: 2" center Courier/24`)
}
