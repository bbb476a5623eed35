// File: render/window_test.go
package render

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFires(t *testing.T) {
	tests := []struct {
		held int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{keyRepeatDelay, false},
		{keyRepeatDelay + 1, false},
		{keyRepeatDelay + keyRepeatInterval, true},
		{keyRepeatDelay + 2*keyRepeatInterval, true},
		{keyRepeatDelay + 2*keyRepeatInterval + 1, false},
	}
	for _, tt := range tests {
		if got := keyFires(tt.held); got != tt.want {
			t.Errorf("keyFires(%d) = %v, want %v", tt.held, got, tt.want)
		}
	}
}

func TestDefaultBindings_CoverEveryAction(t *testing.T) {
	bound := map[game.Action]ebiten.Key{}
	for _, b := range DefaultBindings {
		bound[b.Action] = b.Key
	}
	for _, action := range game.Actions {
		_, ok := bound[action]
		assert.True(t, ok, "no key bound to %s", action)
	}
	assert.Equal(t, ebiten.KeyW, bound[game.MoveLeftPaddleUp])
	assert.Equal(t, ebiten.KeyArrowDown, bound[game.MoveRightPaddleDown])
}

func TestWindow_PresentFrameSwapsScene(t *testing.T) {
	cfg := utils.DefaultConfig()
	w := NewWindow(cfg)

	h := w.CreateShape(Square, color.White, Size{Width: 20, Height: 100})
	w.SetPosition(h, -380, 25)
	w.ClearAndDrawText("Left: 0  |  Right: 0", AlignCenter, ScoreFont)
	assert.Empty(t, w.visible.Shapes, "staged calls are not visible yet")

	w.PresentFrame()
	require.Len(t, w.visible.Shapes, 1)
	assert.Equal(t, -380.0, w.visible.Shapes[0].X)
	assert.Equal(t, 25.0, w.visible.Shapes[0].Y)
	assert.Equal(t, "Left: 0  |  Right: 0", w.visible.Text)

	w.SetPosition(h, -380, 50)
	assert.Equal(t, 25.0, w.visible.Shapes[0].Y, "visible scene is a copy")
}

func TestWindow_LayoutAndCoordinates(t *testing.T) {
	w := NewWindow(utils.DefaultConfig())

	width, height := w.Layout(1920, 1080)
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)

	x, y := w.toScreen(0, 0)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)
	x, y = w.toScreen(-380, 200)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 100.0, y)
}

func TestWindow_UpdateStopsWhenSessionEnds(t *testing.T) {
	w := NewWindow(utils.DefaultConfig())
	done := make(chan struct{})
	w.StopWhen(done)

	assert.NoError(t, w.Update())
	close(done)
	assert.ErrorIs(t, w.Update(), ebiten.Termination)
}
