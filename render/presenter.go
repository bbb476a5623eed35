// File: render/presenter.go
package render

import (
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
)

// Presenter turns frames into Graphics calls. It creates the paddles and the
// ball on the first frame, moves them on every frame and rewrites the score
// line only when the score changes.
type Presenter struct {
	cfg     utils.Config
	gfx     Graphics
	created bool
	left    Handle
	right   Handle
	ball    Handle
	score   game.Score
	written bool
}

func NewPresenter(cfg utils.Config, gfx Graphics) *Presenter {
	return &Presenter{cfg: cfg, gfx: gfx}
}

// Present implements game.Presenter.
func (p *Presenter) Present(frame game.Frame) {
	if !p.created {
		paddle := Size{Width: p.cfg.PaddleWidth, Height: p.cfg.PaddleHeight}
		p.left = p.gfx.CreateShape(Square, Foreground, paddle)
		p.right = p.gfx.CreateShape(Square, Foreground, paddle)
		p.ball = p.gfx.CreateShape(Circle, Foreground, Size{Width: p.cfg.BallSize, Height: p.cfg.BallSize})
		p.created = true
	}

	p.gfx.SetPosition(p.left, frame.LeftPaddle.X, frame.LeftPaddle.Y)
	p.gfx.SetPosition(p.right, frame.RightPaddle.X, frame.RightPaddle.Y)
	p.gfx.SetPosition(p.ball, frame.Ball.X, frame.Ball.Y)

	if !p.written || frame.Score != p.score || game.HasPoint(frame.Events) {
		p.gfx.ClearAndDrawText(frame.Score.String(), AlignCenter, ScoreFont)
		p.score = frame.Score
		p.written = true
	}

	p.gfx.PresentFrame()
}
