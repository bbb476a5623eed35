// Command spectator watches a running game in the terminal. It subscribes to
// the spectator feed and redraws every frame as ASCII art.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/lguibr/asciiring/helpers"
	"github.com/nsf/termbox-go"

	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/render"
	"github.com/lguibr/pingpong/utils"
)

const defaultURL = "ws://localhost:3001/subscribe"

// Grid used when the terminal size is unknown.
const (
	fallbackCols = 81
	fallbackRows = 41
)

func main() {
	url := defaultURL
	if len(os.Args) > 1 {
		url = os.Args[1]
	}
	if err := run(url); err != nil {
		slog.Error("spectator stopped", "error", err)
		os.Exit(1)
	}
}

// run renders with the local DefaultConfig. Frames carry positions only, so a
// server running a different arena geometry would be drawn out of scale.
func run(url string) error {
	header := http.Header{"Origin": []string{"http://localhost/"}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", url, err)
	}
	defer conn.Close()

	cfg := utils.DefaultConfig()

	if err := termbox.Init(); err != nil {
		slog.Warn("termbox unavailable, printing to stdout", "error", err)
		ascii := render.NewASCII(cfg, fallbackCols, fallbackRows)
		ascii.OnPresent = func(a *render.ASCII) {
			helpers.ClearScreen()
			fmt.Print(a.ANSI())
		}
		return stream(conn, render.NewPresenter(cfg, ascii), nil)
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.Output256)

	cols, rows := termbox.Size()
	if cols < 2 || rows < 2 {
		cols, rows = fallbackCols, fallbackRows
	}
	ascii := render.NewASCII(cfg, cols, rows)
	ascii.OnPresent = draw

	quit := make(chan struct{})
	go pollKeys(quit)

	return stream(conn, render.NewPresenter(cfg, ascii), quit)
}

// stream reads frames until the feed closes or quit fires.
func stream(conn *websocket.Conn, presenter game.Presenter, quit <-chan struct{}) error {
	frames := make(chan game.Frame)
	errs := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			var frame game.Frame
			if err := conn.ReadJSON(&frame); err != nil {
				errs <- err
				return
			}
			select {
			case frames <- frame:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case frame := <-frames:
			presenter.Present(frame)
		case err := <-errs:
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return nil
			}
			return fmt.Errorf("reading frame: %w", err)
		case <-quit:
			return nil
		}
	}
}

func pollKeys(quit chan<- struct{}) {
	for {
		ev := termbox.PollEvent()
		switch {
		case ev.Type == termbox.EventError, ev.Type == termbox.EventInterrupt:
			close(quit)
			return
		case ev.Type == termbox.EventKey && (ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q'):
			close(quit)
			return
		}
	}
}

func draw(a *render.ASCII) {
	_ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	a.Each(func(col, row int, ch rune, c color.Color) {
		termbox.SetCell(col, row, ch, attribute(c), termbox.ColorDefault)
	})
	_ = termbox.Flush()
}

// attribute maps c onto the 6x6x6 cube of the 256 color palette.
func attribute(c color.Color) termbox.Attribute {
	if c == nil {
		return termbox.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	cube := func(v uint32) uint32 { return (v >> 8) * 5 / 255 }
	index := 16 + 36*cube(r) + 6*cube(g) + cube(b)
	return termbox.Attribute(index + 1)
}
