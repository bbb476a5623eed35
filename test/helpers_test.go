// File: test/helpers_test.go
package test

import (
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/lguibr/pingpong/game"
	"golang.org/x/net/websocket"
)

// ReadFrame reads one frame from the spectator socket with a timeout.
func ReadFrame(t *testing.T, ws *websocket.Conn, timeout time.Duration) (game.Frame, error) {
	t.Helper()
	var frame game.Frame
	if ws == nil {
		return frame, errors.New("websocket connection is nil")
	}
	if err := ws.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return frame, err
		}
		return frame, fmt.Errorf("failed to set read deadline: %w", err)
	}
	err := websocket.JSON.Receive(ws, &frame)
	_ = ws.SetReadDeadline(time.Time{})
	return frame, err
}

// WaitForFrame reads frames until match accepts one or the timeout passes.
func WaitForFrame(t *testing.T, ws *websocket.Conn, timeout time.Duration, match func(game.Frame) bool) (game.Frame, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		frame, err := ReadFrame(t, ws, time.Until(deadline))
		if err != nil {
			t.Logf("WaitForFrame: read error: %v", err)
			return game.Frame{}, false
		}
		if match(frame) {
			return frame, true
		}
	}
	return game.Frame{}, false
}
