// File: test/e2e_setup_test.go
package test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/server"
	"github.com/lguibr/pingpong/utils"
	"github.com/stretchr/testify/require"
)

// E2ESetupResult holds the results of the setup function.
type E2ESetupResult struct {
	Session *game.Session
	Server  *httptest.Server
	WsURL   string
	Origin  string
	Cfg     utils.Config
}

// fastConfig ticks every 2ms so a full rally fits in a fraction of a second.
func fastConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.TickPeriod = 2 * time.Millisecond
	cfg.ScorePause = 20 * time.Millisecond
	return cfg
}

// SetupE2ETest starts a ticking session and serves its spectator feed.
func SetupE2ETest(t *testing.T, cfg utils.Config) E2ESetupResult {
	t.Helper()

	session, err := game.StartSession(cfg, game.SessionOptions{})
	require.NoError(t, err)

	feed := server.New(session.Engine(), session.GamePID(), session.BroadcasterPID(), time.Second)
	s := httptest.NewServer(feed.Routes())

	return E2ESetupResult{
		Session: session,
		Server:  s,
		WsURL:   "ws" + strings.TrimPrefix(s.URL, "http") + "/subscribe",
		Origin:  "http://localhost/",
		Cfg:     cfg,
	}
}

// TeardownE2ETest closes the server and stops the session.
func TeardownE2ETest(t *testing.T, setupResult E2ESetupResult) {
	t.Helper()
	if setupResult.Server != nil {
		setupResult.Server.Close()
	}
	if setupResult.Session != nil {
		setupResult.Session.Stop()
	}
}
