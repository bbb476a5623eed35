package main

import (
	"log/slog"
	"os"

	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/render"
	"github.com/lguibr/pingpong/server"
	"github.com/lguibr/pingpong/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg := utils.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		return 1
	}

	window := render.NewWindow(cfg)
	session, err := game.StartSession(cfg, game.SessionOptions{
		Presenters: []game.Presenter{render.NewPresenter(cfg, window)},
	})
	if err != nil {
		slog.Error("failed to start game", "error", err)
		return 1
	}

	window.BindKeys(session.Press)
	window.StopWhen(session.Done())

	feed := server.New(session.Engine(), session.GamePID(), session.BroadcasterPID(), utils.AskTimeout)
	httpServer := feed.Start(cfg.SpectatorAddr)

	runErr := window.Run()
	fatal := session.Err()

	server.Shutdown(httpServer, utils.ShutdownTimeout)
	session.Stop()

	switch {
	case fatal != nil:
		slog.Error("game ended on invalid state", "session", session.ID, "error", fatal)
		return 1
	case runErr != nil:
		slog.Error("window closed with error", "error", runErr)
		return 1
	}
	slog.Info("game over", "session", session.ID)
	return 0
}
