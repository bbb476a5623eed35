package utils

import "time"

const (
	Period     = 20 * time.Millisecond  // 50 ticks per second
	ScorePause = 500 * time.Millisecond // Freeze after a point

	ShutdownTimeout = 2 * time.Second
	AskTimeout      = 100 * time.Millisecond
)
