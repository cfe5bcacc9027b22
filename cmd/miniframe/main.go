package main

import (
	"log/slog"
	"os"

	"github.com/leengari/mini-frame/internal/frame"
	"github.com/leengari/mini-frame/internal/logging"
	"github.com/leengari/mini-frame/internal/repl"
)

func main() {
	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	slog.SetDefault(logger)

	frame.RegisterObserver(frame.NewLoggingObserver())

	// An optional file path preloads the session
	initial := ""
	if len(os.Args) > 1 {
		initial = os.Args[1]
	}

	repl.Start(initial)
}
