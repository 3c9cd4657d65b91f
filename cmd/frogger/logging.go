package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

// newLogger builds the process logger from --log-level and --log-file and
// hands it to the game package. Without a log file, logs go to stderr when
// toStderr is set and are discarded otherwise, since the TUI owns the
// terminal. The returned func closes the log file.
func newLogger(toStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "frogger",
		Level:           level,
	})
	frogger.SetLogger(logger)

	return logger, closeFn, nil
}

// setupGames applies the config and difficulty flags before games are created.
func setupGames() {
	frogger.SetConfigPath(flagConfig)
	frogger.SetDifficultyPreset(flagDifficulty)
}
