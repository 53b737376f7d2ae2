package initialize

import (
	"os"

	"recipe-shelf/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// basic zerolog setup: console writer to stdout
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}

// ApplyLogLevel parses and applies the configured level; unknown values
// keep the current level.
func ApplyLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return
	}
	global.Logger = global.Logger.Level(lvl)
}
