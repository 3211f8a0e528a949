// Package main demonstrates attaching path context with errctx and reporting
// the resulting chain through zerolog.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xgx-io/errctx"
)

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = zerolog.DebugLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(level).With().Timestamp().Logger()
}

// readConfig reads name from dir. Failures carry the full path as context.
func readConfig(dir, name string) ([]byte, error) {
	path := filepath.Join(dir, name)
	annotate := errctx.PathFunc[error](path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, annotate(err)
	}
	if info.IsDir() {
		return nil, annotate(fmt.Errorf("expected a file: %w", fs.ErrInvalid))
	}
	b, err := os.ReadFile(path)
	return b, errctx.WrapPath(err, path)
}

func main() {
	log := newLogger()

	dir := os.TempDir()
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	for _, name := range []string{"does-not-exist.yaml", "."} {
		b, err := readConfig(dir, name)
		if err != nil {
			path, _ := errctx.ContextOf[string](err)
			log.Error().
				Str("path", path).
				Str("chain", errctx.Report(err)).
				Str("root", errctx.Root(err).Error()).
				Bool("not_exist", errors.Is(err, fs.ErrNotExist)).
				Msg("read config")
			log.Debug().Msgf("%+v", err)
			continue
		}
		log.Info().Int("bytes", len(b)).Msg("read config")
	}
}
