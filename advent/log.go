package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

type logger struct {
	z zerolog.Logger
}

// newLogger returns a console logger writing to w. Color is used only when
// w is a terminal and noColor is false. The logger may be used from
// several goroutines.
func newLogger(w io.Writer, verbose, noColor bool) *logger {
	if f, ok := w.(*os.File); !ok || !isTerminal(f) {
		noColor = true
	}
	out := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(w),
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &logger{z: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

func (l *logger) debugf(format string, args ...interface{}) {
	l.z.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *logger) infof(format string, args ...interface{}) {
	l.z.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *logger) warnf(format string, args ...interface{}) {
	l.z.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *logger) errorf(format string, args ...interface{}) {
	l.z.Error().Msg(fmt.Sprintf(format, args...))
}

func sizeString(n int) string {
	return humanize.Bytes(uint64(n))
}
