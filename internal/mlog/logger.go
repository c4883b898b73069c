package mlog

import (
	"bytes"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

var (
	l   = initLogger()
	nop = zerolog.Nop()
)

func initLogger() *zerolog.Logger {
	var out io.Writer
	if ok, _ := strconv.ParseBool(os.Getenv("DLIST_JSONLOGGER")); ok {
		out = os.Stderr
	} else {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli}
	}
	logger := zerolog.New(out).With().Timestamp().Logger()

	// Redirect std log
	w := WriteToLogger(&logger, zerolog.InfoLevel, "redirect std log", "data")
	log.SetFlags(0) // disable time/date
	log.SetPrefix("")
	log.SetOutput(w)
	return &logger
}

func L() *zerolog.Logger {
	return l
}

func SetLvl(lvl zerolog.Level) {
	zerolog.SetGlobalLevel(lvl)
}

func Lvl() zerolog.Level {
	return zerolog.GlobalLevel()
}

func Nop() *zerolog.Logger {
	return &nop
}

func WriteToLogger(to *zerolog.Logger, lvl zerolog.Level, msg string, key string) io.Writer {
	return &logCatcher{logger: to, lvl: lvl, msg: msg, key: key}
}

type logCatcher struct {
	logger *zerolog.Logger
	lvl    zerolog.Level
	msg    string
	key    string
}

func (w *logCatcher) Write(b []byte) (int, error) {
	n := len(b)
	b = bytes.TrimSpace(b)
	w.logger.WithLevel(w.lvl).Bytes(w.key, b).Msg(w.msg)
	return n, nil
}
