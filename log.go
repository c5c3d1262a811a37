package herofx

import (
	"io"
	"log"
	"os"
)

// logger receives warnings from the overlay, the config watcher and debug
// mode. herofx is single-threaded apart from the watcher, and log.Logger
// serializes writes on its own.
var logger = log.New(os.Stderr, "[herofx] ", log.LstdFlags)

// SetLogger replaces the package logger. Passing nil silences all output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
