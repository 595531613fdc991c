/*
 * Copyright (C) 2023 by Jason Figge
 */

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level orders log messages by severity.
type Level int

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	for l := TRACE; l <= ERROR; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger writes leveled lines through a standard library logger.
type Logger struct {
	mu    sync.Mutex
	out   *log.Logger
	level Level
}

func New(w io.Writer, level Level) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags), level: level}
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

var std = New(os.Stderr, INFO)

// Default returns the process-wide logger.
func Default() *Logger {
	return std
}

func SetOutput(w io.Writer) {
	std.out.SetOutput(w)
}

func SetLevel(level Level) {
	std.SetLevel(level)
}

func Tracef(format string, args ...interface{}) {
	std.Logf(TRACE, format, args...)
}

func Debugf(format string, args ...interface{}) {
	std.Logf(DEBUG, format, args...)
}

func Infof(format string, args ...interface{}) {
	std.Logf(INFO, format, args...)
}

func Warnf(format string, args ...interface{}) {
	std.Logf(WARN, format, args...)
}

func Errorf(format string, args ...interface{}) {
	std.Logf(ERROR, format, args...)
}
