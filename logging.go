package main

import (
	"fmt"
	"io"
	"time"
)

type LogLevel string

const (
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
	LevelDebug LogLevel = "DEBUG"
)

type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// StreamLogger writes timestamped log lines to Out. Debug lines are dropped unless Verbose is set.
type StreamLogger struct {
	Out     io.Writer
	Verbose bool
}

// NewStreamLogger returns a StreamLogger writing to out.
func NewStreamLogger(out io.Writer, verbose bool) *StreamLogger {
	return &StreamLogger{Out: out, Verbose: verbose}
}

// log is a helper function that formats the log message with a timestamp and log level.
func (l *StreamLogger) log(level LogLevel, msg string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	fmt.Fprintf(l.Out, "%s [%s] %s\n", timestamp, level, fmt.Sprintf(msg, args...))
}

// Info, Warn, Error, and Debug methods implement the Logger interface for StreamLogger.
func (l *StreamLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

func (l *StreamLogger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, msg, args...)
}

func (l *StreamLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

func (l *StreamLogger) Debug(msg string, args ...interface{}) {
	if !l.Verbose {
		return
	}
	l.log(LevelDebug, msg, args...)
}
