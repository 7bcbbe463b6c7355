// package log defines a strict two-level logger, referenced from
// https://dave.cheney.net/2015/11/05/lets-talk-about-logging.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const (
	// InfoLevel outputs only calling Info*.
	// DebugLevel outputs all of outputting call, Info* and Debug*.
	InfoLevel = iota
	DebugLevel
)

// DebugPrefix is placed right after the logger prefix when calling Debug*.
const DebugPrefix = "DEBUG: "

// Logger has only 2 levels, info and debug.
// Output errors are not returned for convenient use.
type Logger struct {
	logger *log.Logger

	mu    sync.Mutex
	level int
}

func New(w io.Writer, prefix string, flag int) *Logger {
	return &Logger{
		logger: log.New(w, prefix, flag),
		level:  InfoLevel,
	}
}

func (l *Logger) output(calldepth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.logger.Output(calldepth, msg)
}

func (l *Logger) Info(v ...interface{})                 { l.output(3, fmt.Sprint(v...)) }
func (l *Logger) Infof(format string, v ...interface{}) { l.output(3, fmt.Sprintf(format, v...)) }

func (l *Logger) debugOutput(calldepth int, msg string) {
	l.mu.Lock()
	level := l.level
	l.mu.Unlock()
	if level < DebugLevel {
		return
	}
	l.output(calldepth+1, DebugPrefix+msg)
}

func (l *Logger) Debug(v ...interface{})                 { l.debugOutput(3, fmt.Sprint(v...)) }
func (l *Logger) Debugf(format string, v ...interface{}) { l.debugOutput(3, fmt.Sprintf(format, v...)) }

func (l *Logger) SetOutput(w io.Writer) { l.logger.SetOutput(w) }

func (l *Logger) SetLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// the package level logger, shared in the process.
var std = New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

func SetOutput(w io.Writer) { std.SetOutput(w) }
func SetLevel(level int)    { std.SetLevel(level) }
func Level() int            { return std.Level() }

func Info(v ...interface{})                 { std.output(3, fmt.Sprint(v...)) }
func Infof(format string, v ...interface{}) { std.output(3, fmt.Sprintf(format, v...)) }

func Debug(v ...interface{})                 { std.debugOutput(3, fmt.Sprint(v...)) }
func Debugf(format string, v ...interface{}) { std.debugOutput(3, fmt.Sprintf(format, v...)) }
