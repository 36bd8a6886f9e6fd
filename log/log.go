package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level is the logging level: None, Error, Warn, Info, Verbose, or Debug
type Level int

const (
	// None means that the log should never write
	None Level = iota

	// Error means that only errors will be written
	Error

	// Warn means that errors and warnings will be written
	Warn

	// Info logging writes info, warning, and error
	Info

	// Verbose logs everything but debug-level messages
	Verbose

	// Debug logs every message
	Debug

	stdOutLogname = "__stdout"
	stdErrLogname = "__stderr"
)

var levelNames = map[Level]string{
	None:    "none",
	Error:   "error",
	Warn:    "warn",
	Info:    "info",
	Verbose: "verbose",
	Debug:   "debug",
}

func (lvl Level) String() string {
	if s, ok := levelNames[lvl]; ok {
		return s
	}
	return fmt.Sprintf("level(%d)", int(lvl))
}

// ParseLevel returns the level with the given name, ignoring case.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(name)
	for lvl, s := range levelNames {
		if s == name {
			return lvl, nil
		}
	}
	return None, fmt.Errorf("Unknown log level '%s'", name)
}

var m sync.RWMutex
var ls = map[string]*Log{}

// Log is a leveled logger.  Leveled messages are prefixed with the level
// name; Printf output is written as-is.
type Log struct {
	w   io.Writer
	lvl Level
}

// GetLog will return a log for the given name, creating one with the
// provided writer as needed.  A new log starts at the Error level.
func GetLog(name string, w io.Writer) *Log {
	m.RLock()
	l, ok := ls[name]
	m.RUnlock()
	if ok {
		return l
	}

	m.Lock()
	defer m.Unlock()

	if l, ok := ls[name]; ok {
		return l
	}

	l = &Log{w, Error}
	ls[name] = l
	return l
}

// Stderr gets the log for os.Stderr
func Stderr() *Log {
	return GetLog(stdErrLogname, os.Stderr)
}

// Stdout gets the log for os.Stdout
func Stdout() *Log {
	return GetLog(stdOutLogname, os.Stdout)
}

// Level returns the current level.  If the pointer receiver is nil, the log
// for `os.Stdout` will be used.
func (l *Log) Level() Level {
	if l == nil {
		l = Stdout()
	}

	m.RLock()
	defer m.RUnlock()
	return l.lvl
}

// SetLevel will adjust the logger's level.  If the pointer receiver is nil,
// the log for `os.Stdout` will be used.
func (l *Log) SetLevel(lvl Level) {
	if l == nil {
		l = Stdout()
	}

	m.Lock()
	l.lvl = lvl
	m.Unlock()
}

// SetWriter redirects the log's output.  If the pointer receiver is nil, the
// log for `os.Stdout` will be used.
func (l *Log) SetWriter(w io.Writer) {
	if l == nil {
		l = Stdout()
	}

	m.Lock()
	l.w = w
	m.Unlock()
}

// Debugf will write if the log level is at least Debug.
func (l *Log) Debugf(msg string, v ...interface{}) {
	l.writeIf(Debug, msg, v...)
}

// Verbosef will write if the log level is at least Verbose.
func (l *Log) Verbosef(msg string, v ...interface{}) {
	l.writeIf(Verbose, msg, v...)
}

// Infof will write if the log level is at least Info.
func (l *Log) Infof(msg string, v ...interface{}) {
	l.writeIf(Info, msg, v...)
}

// Warnf will write if the log level is at least Warn.
func (l *Log) Warnf(msg string, v ...interface{}) {
	l.writeIf(Warn, msg, v...)
}

// Errorf will write if the log level is at least Error.
func (l *Log) Errorf(msg string, v ...interface{}) {
	l.writeIf(Error, msg, v...)
}

// Printf will always log the given message, regardless of log level set.
// If the pointer receiver is nil, the log for `os.Stdout` will be used.
func (l *Log) Printf(msg string, v ...interface{}) {
	if l == nil {
		l = Stdout()
	}

	l.write("", msg, v...)
}

func (l *Log) writeIf(lvl Level, msg string, v ...interface{}) {
	if l == nil {
		l = Stdout()
	}

	if l.Level() < lvl {
		return
	}

	l.write(fmt.Sprintf("[%s] ", lvl), msg, v...)
}

func (l *Log) write(prefix, msg string, v ...interface{}) {
	if v != nil {
		msg = fmt.Sprintf(msg, v...)
	}

	m.RLock()
	w := l.w
	m.RUnlock()

	w.Write([]byte(prefix + msg))
}
