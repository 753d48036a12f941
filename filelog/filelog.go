// Package filelog appends timestamped text lines to a file.
//
// New truncates the file and writes a header line holding the local time.
// Every later write appends one line. Clone and Move reopen the same path in
// append mode, so several loggers can share one growing file without writing
// a second header.
package filelog

import (
	"fmt"
	"os"
	"time"

	"github.com/colorfulnotion/arcutil/arcerrors"
	"github.com/colorfulnotion/arcutil/log"
)

// HeaderLayout is the time layout of the first line of every log file.
const HeaderLayout = "2006-01-02 15:04:05"

// Logger is not safe for concurrent use. The owner must Close it.
type Logger struct {
	path string
	f    *os.File
}

// New creates or truncates path, writes the header line and keeps the file
// open for appending.
func New(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", arcerrors.ErrLogOpen, err)
	}
	l := &Logger{path: path, f: f}
	if err := l.LogMessage(time.Now().Format(HeaderLayout)); err != nil {
		f.Close()
		return nil, err
	}
	log.Debug(log.FileLogMonitoring, "log created", "path", path)
	return l, nil
}

func openAppend(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", arcerrors.ErrLogOpen, err)
	}
	return f, nil
}

func (l *Logger) Path() string {
	return l.path
}

// LogMessage appends message and a newline in a single write.
func (l *Logger) LogMessage(message string) error {
	if l.f == nil {
		return arcerrors.ErrLogClosed
	}
	if _, err := l.f.WriteString(message + "\n"); err != nil {
		return fmt.Errorf("%w: %v", arcerrors.ErrLogWrite, err)
	}
	return nil
}

// Log formats its operands like fmt.Sprint and appends the result as one line.
func (l *Logger) Log(v ...any) error {
	return l.LogMessage(fmt.Sprint(v...))
}

func (l *Logger) Logf(format string, args ...any) error {
	return l.LogMessage(fmt.Sprintf(format, args...))
}

// LogIf logs v only when cond holds.
func (l *Logger) LogIf(cond bool, v ...any) error {
	if !cond {
		return nil
	}
	return l.Log(v...)
}

// Clone returns an independent Logger appending to the same path. The header
// is not written again. l keeps its own handle.
func (l *Logger) Clone() (*Logger, error) {
	f, err := openAppend(l.path)
	if err != nil {
		return nil, err
	}
	log.Debug(log.FileLogMonitoring, "log cloned", "path", l.path)
	return &Logger{path: l.path, f: f}, nil
}

// Move returns a Logger appending to l's path and closes l. Writes through l
// afterwards fail with ErrLogClosed.
func (l *Logger) Move() (*Logger, error) {
	f, err := openAppend(l.path)
	if err != nil {
		return nil, err
	}
	if err := l.Close(); err != nil {
		f.Close()
		return nil, err
	}
	log.Debug(log.FileLogMonitoring, "log moved", "path", l.path)
	return &Logger{path: l.path, f: f}, nil
}

// CopyFrom closes l's handle and points l at other's path in append mode.
func (l *Logger) CopyFrom(other *Logger) error {
	if l == other {
		return nil
	}
	f, err := openAppend(other.path)
	if err != nil {
		return err
	}
	if err := l.Close(); err != nil {
		f.Close()
		return err
	}
	l.path = other.path
	l.f = f
	return nil
}

// Close closes the handle if it is open. It is safe to call more than once.
func (l *Logger) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	log.Debug(log.FileLogMonitoring, "log closed", "path", l.path)
	return err
}
