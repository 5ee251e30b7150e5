// Package sessionlog writes the optional, append-only transcript of a session.
//
// One plain-text file is used per run, named after the local date at the time
// the Logger is created (<dir>/<year>-<month>-<day>.txt, month and day not
// zero-padded). Writes are best effort: a file that cannot be opened is skipped
// without surfacing an error to the caller.
package sessionlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// TimestampLayout matches the classic ctime rendering, e.g. "Wed Jun 30 21:49:08 1993".
const TimestampLayout = "Mon Jan _2 15:04:05 2006"

// FS is the filesystem surface the Logger needs.
type FS interface {
	MkdirAll(path string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error)
}

type osFS struct{}

func (osFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osFS) OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, flag, perm)
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithFS replaces the host filesystem.
func WithFS(fs FS) Option {
	return func(l *Logger) { l.fs = fs }
}

// WithDiagnostics routes skipped writes to a diagnostic logger at debug level.
func WithDiagnostics(diag *clog.Logger) Option {
	return func(l *Logger) { l.diag = diag }
}

// Logger appends entries to a single dated file. A nil *Logger is valid and
// discards everything, which is how a session without logging behaves.
type Logger struct {
	dir  string
	path string
	now  func() time.Time
	fs   FS
	diag *clog.Logger
}

// New ensures dir exists and fixes the file name from the current date. The
// name is not re-evaluated afterwards, so a run spanning midnight keeps
// writing to the file it started with.
func New(dir string, opts ...Option) *Logger {
	l := &Logger{
		dir: dir,
		now: time.Now,
		fs:  osFS{},
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.fs.MkdirAll(dir, 0o755); err != nil {
		l.debug("failed to create log directory", err)
	}
	l.path = filepath.Join(dir, FileName(l.now()))
	return l
}

// FileName returns the log file name for the date of t.
func FileName(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d.txt", t.Year(), int(t.Month()), t.Day())
}

// Path returns the full path of the file entries are appended to.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Timestamp returns the current time in TimestampLayout followed by a newline.
// It is recomputed on every call.
func (l *Logger) Timestamp() string {
	now := time.Now
	if l != nil {
		now = l.now
	}
	return now().Format(TimestampLayout) + "\n"
}

// AppendText appends message verbatim, opening and closing the file for this write only.
func (l *Logger) AppendText(message string) {
	if l == nil {
		return
	}

	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.debug("skipping log entry", err)
		return
	}
	defer f.Close()

	if _, err := io.WriteString(f, message); err != nil {
		l.debug("failed to write log entry", err)
	}
}

// AppendNumberList appends values joined by hyphens and followed by a blank line.
func (l *Logger) AppendNumberList(values []int) {
	if l == nil {
		return
	}
	l.AppendText(FormatNumberList(values))
}

// Record appends a timestamped description and then the number list.
func (l *Logger) Record(description string, values []int) {
	if l == nil {
		return
	}
	l.AppendText(l.Timestamp() + description)
	l.AppendNumberList(values)
}

// FormatNumberList renders values as "v0-v1-...-vN\n\n".
func FormatNumberList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "-") + "\n\n"
}

func (l *Logger) debug(msg string, err error) {
	if l.diag == nil {
		return
	}
	l.diag.Debug(msg, "path", l.path, "dir", l.dir, "err", err)
}
