package sessionlog

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func readLog(t *testing.T, l *Logger) string {
	t.Helper()
	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	return string(data)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"no padding", time.Date(2024, time.March, 7, 10, 0, 0, 0, time.Local), "2024-3-7.txt"},
		{"two digit month and day", time.Date(2023, time.December, 25, 23, 59, 59, 0, time.Local), "2023-12-25.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.at))
		})
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Logs")
	at := time.Date(2024, time.January, 2, 8, 0, 0, 0, time.Local)

	l := New(dir, WithClock(fixedClock(at)))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "2024-1-2.txt"), l.Path())

	// A second logger over the same directory is fine.
	assert.Equal(t, l.Path(), New(dir, WithClock(fixedClock(at))).Path())
}

func TestTimestamp(t *testing.T) {
	at := time.Date(1993, time.June, 30, 21, 49, 8, 0, time.Local)
	l := New(t.TempDir(), WithClock(fixedClock(at)))
	assert.Equal(t, "Wed Jun 30 21:49:08 1993\n", l.Timestamp())

	at = time.Date(2024, time.March, 7, 9, 5, 1, 0, time.Local)
	l = New(t.TempDir(), WithClock(fixedClock(at)))
	assert.Equal(t, "Thu Mar  7 09:05:01 2024\n", l.Timestamp())
}

func TestTimestampIsRecomputed(t *testing.T) {
	current := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.Local)
	l := New(t.TempDir(), WithClock(func() time.Time { return current }))

	first := l.Timestamp()
	current = current.Add(3 * time.Second)
	assert.NotEqual(t, first, l.Timestamp())
}

func TestAppendNumberList(t *testing.T) {
	l := New(t.TempDir())
	l.AppendNumberList([]int{1, 2, 3})
	assert.Equal(t, "1-2-3\n\n", readLog(t, l))
}

func TestFormatNumberList(t *testing.T) {
	assert.Equal(t, "42\n\n", FormatNumberList([]int{42}))
	assert.Equal(t, "\n\n", FormatNumberList(nil))
	assert.Equal(t, "1000-1-500\n\n", FormatNumberList([]int{1000, 1, 500}))
}

func TestAppendIsCumulative(t *testing.T) {
	l := New(t.TempDir())
	l.AppendText("first\n")
	l.AppendText("second\n")
	assert.Equal(t, "first\nsecond\n", readLog(t, l))
}

func TestRecord(t *testing.T) {
	at := time.Date(2024, time.March, 7, 9, 5, 1, 0, time.Local)
	l := New(t.TempDir(), WithClock(fixedClock(at)))

	l.Record("Generated a new set of numbers: \n", []int{5, 6})

	assert.Equal(t, "Thu Mar  7 09:05:01 2024\nGenerated a new set of numbers: \n5-6\n\n", readLog(t, l))
}

func TestFileNameFixedAcrossMidnight(t *testing.T) {
	current := time.Date(2024, time.March, 7, 23, 59, 59, 0, time.Local)
	dir := t.TempDir()
	l := New(dir, WithClock(func() time.Time { return current }))

	current = current.Add(2 * time.Second)
	l.AppendText(l.Timestamp())

	assert.Equal(t, filepath.Join(dir, "2024-3-7.txt"), l.Path())
	assert.Equal(t, "Fri Mar  8 00:00:01 2024\n", readLog(t, l))
}

func TestUnopenableFileIsSkipped(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "Logs")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	var diag bytes.Buffer
	logger := clog.New(&diag)
	logger.SetLevel(clog.DebugLevel)

	l := New(blocker, WithDiagnostics(logger))
	assert.NotPanics(t, func() {
		l.AppendText("lost\n")
		l.AppendNumberList([]int{1})
	})
	assert.Contains(t, diag.String(), "skipping log entry")

	data, err := os.ReadFile(blocker)
	require.NoError(t, err)
	assert.Equal(t, "not a directory", string(data))
}

type failingFS struct{ opens int }

func (f *failingFS) MkdirAll(string, os.FileMode) error { return nil }

func (f *failingFS) OpenFile(string, int, os.FileMode) (io.WriteCloser, error) {
	f.opens++
	return nil, errors.New("permission denied")
}

func TestOpenPerWrite(t *testing.T) {
	fs := &failingFS{}
	l := New("Logs", WithFS(fs))

	l.Record("Reorganized numbers in ascending order: \n", []int{1, 2})
	assert.Equal(t, 2, fs.opens)
}

func TestNilLoggerDiscards(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.AppendText("x")
		l.AppendNumberList([]int{1})
		l.Record("x", []int{1})
	})
	assert.Empty(t, l.Path())
	assert.NotEmpty(t, l.Timestamp())
}
